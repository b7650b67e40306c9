package commands

import (
	"errors"
	"fmt"
	"strings"

	"xunit/internal/config"
	"xunit/internal/domain"
	"xunit/internal/registry"
	"xunit/internal/storage"
)

// errNoPreviousRun is returned by --failed when there is no results file
var errNoPreviousRun = errors.New("no previous run to take failed tests from")

// buildSelectors combines --filter, --select, --plan and --failed into one
// list. A test is selected when it matches any of them.
func buildSelectors(cfg *config.Config, st storage.Storage) ([]registry.Selector, error) {
	flags := cfg.Flags
	var selectors []registry.Selector

	if flags.NameFilter != "" {
		selectors = append(selectors, registry.SelectPattern(flags.NameFilter))
	}
	for _, s := range flags.Selectors {
		selectors = append(selectors, registry.ParseSelector(s))
	}

	if flags.PlanPath != "" {
		plan, err := config.LoadPlan(flags.PlanPath)
		if err != nil {
			return nil, err
		}
		fromPlan, err := planSelectors(plan)
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, fromPlan...)
	}

	if flags.OnlyFailed {
		failed, err := lastFailed(st)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errNoPreviousRun, err)
		}
		if len(failed) == 0 && len(selectors) == 0 {
			// nothing failed last time, so nothing is selected
			return []registry.Selector{nothing{}}, nil
		}
		for id := range failed {
			selectors = append(selectors, registry.SelectTest(id.Suite, id.Name))
		}
	}
	return selectors, nil
}

func planSelectors(plan *config.Plan) ([]registry.Selector, error) {
	selectors := make([]registry.Selector, 0, len(plan.Selectors))
	for i, s := range plan.Selectors {
		switch {
		case s.Suite != "":
			selectors = append(selectors, registry.SelectSuite(s.Suite))
		case s.Test != "":
			suite, name, ok := strings.Cut(s.Test, ".")
			if !ok || suite == "" || name == "" {
				return nil, fmt.Errorf("plan selector %d: test %q must look like Suite.name", i+1, s.Test)
			}
			selectors = append(selectors, registry.SelectTest(suite, name))
		default:
			selectors = append(selectors, registry.SelectPattern(s.Pattern))
		}
	}
	return selectors, nil
}

// lastFailed returns the tests that did not pass in the stored run
func lastFailed(st storage.Storage) (map[domain.TestID]struct{}, error) {
	results, err := st.Load()
	if err != nil {
		return nil, err
	}
	failed := make(map[domain.TestID]struct{}, len(results.Details))
	for _, d := range results.Details {
		failed[d.ID()] = struct{}{}
	}
	return failed, nil
}

type nothing struct{}

func (nothing) Matches(domain.TestID) bool { return false }
func (nothing) String() string             { return "none" }
