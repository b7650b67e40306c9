package cli

import "xunit/internal/config"

// Flags holds command-line flags
type Flags struct {
	NameFilter string
	Selectors  []string
	PlanPath   string
	OnlyFailed bool
	Verbose    bool
	NoProgress bool
	TestCases  bool
	History    bool
	Limit      int
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	flags := config.Flags{
		NameFilter: f.NameFilter,
		Selectors:  append([]string(nil), f.Selectors...),
		PlanPath:   f.PlanPath,
		OnlyFailed: f.OnlyFailed,
		Verbose:    f.Verbose,
		NoProgress: f.NoProgress,
		TestCases:  f.TestCases,
		History:    f.History,
		Limit:      f.Limit,
	}
	if flags.Limit <= 0 {
		flags.Limit = config.DefaultHistoryLimit
	}
	return flags
}
