package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan lists the selectors of a run, read from a YAML file:
//
//	selectors:
//	  - suite: JUnitBasicsTest
//	  - test: Calculator.broken
//	  - pattern: "*Adventure*"
type Plan struct {
	Selectors []PlanSelector `yaml:"selectors"`
}

// PlanSelector is one entry of a plan; exactly one field is set
type PlanSelector struct {
	Suite   string `yaml:"suite,omitempty"`
	Test    string `yaml:"test,omitempty"`
	Pattern string `yaml:"pattern,omitempty"`
}

// LoadPlan reads and validates a plan file
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	return ParsePlan(data)
}

// ParsePlan decodes and validates a YAML plan. Unknown keys are rejected.
func ParsePlan(data []byte) (*Plan, error) {
	var plan Plan
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&plan); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Validate checks that every selector sets exactly one field
func (p *Plan) Validate() error {
	for i, s := range p.Selectors {
		set := 0
		for _, v := range []string{s.Suite, s.Test, s.Pattern} {
			if v != "" {
				set++
			}
		}
		if set != 1 {
			return fmt.Errorf("plan selector %d: exactly one of suite, test or pattern must be set", i+1)
		}
	}
	return nil
}
