package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"xunit/internal/domain"
	"xunit/internal/report"
)

// Save writes the run summary and its failures to the configured JSON output file.
func (s *JSONStorage) Save(runID string, summary report.Summary, outcomes []domain.TestOutcome) error {
	return s.SaveOutput(BuildOutput(runID, summary, outcomes, s.now()))
}

// Load reads the last test results from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.ResultsOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.ResultsOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file (e.g. after marking failures resolved).
func (s *JSONStorage) SaveOutput(output *domain.ResultsOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
