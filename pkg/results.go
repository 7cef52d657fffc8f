package pkg

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Outcome values accepted on the test-result channel.
const (
	OutcomePassed  = "passed"
	OutcomeFailed  = "failed"
	OutcomeSkipped = "skipped"
	OutcomeNone    = "none"
)

// TestResult is one entry of the test-result channel.
type TestResult struct {
	Name    string `yaml:"name"`
	Outcome string `yaml:"outcome"`
}

type resultsDocument struct {
	Results []TestResult `yaml:"results"`
}

// EncodeResults writes results in channel order.
func EncodeResults(w io.Writer, results []TestResult) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	if err := enc.Encode(resultsDocument{Results: results}); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	return nil
}

// DecodeResults reads results written by EncodeResults.
func DecodeResults(r io.Reader) ([]TestResult, error) {
	var doc resultsDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("decode results: %w", err)
	}

	return doc.Results, nil
}
