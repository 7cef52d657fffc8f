package model

import "sort"

// Path represents a file system path.
type Path string

// Subject describes the program under test: the project directory that is
// duplicated into every environment and the IR image inside it.
type Subject struct {
	ProjectDir  Path
	Program     Path // relative to ProjectDir
	TestCommand []string
}

// CoverageRecord maps a test identifier to the target ids (member handles)
// it exercised. Built once per session and never mutated afterwards.
type CoverageRecord map[string][]string

// Tests returns every test name in the record, sorted.
func (c CoverageRecord) Tests() []string {
	tests := make([]string, 0, len(c))
	for test := range c {
		tests = append(tests, test)
	}

	sort.Strings(tests)

	return tests
}

// Index inverts the record into target -> sorted covering tests.
func (c CoverageRecord) Index() map[string][]string {
	index := make(map[string][]string)

	for _, test := range c.Tests() {
		seen := make(map[string]struct{}, len(c[test]))

		for _, target := range c[test] {
			if _, ok := seen[target]; ok {
				continue
			}

			seen[target] = struct{}{}
			index[target] = append(index[target], test)
		}
	}

	return index
}

// TestsCovering returns the sorted tests that exercised target.
func (c CoverageRecord) TestsCovering(target string) []string {
	return c.Index()[target]
}
