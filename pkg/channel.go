// Package pkg provides the exchange formats shared between gauntlet and the
// test hosts it drives, plus small disk-backed utilities.
package pkg

// Environment variables and file names of the coverage and test-result
// channels. A test host reads the variables, runs the requested tests inside
// its working directory and writes the channel files.
const (
	// EnvMode is "coverage" for the instrumented pass and "test" otherwise.
	EnvMode = "GAUNTLET_MODE"
	// EnvTests holds newline separated test names; empty means all tests.
	EnvTests = "GAUNTLET_TESTS"
	// EnvResults is the path the host writes its test results to.
	EnvResults = "GAUNTLET_RESULTS"
	// EnvCoverage is the path the host writes its coverage record to.
	EnvCoverage = "GAUNTLET_COVERAGE"

	ModeCoverage = "coverage"
	ModeTest     = "test"

	ResultsFileName  = ".gauntlet-results.yaml"
	CoverageFileName = ".gauntlet-coverage.yaml"
)
