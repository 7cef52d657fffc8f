package pkg

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Coverage is the serialized form of the coverage channel: test name to the
// member handles it exercised.
type Coverage map[string][]string

type coverageDocument struct {
	Tests []coverageEntry `yaml:"tests"`
}

type coverageEntry struct {
	Name    string   `yaml:"name"`
	Targets []string `yaml:"targets"`
}

// EncodeCoverage writes c as YAML with tests and targets sorted.
func EncodeCoverage(w io.Writer, c Coverage) error {
	doc := coverageDocument{Tests: make([]coverageEntry, 0, len(c))}

	for name, targets := range c {
		sorted := append([]string(nil), targets...)
		sort.Strings(sorted)
		doc.Tests = append(doc.Tests, coverageEntry{Name: name, Targets: sorted})
	}

	sort.Slice(doc.Tests, func(i, j int) bool { return doc.Tests[i].Name < doc.Tests[j].Name })

	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode coverage: %w", err)
	}

	return nil
}

// DecodeCoverage reads a coverage record written by EncodeCoverage.
func DecodeCoverage(r io.Reader) (Coverage, error) {
	var doc coverageDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Coverage{}, nil
		}

		return nil, fmt.Errorf("decode coverage: %w", err)
	}

	c := make(Coverage, len(doc.Tests))
	for _, entry := range doc.Tests {
		c[entry.Name] = append(c[entry.Name], entry.Targets...)
	}

	return c, nil
}

// ErrSessionClosed is returned by a CoverageSession after Close.
var ErrSessionClosed = errors.New("coverage session closed")

// CoverageSession collects coverage inside an instrumented test host. It is
// an explicit context object: create it at host start, pass it to the instrumentation hooks,
// and Close it to flush the channel file.
type CoverageSession struct {
	mu      sync.Mutex
	path    string
	current string
	hits    map[string]map[string]struct{}
	closed  bool
}

// NewCoverageSession creates a session that flushes to path on Close.
func NewCoverageSession(path string) *CoverageSession {
	return &CoverageSession{
		path: path,
		hits: make(map[string]map[string]struct{}),
	}
}

// NewCoverageSessionFromEnv creates a session for the path announced by
// gauntlet. It returns nil when the host is not running a coverage pass.
func NewCoverageSessionFromEnv() *CoverageSession {
	if os.Getenv(EnvMode) != ModeCoverage || os.Getenv(EnvCoverage) == "" {
		return nil
	}

	return NewCoverageSession(os.Getenv(EnvCoverage))
}

// Begin marks test as the one currently running.
func (s *CoverageSession) Begin(test string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = test
	if _, ok := s.hits[test]; !ok {
		s.hits[test] = make(map[string]struct{})
	}
}

// End clears the current test.
func (s *CoverageSession) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = ""
}

// Hit records that the current test reached target. Hits outside a test
// are dropped.
func (s *CoverageSession) Hit(target string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.current == "" {
		return
	}

	s.hits[s.current][target] = struct{}{}
}

// Snapshot returns the coverage collected so far.
func (s *CoverageSession) Snapshot() Coverage {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := make(Coverage, len(s.hits))

	for test, targets := range s.hits {
		list := make([]string, 0, len(targets))
		for target := range targets {
			list = append(list, target)
		}

		sort.Strings(list)
		c[test] = list
	}

	return c
}

// Close flushes the collected coverage to the session path.
func (s *CoverageSession) Close() error {
	snapshot := s.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}

	s.closed = true

	f, err := os.Create(s.path)
	if err != nil {
		slog.Error("failed to create coverage file", "path", s.path, "error", err)
		return fmt.Errorf("create coverage file: %w", err)
	}

	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("failed to close coverage file", "path", s.path, "error", err)
		}
	}()

	return EncodeCoverage(f, snapshot)
}
