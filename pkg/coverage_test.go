package pkg

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverage_RoundTrip(t *testing.T) {
	in := Coverage{
		"T1": {"Calc::Add"},
		"T2": {"Calc::Sub", "Calc::Add"},
		"T3": {},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeCoverage(&buf, in))

	out, err := DecodeCoverage(&buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"Calc::Add"}, out["T1"])
	assert.Equal(t, []string{"Calc::Add", "Calc::Sub"}, out["T2"])
	assert.Contains(t, out, "T3")
	assert.Len(t, out, 3)
}

func TestDecodeCoverage_EmptyInput(t *testing.T) {
	out, err := DecodeCoverage(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDecodeCoverage_Invalid(t *testing.T) {
	_, err := DecodeCoverage(bytes.NewReader([]byte("tests: [[[")))
	require.Error(t, err)
}

func TestCoverageSession_RecordsHitsPerTest(t *testing.T) {
	path := filepath.Join(t.TempDir(), CoverageFileName)
	session := NewCoverageSession(path)

	session.Hit("ignored::BeforeAnyTest")

	session.Begin("T1")
	session.Hit("Calc::Add")
	session.Hit("Calc::Add")
	session.End()

	session.Begin("T2")

	var wg sync.WaitGroup
	for _, target := range []string{"Calc::Add", "Calc::Sub", "Calc::Mul"} {
		wg.Add(1)

		go func() {
			defer wg.Done()
			session.Hit(target)
		}()
	}

	wg.Wait()
	session.End()

	require.NoError(t, session.Close())
	require.ErrorIs(t, session.Close(), ErrSessionClosed)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	c, err := DecodeCoverage(f)
	require.NoError(t, err)
	assert.Equal(t, Coverage{
		"T1": {"Calc::Add"},
		"T2": {"Calc::Add", "Calc::Mul", "Calc::Sub"},
	}, c)
}

func TestNewCoverageSessionFromEnv(t *testing.T) {
	t.Setenv(EnvMode, ModeTest)
	t.Setenv(EnvCoverage, "")
	assert.Nil(t, NewCoverageSessionFromEnv())

	t.Setenv(EnvMode, ModeCoverage)
	t.Setenv(EnvCoverage, filepath.Join(t.TempDir(), CoverageFileName))
	assert.NotNil(t, NewCoverageSessionFromEnv())
}
