package logtally

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("unexpected error: %s", err)
	}
}

func testError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("expected error")
	}
}

func newTestConfiguration() (*Configuration, error) {
	c := NewConfiguration()

	return c, c.ReadFile("test/configuration.toml")
}

func newTestAnalyzer(t *testing.T, c *Configuration) *Analyzer {
	t.Helper()
	an, err := NewAnalyzer(c)
	if err != nil {
		t.Fatalf("failed to create analyzer: %s", err)
	}

	return an
}

func newTestLogFile(t *testing.T, ls ...string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "test.log")
	if err := os.WriteFile(p, []byte(strings.Join(ls, "\n")+"\n"), 0o600); err != nil {
		t.Fatalf("failed to write log file: %s", err)
	}

	return p
}

func newTestAggregator(ls ...string) *aggregator {
	a := newAggregator()
	a.ingest(ls)

	return a
}
