package logtally

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestConfigurationDefaults(t *testing.T) {
	c := NewConfiguration()
	testNoError(t, c.Validate())
	if c.BatchSize != 1000 {
		t.Errorf("expected batch size 1000, got %d", c.BatchSize)
	}
	if c.TopAddresses != 10 {
		t.Errorf("expected 10 top addresses, got %d", c.TopAddresses)
	}
	if c.LogLevel != "info" {
		t.Errorf(`expected log level "info", got "%s"`, c.LogLevel)
	}
}

func TestConfigurationReadFileTOML(t *testing.T) {
	c, err := newTestConfiguration()
	testNoError(t, err)
	if c.BatchSize != 2 || c.TopAddresses != 5 || c.ChartWidth != 20 || c.LogLevel != "debug" {
		t.Errorf("unexpected configuration: %+v", c)
	}
}

func TestConfigurationReadFileYAML(t *testing.T) {
	c := NewConfiguration()
	testNoError(t, c.ReadFile("test/configuration.yaml"))
	if c.BatchSize != 3 || c.TopAddresses != 7 || c.LogLevel != "warn" {
		t.Errorf("unexpected configuration: %+v", c)
	}
	if c.ChartWidth != defaultChartWidth {
		t.Errorf("expected defaults to be kept, got %+v", c)
	}
}

func TestConfigurationReadFileInvalid(t *testing.T) {
	rc := func(n string) {
		c := NewConfiguration()
		testError(t, c.ReadFile(n))
	}

	rc("")
	rc("test/missing.toml")
	rc("test/invalid_configuration.toml")
}

func TestConfigurationReadError(t *testing.T) {
	r := iotest.ErrReader(errors.New(""))
	c := NewConfiguration()
	testError(t, c.read(r))
	testError(t, c.readYAML(r))
}

func TestConfigurationReadEmptyYAML(t *testing.T) {
	c := NewConfiguration()
	testNoError(t, c.readYAML(strings.NewReader("")))
	testNoError(t, c.Validate())
}

func TestConfigurationValidateInvalid(t *testing.T) {
	ee := func(s string, f func(c *Configuration)) {
		c := NewConfiguration()
		f(c)
		if err := c.Validate(); err == nil {
			t.Errorf("expected error because of %s", s)
		}
	}

	ee("zero batch size", func(c *Configuration) {
		c.BatchSize = 0
	})
	ee("negative batch size", func(c *Configuration) {
		c.BatchSize = -1
	})
	ee("zero top addresses", func(c *Configuration) {
		c.TopAddresses = 0
	})
	ee("zero chart width", func(c *Configuration) {
		c.ChartWidth = 0
	})
	ee("unknown log level", func(c *Configuration) {
		c.LogLevel = "loud"
	})
}
