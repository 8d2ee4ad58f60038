package logtally

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	defaultBatchSize    = 1000
	defaultTopAddresses = 10
	defaultChartWidth   = 40
	defaultLogLevel     = "info"
)

type Configuration struct {
	BatchSize    int    `toml:"batch_size" yaml:"batch_size"`
	TopAddresses int    `toml:"top_addresses" yaml:"top_addresses"`
	ChartWidth   int    `toml:"chart_width" yaml:"chart_width"`
	LogLevel     string `toml:"log_level" yaml:"log_level"`
}

// NewConfiguration returns a configuration populated with defaults.
func NewConfiguration() *Configuration {
	return &Configuration{
		BatchSize:    defaultBatchSize,
		TopAddresses: defaultTopAddresses,
		ChartWidth:   defaultChartWidth,
		LogLevel:     defaultLogLevel,
	}
}

func (c *Configuration) ReadFile(path string) error {
	cf, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open configuration file: %w", err)
	}
	defer cf.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = c.readYAML(cf)
	default:
		err = c.read(cf)
	}
	if err != nil {
		return err
	}

	return c.Validate()
}

func (c *Configuration) read(r io.Reader) error {
	if _, err := toml.NewDecoder(r).Decode(c); err != nil {
		var terr toml.ParseError
		if errors.As(err, &terr) {
			return fmt.Errorf("failed to decode configuration file: %s", terr.ErrorWithUsage())
		}
		return fmt.Errorf("failed to decode configuration file: %w", err)
	}

	return nil
}

func (c *Configuration) readYAML(r io.Reader) error {
	if err := yaml.NewDecoder(r).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode configuration file: %w", err)
	}

	return nil
}

func (c *Configuration) Validate() error {
	if c.BatchSize < 1 {
		return errors.New("invalid batch size: must be > 0")
	}

	if c.TopAddresses < 1 {
		return errors.New("invalid top addresses count: must be > 0")
	}

	if c.ChartWidth < 1 {
		return errors.New("invalid chart width: must be > 0")
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	return nil
}
