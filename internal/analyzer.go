package logtally

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

// Analyzer runs single-file analyses. Every run gets its own tallies, so one
// Analyzer can be reused for any number of files.
type Analyzer struct {
	configuration *Configuration
}

// AnalyzeFile counts severities and addresses in the file at path. On
// failure the returned error wraps ErrInputUnreadable and no result is
// returned.
func (an *Analyzer) AnalyzeFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open log file: %w", ErrInputUnreadable, err)
	}
	defer f.Close()

	if fi, err := f.Stat(); err == nil && fi.IsDir() {
		return nil, fmt.Errorf(`%w: "%s" is a directory`, ErrInputUnreadable, path)
	}

	r, err := an.Analyze(f)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Int("lines", r.Lines).Int("addresses", r.addresses.len()).Msg("analyzed log file")

	return r, nil
}

// Analyze counts severities and addresses in everything read from r.
func (an *Analyzer) Analyze(r io.Reader) (*Result, error) {
	c := an.configuration
	br := newBatchReader(r, c.BatchSize)
	a := newAggregator()

	for i := 0; ; i++ {
		g, err := br.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read log: %w", ErrInputUnreadable, err)
		}

		a.ingest(g)
		log.Debug().Int("batch", i).Int("lines", len(g)).Msg("ingested batch")
	}

	return a.result(), nil
}

// NewAnalyzer validates c and returns an analyzer using it. A nil c means
// the defaults of NewConfiguration.
func NewAnalyzer(c *Configuration) (*Analyzer, error) {
	if c == nil {
		c = NewConfiguration()
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Analyzer{configuration: c}, nil
}
