package logtally

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

// Report is a read-only snapshot of a Result, ready to be displayed, saved
// or handed to a visualization.
type Report struct {
	LogLevels    []Entry `json:"logLevels"`
	TopAddresses []Entry `json:"topAddresses"`

	top int
}

func (rp *Report) WriteText(w io.Writer) error {
	b := &bytes.Buffer{}
	b.WriteString("Log Level Counts:\n")
	for _, e := range rp.LogLevels {
		fmt.Fprintf(b, "%s: %d\n", e.Name, e.Count)
	}

	fmt.Fprintf(b, "\nTop %d IP Addresses:\n", rp.top)
	for _, e := range rp.TopAddresses {
		fmt.Fprintf(b, "%s: %d\n", e.Name, e.Count)
	}

	_, err := w.Write(b.Bytes())
	return err
}

func (rp *Report) WriteJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")

	return e.Encode(rp)
}

// SaveFile writes the text form of rp to path. On failure the returned
// error wraps ErrOutputUnwritable.
func (rp *Report) SaveFile(path string) error {
	b := &bytes.Buffer{}
	if err := rp.WriteText(b); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputUnwritable, err)
	}

	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputUnwritable, err)
	}
	log.Info().Str("path", path).Msg("saved results")

	return nil
}
