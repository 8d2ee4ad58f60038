package logtally

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ConfigureLogging points the timestamped global logger at w and applies
// the configured level.
func ConfigureLogging(w io.Writer, level string) error {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	zerolog.SetGlobalLevel(l)
	log.Logger = zerolog.New(w).With().Timestamp().Logger()

	return nil
}
