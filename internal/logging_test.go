package logtally

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestConfigureLogging(t *testing.T) {
	l := log.Logger
	defer func() {
		log.Logger = l
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}()

	b := &bytes.Buffer{}
	testNoError(t, ConfigureLogging(b, "warn"))
	log.Info().Msg("hidden")
	log.Warn().Str("path", "test.log").Msg("shown")

	s := b.String()
	if strings.Contains(s, "hidden") {
		t.Error("expected info event to be filtered")
	}
	if !strings.Contains(s, `"message":"shown"`) || !strings.Contains(s, `"path":"test.log"`) || !strings.Contains(s, `"time":`) {
		t.Errorf("unexpected log output %q", s)
	}
}

func TestConfigureLoggingInvalid(t *testing.T) {
	testError(t, ConfigureLogging(&bytes.Buffer{}, "loud"))
}
