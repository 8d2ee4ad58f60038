package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	logtally "github.com/bitflipp/logtally/internal"
	"github.com/rs/zerolog/log"
)

var (
	version = "unknown version"
)

func logVersionAndBuildInfo() {
	ev := log.Info().Str("version", version)

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		ev.Msg("no build info found")
		return
	}

	ev = ev.Str("goVersion", bi.GoVersion)
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			l := 7
			if len(s.Value) > 7 {
				s.Value = s.Value[:l]
			}
			ev = ev.Str("revision", s.Value)
		case "vcs.modified":
			ev = ev.Bool("sourceFilesModified", s.Value == "true")
		}
	}

	ev.Msg("")
}

func main() {
	cfp := flag.String("c", "", "Path to TOML or YAML configuration file")
	op := flag.String("o", "", "Path to save the text report to")
	js := flag.Bool("json", false, "Print the report as JSON instead of charts")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <log file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	c := logtally.NewConfiguration()
	if *cfp != "" {
		if err := c.ReadFile(*cfp); err != nil {
			log.Fatal().Err(err).Msg("failed to read configuration file")
		}
	}

	if err := logtally.ConfigureLogging(os.Stderr, c.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("failed to configure logging")
	}

	logVersionAndBuildInfo()

	an, err := logtally.NewAnalyzer(c)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize analyzer")
	}

	r, err := an.AnalyzeFile(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Str("path", flag.Arg(0)).Msg("failed to analyze logs")
	}

	rp := r.Report(c.TopAddresses)
	if *js {
		if err := rp.WriteJSON(os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("failed to write report")
		}
	} else {
		fmt.Println(rp.Render(c.ChartWidth))
	}

	if *op != "" {
		if err := rp.SaveFile(*op); err != nil {
			log.Fatal().Err(err).Str("path", *op).Msg("failed to save results")
		}
	}
}
