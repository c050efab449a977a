package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/umersanii/CableManagement-sub001/internal/config"
	"github.com/umersanii/CableManagement-sub001/internal/printing"
)

// sweep runs one artifact reclamation pass and exits. Intended for cron when
// the API server is not running continuously.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	dir := flag.String("dir", "", "output directory to sweep (default: OUTPUT_DIR from config)")
	hours := flag.Int("retention-hours", 0, "retention window in hours (default: RETENTION_HOURS from config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	sweepDir := cfg.OutputDir
	if *dir != "" {
		sweepDir = *dir
	}
	retention := cfg.Retention()
	if *hours > 0 {
		retention = time.Duration(*hours) * time.Hour
	}

	report := printing.NewReclaimer(sweepDir, retention).Run()
	log.Info().
		Str("dir", sweepDir).
		Int("scanned", report.Scanned).
		Int("deleted", report.Deleted).
		Int("failed", report.Failed).
		Msg("artifact sweep complete")

	if report.Failed > 0 {
		os.Exit(1)
	}
}
