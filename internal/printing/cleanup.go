package printing

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultRetention is how long a rendered artifact survives before the
// reclamation pass may delete it.
const DefaultRetention = 24 * time.Hour

// Reclaimer is the on-demand sweep over the temporary output directory.
// Cleanup is best-effort: deletion failures are logged and skipped, never
// escalated, and a file that vanishes between listing and deletion is not an
// error. Files younger than the retention window are never deleted, so the
// sweep tolerates concurrent creation by in-flight jobs.
type Reclaimer struct {
	dir       string
	retention time.Duration
	now       func() time.Time
}

func NewReclaimer(dir string, retention time.Duration) *Reclaimer {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &Reclaimer{dir: dir, retention: retention, now: time.Now}
}

// ReclaimReport counts one sweep's outcomes.
type ReclaimReport struct {
	Scanned int `json:"scanned"`
	Deleted int `json:"deleted"`
	Failed  int `json:"failed"`
}

// Run scans the output directory once and deletes every artifact whose
// last-modified time is older than the retention window.
func (r *Reclaimer) Run() ReclaimReport {
	var report ReclaimReport

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Str("dir", r.dir).Err(err).Msg("reclaim: cannot list output directory")
		}
		return report
	}

	cutoff := r.now().Add(-r.retention)
	for _, entry := range entries {
		if entry.IsDir() || !IsArtifact(entry.Name()) {
			continue
		}
		report.Scanned++

		info, err := entry.Info()
		if err != nil {
			// Vanished between listing and stat — someone else cleaned it up.
			if !os.IsNotExist(err) {
				report.Failed++
				log.Warn().Str("file", entry.Name()).Err(err).Msg("reclaim: stat failed")
			}
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}

		path := filepath.Join(r.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			report.Failed++
			log.Warn().Str("file", entry.Name()).Err(err).Msg("reclaim: delete failed")
			continue
		}
		report.Deleted++
	}

	if report.Deleted > 0 || report.Failed > 0 {
		log.Info().
			Int("scanned", report.Scanned).
			Int("deleted", report.Deleted).
			Int("failed", report.Failed).
			Msg("reclaim pass finished")
	}
	return report
}
