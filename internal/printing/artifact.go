package printing

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/umersanii/CableManagement-sub001/internal/model"
)

// Artifact naming convention: <Kind>_<Number>_<yyyyMMdd_HHmmss>[_<seq>].pdf.
// The reclamation pass recognizes artifacts by this pattern only, so foreign
// files in the output directory are never touched.
const artifactTimeLayout = "20060102_150405"

var artifactPattern = regexp.MustCompile(`^(Invoice|Return|BalanceSheet)_.+_\d{8}_\d{6}(_\d+)?\.pdf$`)

// IsArtifact reports whether a filename follows the temporary-output convention.
func IsArtifact(name string) bool {
	return artifactPattern.MatchString(name)
}

// artifactPath builds a collision-free output path for a record. When two
// artifacts for the same document land within one second, a numeric sequence
// suffix keeps them distinct.
func artifactPath(dir string, kind model.DocumentKind, number string, ts time.Time) string {
	base := fmt.Sprintf("%s_%s_%s", kind, sanitizeNumber(number), ts.Format(artifactTimeLayout))
	path := filepath.Join(dir, base+".pdf")
	for seq := 1; ; seq++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		path = filepath.Join(dir, fmt.Sprintf("%s_%d.pdf", base, seq))
	}
}

// sanitizeNumber keeps document numbers filesystem-safe without losing identity.
func sanitizeNumber(number string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', ':':
			return '-'
		}
		return r
	}, number)
}
