package session

import (
	"strings"
	"time"

	"github.com/fbruhn/datakompass/pkg/answers"
	"github.com/fbruhn/datakompass/pkg/catalog"
)

// Filename derives an export filename from the collected system name,
// sanitized to alphanumerics and underscores. Sessions without a system
// name fall back to a timestamp.
func Filename(ans *answers.Store, now time.Time) string {
	name := sanitizeName(ans.String(catalog.KeySystemName))
	if name == "" {
		name = "assessment_" + now.Format("20060102_150405")
	}
	return name + ".json"
}

func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
