package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	t.Run("both languages resolve", func(t *testing.T) {
		assert.Equal(t, "Zusammenfassung", Text("de", "summary_title"))
		assert.Equal(t, "Summary", Text("en", "summary_title"))
	})

	t.Run("unknown language falls back to German", func(t *testing.T) {
		assert.Equal(t, "Zusammenfassung", Text("fr", "summary_title"))
	})

	t.Run("unknown key returns the key", func(t *testing.T) {
		assert.Equal(t, "no_such_key", Text("de", "no_such_key"))
	})
}

func TestFormatted(t *testing.T) {
	t.Run("placeholders are replaced", func(t *testing.T) {
		assert.Equal(t, "Question 3 of 22", Formatted("en", "progress", "current", "3", "total", "22"))
		assert.Equal(t, "Frage 3 von 22", Formatted("de", "progress", "current", "3", "total", "22"))
	})

	t.Run("missing pairs leave the placeholder visible", func(t *testing.T) {
		assert.Equal(t, "Question 3 of {total}", Formatted("en", "progress", "current", "3"))
	})
}

func TestEveryKeyHasBothLanguages(t *testing.T) {
	for key := range messages["de"] {
		_, ok := messages["en"][key]
		assert.True(t, ok, "key %q missing in en", key)
	}
	for key := range messages["en"] {
		_, ok := messages["de"][key]
		assert.True(t, ok, "key %q missing in de", key)
	}
}
