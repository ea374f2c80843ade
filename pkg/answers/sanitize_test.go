package answers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	t.Run("permitted shapes pass through", func(t *testing.T) {
		raw := map[string]any{
			"name":      "CRM",
			"count":     float64(42),
			"appointed": true,
			"systems":   []string{"CRM", "Mailer"},
		}

		clean, err := Sanitize(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, clean)
	})

	t.Run("numbers collapse to float64", func(t *testing.T) {
		clean, err := Sanitize(map[string]any{
			"a": 7,
			"b": int64(8),
			"c": float32(9),
			"d": json.Number("10.5"),
		})
		require.NoError(t, err)
		assert.Equal(t, float64(7), clean["a"])
		assert.Equal(t, float64(8), clean["b"])
		assert.Equal(t, float64(9), clean["c"])
		assert.Equal(t, 10.5, clean["d"])
	})

	t.Run("generic lists collapse to string lists", func(t *testing.T) {
		clean, err := Sanitize(map[string]any{
			"systems": []any{"CRM", "Mailer"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"CRM", "Mailer"}, clean["systems"])
	})

	t.Run("scalar maps collapse to string maps", func(t *testing.T) {
		clean, err := Sanitize(map[string]any{
			"labels": map[string]any{"env": "prod"},
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"env": "prod"}, clean["labels"])
	})

	t.Run("errors name the offending key", func(t *testing.T) {
		_, err := Sanitize(map[string]any{
			"ok":  "fine",
			"bad": []any{"a", 3},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"bad"`)
	})

	t.Run("nested maps are rejected", func(t *testing.T) {
		_, err := Sanitize(map[string]any{
			"deep": map[string]any{"inner": map[string]any{}},
		})
		assert.Error(t, err)
	})

	t.Run("input map is never modified", func(t *testing.T) {
		raw := map[string]any{"n": 3}
		_, err := Sanitize(raw)
		require.NoError(t, err)
		assert.Equal(t, 3, raw["n"])
	})
}
