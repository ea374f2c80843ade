package answers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore(t *testing.T) {
	t.Run("typed accessors tolerate absent and mistyped values", func(t *testing.T) {
		s := New()
		s.Set("name", "CRM")
		s.Set("count", float64(5))

		assert.Equal(t, "CRM", s.String("name"))
		assert.Equal(t, "", s.String("missing"))
		assert.Equal(t, "", s.String("count"))
		assert.Equal(t, float64(5), s.Number("count"))
		assert.False(t, s.Bool("name"))
		assert.Nil(t, s.List("name"))
	})

	t.Run("wrap aliases the underlying map", func(t *testing.T) {
		m := map[string]any{}
		s := Wrap(m)
		s.Set("k", "v")
		assert.Equal(t, "v", m["k"])
	})

	t.Run("list mutation", func(t *testing.T) {
		s := New()
		s.AppendList("systems", "CRM")
		s.AppendList("systems", "Mailer")
		assert.Equal(t, []string{"CRM", "Mailer"}, s.List("systems"))

		s.RemoveListItem("systems", "CRM")
		assert.Equal(t, []string{"Mailer"}, s.List("systems"))

		s.RemoveListItem("systems", "not-there")
		assert.Equal(t, []string{"Mailer"}, s.List("systems"))
	})

	t.Run("keys with prefix are sorted", func(t *testing.T) {
		s := New()
		s.Set("processors_b", []string{"x"})
		s.Set("processors_a", []string{"y"})
		s.Set("other", "z")

		assert.Equal(t, []string{"processors_a", "processors_b"}, s.KeysWithPrefix("processors_"))
	})
}
