package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/salesdesk/pkg/sanitizer"
)

func TestStripHTML(t *testing.T) {
	t.Parallel()

	t.Run("removes tags and keeps text", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "call back on Monday", sanitizer.StripHTML("<b>call back</b> on <i>Monday</i>"))
	})

	t.Run("drops script elements", func(t *testing.T) {
		t.Parallel()
		assert.NotContains(t, sanitizer.StripHTML(`<script>alert("x")</script>note`), "<script>")
	})

	t.Run("plain text is unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Tom & Jerry's", sanitizer.StripHTML("Tom & Jerry's"))
	})
}
