package svgsafe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	t.Run("empty markup is allowed", func(t *testing.T) {
		assert.NoError(t, Check(""))
		assert.NoError(t, Check("   "))
	})

	t.Run("plain icon passes", func(t *testing.T) {
		svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M3 11l18-5v12L3 13v-2z"/><circle cx="12" cy="12" r="3"/></svg>`
		assert.NoError(t, Check(svg))
	})

	t.Run("script element rejected", func(t *testing.T) {
		svg := `<svg><script>alert(1)</script></svg>`
		assert.Error(t, Check(svg))
	})

	t.Run("event handler rejected", func(t *testing.T) {
		svg := `<svg onload="alert(1)"><path d="M0 0"/></svg>`
		assert.Error(t, Check(svg))
	})

	t.Run("foreignObject rejected", func(t *testing.T) {
		svg := `<svg><foreignObject><body></body></foreignObject></svg>`
		assert.Error(t, Check(svg))
	})

	t.Run("javascript href rejected", func(t *testing.T) {
		svg := `<svg><a href="javascript:alert(1)">x</a></svg>`
		assert.Error(t, Check(svg))
	})

	t.Run("malformed markup rejected", func(t *testing.T) {
		assert.Error(t, Check(`<svg><path`))
	})
}
