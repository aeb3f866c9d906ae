package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"turkish folding", "İstanbul Turu", "istanbul-turu"},
		{"mixed folded letters", "Göreme Açık Hava Müzesi", "goreme-acik-hava-muzesi"},
		{"capadocia tour", "Kapadokya Balon Turu", "kapadokya-balon-turu"},
		{"punctuation collapses", "Ege & Akdeniz -- Turu!", "ege-akdeniz-turu"},
		{"leading and trailing junk", "  ***Şirince***  ", "sirince"},
		{"digits preserved", "7 GÜN 6 GECE", "7-gun-6-gece"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Make(tc.input))
		})
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{"İstanbul Turu", "Kapadokya Balon Turu", "çöğüşı", "already-a-slug"}
	for _, in := range inputs {
		once := Make(in)
		assert.Equal(t, once, Make(once))
	}
}
