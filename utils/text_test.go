package utils

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"abcdefghijklmnop", 10, "abcdefg..."},
		{"Résidence Étudiante près du métro", 12, "Résidence..."},
		{"東京大学の近くの部屋です", 8, "東京大学の..."},
		{"abcdef", 3, "abc"},
	}

	for _, tt := range tests {
		got := Truncate(tt.in, tt.max)
		assert.Equal(t, tt.want, got, "Truncate(%q, %d)", tt.in, tt.max)
		assert.True(t, utf8.ValidString(got), "Truncate(%q, %d) split a rune", tt.in, tt.max)
	}
}
