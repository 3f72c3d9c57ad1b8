package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	for i := 0; i < 500; i++ {
		code, err := Generate()
		require.NoError(t, err)
		require.Len(t, code, Length)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(Alphabet, c), "unexpected character %q in %q", c, code)
		}
	}
}

func TestGenerate_CoversAlphabet(t *testing.T) {
	seen := make(map[rune]bool)
	for i := 0; i < 2000; i++ {
		code, err := Generate()
		require.NoError(t, err)
		for _, c := range code {
			seen[c] = true
		}
	}
	// 8000 draws over 36 symbols; a missing symbol would point at a biased sampler.
	assert.Len(t, seen, len(Alphabet))
}
