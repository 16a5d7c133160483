package wordbank

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPartitionsByFirstLetter(t *testing.T) {
	b, err := Parse("cat\ncar\r\ndog\n\n  apple  \nZebra\n9lives\n")
	require.NoError(t, err)

	assert.Equal(t, 4, b.Len())
	assert.Equal(t, []string{"cat", "car"}, b.Bucket('c'))
	assert.Equal(t, []string{"dog"}, b.Bucket('d'))
	assert.Equal(t, []string{"apple"}, b.Bucket('a'))
	assert.Empty(t, b.Bucket('z'))
	assert.Nil(t, b.Bucket('Z'))
}

func TestLoadEmptyCorpus(t *testing.T) {
	cases := []struct {
		name   string
		corpus string
	}{
		{"empty", ""},
		{"blank_lines", "\n\n   \n"},
		{"no_lowercase_words", "Apple\n42\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.corpus)
			assert.ErrorIs(t, err, ErrEmptyCorpus)
		})
	}
}

func TestRandomWordSparseCorpus(t *testing.T) {
	b, err := Parse("quiz\n")
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		assert.Equal(t, "quiz", b.RandomWord(rng))
	}
}

func TestRandomWordCoversBuckets(t *testing.T) {
	corpus := []string{"apple", "banana", "cherry", "zebra"}
	b, err := Parse(strings.Join(corpus, "\n"))
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(7, 7))
	seen := map[string]bool{}
	for range 2000 {
		seen[b.RandomWord(rng)] = true
	}
	for _, w := range corpus {
		assert.True(t, seen[w], "word %q never drawn", w)
	}
}
