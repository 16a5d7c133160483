package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	data, err := Words()
	require.NoError(t, err)
	assert.Contains(t, string(data), "pizza\n")
}

func TestCleanAssetPath(t *testing.T) {
	cases := map[string]string{
		"":                        "",
		"words.txt":               "words.txt",
		"assets/words.txt":        "words.txt",
		"/home/me/assets/a/b.txt": "a/b.txt",
		"/tmp/words.txt":          "words.txt",
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanAssetPath(in), in)
	}
}
