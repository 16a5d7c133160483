package game

import (
	"testing"

	"github.com/milk9111/trashtype/wordbank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptionsEmbedded(t *testing.T) {
	opts, err := LoadOptions(nil)
	require.NoError(t, err)

	assert.Positive(t, opts.Bank.Len())
	assert.Len(t, opts.Trash.Kinds, 9)
	assert.NotNil(t, opts.DifficultyScript)
	assert.Equal(t, 2.0, opts.Spec.Spawn.Interval)
}

func TestLoadOptionsCustomCorpus(t *testing.T) {
	opts, err := LoadOptions([]byte("zebra\nzinc\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, opts.Bank.Len())

	_, err = LoadOptions([]byte("\n\n"))
	assert.ErrorIs(t, err, wordbank.ErrEmptyCorpus)
}
