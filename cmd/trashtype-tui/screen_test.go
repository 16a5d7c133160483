package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGridCell(t *testing.T) {
	g := grid{cols: 70, rows: 41, width: 700, height: 800}

	col, row := g.cell(-350, 400)
	require.Equal(t, 0, col)
	require.Equal(t, 0, row)

	col, row = g.cell(0, 0)
	require.Equal(t, 35, col)
	require.Equal(t, 20, row)

	require.True(t, g.inside(69, 39))
	require.False(t, g.inside(70, 0))
	require.False(t, g.inside(0, 40))
}

func TestGridSpanIsAtLeastOneCell(t *testing.T) {
	g := grid{cols: 70, rows: 41, width: 700, height: 800}

	w, h := g.span(1, 1)
	require.Equal(t, 1, w)
	require.Equal(t, 1, h)

	w, h = g.span(70, 80)
	require.Equal(t, 7, w)
	require.Equal(t, 4, h)
}

func TestMeter(t *testing.T) {
	require.Equal(t, "..........", meter(0, 10))
	require.Equal(t, "###.......", meter(0.3, 10))
	require.Equal(t, "##########", meter(2, 10))
}
