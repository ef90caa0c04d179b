package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenome(t *testing.T) {
	var tests = []struct {
		input string
		want  string
		ok    bool
	}{
		{"GGYHWX", "GGYHWX", true},
		{"ggyhwx", "GGYHWX", true},
		{"gYhWxG", "GYHWXG", true},
		{"ßgggg", "", false},
		{"ẘggggg", "", false},
		{"  xxxxxx\t", "XXXXXX", true},
		{"GGGGG", "", false},
		{"GGGGGGG", "", false},
		{"GGGGGA", "", false},
		{"GGG GG", "", false},
		{"", "", false},
	}
	for _, test := range tests {
		var g, err = ParseGenome(test.input)
		if !test.ok {
			assert.Error(t, err, test.input)
			continue
		}
		require.NoError(t, err, test.input)
		assert.Equal(t, test.want, g.String())
	}
}

func TestParseProfile(t *testing.T) {
	var p, err = ParseProfile("3 0 0 3 0")
	require.NoError(t, err)
	assert.Equal(t, Profile{3, 0, 0, 3, 0}, p)

	p, err = ParseProfile("wgwgwg")
	require.NoError(t, err)
	assert.Equal(t, Profile{3, 0, 0, 3, 0}, p)
	assert.Equal(t, "GGGWWW", p.String())

	_, err = ParseProfile("3 0 0 3 1")
	assert.ErrorIs(t, err, errProfileSum)

	_, err = ParseProfile("3 0 0 3")
	assert.Error(t, err)

	_, err = ParseProfile("3 0 a 3 0")
	assert.Error(t, err)

	_, err = NewProfile(7, -1, 0, 0, 0)
	assert.Error(t, err)
}

func TestParsePool(t *testing.T) {
	var text = `
// seed plants
GGGGGG
wwwwww

GGGGGG
YYHHWX
`
	var pool, err = ParsePool(text)
	require.NoError(t, err)
	require.Equal(t, 3, pool.Len())
	assert.Equal(t, "GGGGGG", pool.At(0).String())
	assert.Equal(t, "WWWWWW", pool.At(1).String())
	assert.Equal(t, "YYHHWX", pool.At(2).String())

	_, err = ParsePool("GGGGGG\nGGGGGQ\n")
	assert.EqualError(t, err, `invalid genome "GGGGGQ"`)
}
