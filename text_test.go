package kcommon

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiles84/kcommon/suffixarray"
)

func symbols(t *Text) []int {
	var out []int
	for i := 0; i < t.Len(); i++ {
		out = append(out, t.Symbol(i))
	}
	return out
}

func owners(t *Text) []int {
	var out []int
	for i := 0; i < t.Len(); i++ {
		out = append(out, t.Owner(i))
	}
	return out
}

func TestBuildText(t *testing.T) {
	text, err := BuildText([]string{"ab", "c"})
	require.NoError(t, err)

	// 'a' shifts to 2, the number of strings
	assert.Equal(t, []int{2, 3, 0, 4, 1}, symbols(text))
	assert.Equal(t, []int{0, 0, 0, 1, 1}, owners(text))
	assert.Equal(t, 0, text.Start(0))
	assert.Equal(t, 3, text.Start(1))
	assert.Equal(t, 2, text.NumStrings())
	assert.Equal(t, suffixarray.Alphabet{Shift: 0, Size: 5}, text.Alphabet())

	assert.True(t, text.IsSentinel(2))
	assert.False(t, text.IsSentinel(3))
	assert.Equal(t, "ab", text.Decode(0, 2))
	assert.Equal(t, "c", text.Decode(3, 1))
}

func TestBuildTextSentinelsSortFirst(t *testing.T) {
	strs := []string{"zz", "", "ZZ", " !", "é"}
	text, err := BuildText(strs)
	require.NoError(t, err)

	n := len(strs)
	sentinels := 0
	for i := 0; i < text.Len(); i++ {
		if text.IsSentinel(i) {
			assert.Equal(t, sentinels, text.Symbol(i), "sentinels increase in input order")
			assert.Equal(t, sentinels, text.Owner(i))
			sentinels++
			continue
		}
		assert.GreaterOrEqual(t, text.Symbol(i), n)
	}
	assert.Equal(t, n, sentinels)
	assert.Equal(t, "é", text.Decode(text.Start(4), 1))
}

func TestBuildTextAllEmpty(t *testing.T) {
	for _, strs := range [][]string{{"", ""}, {"", "", ""}} {
		_, err := BuildText(strs)
		require.Error(t, err, "strings %q", strs)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	}
}

func TestBuildTextOneEmpty(t *testing.T) {
	text, err := BuildText([]string{"", "b"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, symbols(text))
	assert.Equal(t, []int{0, 1, 1}, owners(text))
	assert.Equal(t, suffixarray.Alphabet{Shift: 0, Size: 3}, text.Alphabet())
}

func TestBuildTextInvalidUTF8(t *testing.T) {
	for _, strs := range [][]string{
		{"a\xff", "a\xfe"},
		{"ok", "bad\xc3"},
	} {
		_, err := BuildText(strs)
		require.Error(t, err, "strings %q", strs)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	}
}

func TestBuildTextTooFew(t *testing.T) {
	for _, strs := range [][]string{nil, {"only"}} {
		_, err := BuildText(strs)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	}
}

func TestEncode(t *testing.T) {
	text, err := BuildText([]string{"abc", "bcd"})
	require.NoError(t, err)

	enc, ok := text.encode("bd")
	require.True(t, ok)
	assert.Equal(t, []int{3, 5}, enc)

	_, ok = text.encode("ax")
	assert.False(t, ok)
}
