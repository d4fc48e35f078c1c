package kcommon

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntries(t *testing.T) {
	idx, err := NewIndex([]string{"ab", "c"})
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Pos: 2, Owner: 0, LCP: 0},
		{Pos: 4, Owner: 1, LCP: 0},
		{Pos: 0, Owner: 0, LCP: 0},
		{Pos: 1, Owner: 0, LCP: 0},
		{Pos: 3, Owner: 1, LCP: 0},
	}, idx.Entries())

	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, idx.Entries()))
	assert.Equal(t, "2 0 0\n4 1 0\n0 0 0\n1 0 0\n3 1 0\n", buf.String())
}

func TestWriteTable(t *testing.T) {
	idx, err := NewIndex([]string{"GeeksforGeeks", "GeeksQuiz"})
	require.NoError(t, err)

	var buf bytes.Buffer
	idx.WriteTable(&buf)
	out := buf.String()

	assert.Contains(t, out, "SUFFIX")
	assert.Contains(t, out, "GeeksforGeeks$")
	assert.Contains(t, out, "GeeksQuiz$")
	assert.Contains(t, out, "Quiz$")
	// one row per suffix plus header and borders
	assert.GreaterOrEqual(t, bytes.Count(buf.Bytes(), []byte("\n")), idx.Len()+1)
}
