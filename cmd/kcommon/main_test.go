package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	arg "github.com/alexflint/go-arg"
	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiles84/kcommon"
)

func runOutput(t *testing.T, a args) string {
	var out bytes.Buffer
	require.NoError(t, run(a, &out, zap.NewNop()))
	return out.String()
}

func TestParseArgs(t *testing.T) {
	var a args
	p, err := arg.NewParser(arg.Config{}, &a)
	require.NoError(t, err)

	require.NoError(t, p.Parse([]string{"-k", "3", "--min", "4", "--sais", "--deque", "--locate", "ACGT", "TGCA"}))
	assert.True(t, a.Deque)
	assert.Equal(t, []int{3, 4}, a.K)
	assert.True(t, a.SAIS)
	assert.True(t, a.Locate)
	assert.Equal(t, []string{"ACGT", "TGCA"}, a.Strings)
}

func TestApplicationOutput(t *testing.T) {
	out := runOutput(t, args{
		Strings: []string{"GeeksforGeeks", "GeeksQuiz"},
		Locate:  true,
	})
	assert.Contains(t, out, `k=2: length 5: ["Geeks"]`)
	assert.Contains(t, out, `"Geeks" found at (string, offset): (0, 0) (0, 8) (1, 0)`)
}

func TestFileInput(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "strings.txt")
	content := "TAAAAT\nATAAAAT\n\nTATA\nATA\n  AAT  \nTTTT\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	out := runOutput(t, args{
		File:    file,
		Strings: []string{"TT"},
		K:       []int{3, 7},
		SAIS:    true,
		Deque:   true,
	})
	assert.Contains(t, out, `k=3: length 3: ["AAT" "ATA"]`)
	assert.Contains(t, out, `k=7: length 1: ["T"]`)
	assert.Less(t, strings.Index(out, "k=3"), strings.Index(out, "k=7"))
}

func TestNoCommonSubstring(t *testing.T) {
	out := runOutput(t, args{Strings: []string{"abc", "def"}})
	assert.Equal(t, "k=2: no common substring\n", out)
}

func TestTableOutput(t *testing.T) {
	out := runOutput(t, args{Strings: []string{"ab", "b"}, Table: true})
	assert.Contains(t, out, "SUFFIX")
	assert.Contains(t, out, "ab$")
}

func TestDump(t *testing.T) {
	strs := []string{"GeeksforGeeks", "GeeksQuiz"}
	tempDir := t.TempDir()

	for _, name := range []string{"sa.idx", "sa.idx.sz"} {
		path := filepath.Join(tempDir, name)
		runOutput(t, args{Strings: strs, Dump: path})

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()

		var r = bufio.NewScanner(f)
		if strings.HasSuffix(name, ".sz") {
			r = bufio.NewScanner(snappy.NewReader(f))
		}
		lines := 0
		for r.Scan() {
			require.Len(t, strings.Fields(r.Text()), 3)
			lines++
		}
		require.NoError(t, r.Err())
		assert.Equal(t, len(strs[0])+len(strs[1])+len(strs), lines, name)
	}
}

func TestInvalidInput(t *testing.T) {
	var out bytes.Buffer
	err := run(args{Strings: []string{"abc", "abd"}, K: []int{1}}, &out, zap.NewNop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, kcommon.ErrInvalidArgument))

	err = run(args{Strings: []string{"abc"}}, &out, zap.NewNop())
	assert.True(t, errors.Is(err, kcommon.ErrInvalidArgument))

	err = run(args{File: filepath.Join(t.TempDir(), "missing.txt")}, &out, zap.NewNop())
	assert.Error(t, err)
}

func TestExitCode(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 0, realMain(args{Strings: []string{"GeeksforGeeks", "GeeksQuiz"}}, &out))
	assert.Contains(t, out.String(), `k=2: length 5: ["Geeks"]`)

	out.Reset()
	assert.Equal(t, 1, realMain(args{Strings: []string{"abc"}}, &out))
	assert.Empty(t, out.String())

	assert.Equal(t, 1, realMain(args{Strings: []string{"a\xff", "a\xfe"}}, &out))
}
