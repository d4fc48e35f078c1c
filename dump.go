package kcommon

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

// Entry is one row of the suffix index: the text position of a suffix, the
// string it belongs to and its LCP with the preceding suffix.
type Entry struct {
	Pos   int
	Owner int
	LCP   int
}

// Entries returns the suffix index in suffix order.
func (x *Index) Entries() []Entry {
	entries := make([]Entry, x.sa.Len())
	for i := range entries {
		pos := x.sa.Suffix(i)
		entries[i] = Entry{Pos: pos, Owner: x.text.Owner(pos), LCP: x.sa.LCP(i)}
	}
	return entries
}

// WriteEntries writes one "pos owner lcp" line per entry.
func WriteEntries(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", e.Pos, e.Owner, e.LCP); err != nil {
			return errors.Wrap(err, "writing entry")
		}
	}
	return errors.Wrap(bw.Flush(), "flushing entries")
}

// WriteTable renders the suffix array as a table, one row per suffix. Each
// suffix is shown up to and including its terminator, written as "$".
func (x *Index) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"i", "SA", "LCP", "String", "Suffix"})
	table.SetAutoWrapText(false)

	for i, e := range x.Entries() {
		table.Append([]string{
			strconv.Itoa(i),
			strconv.Itoa(e.Pos),
			strconv.Itoa(e.LCP),
			strconv.Itoa(e.Owner),
			x.suffixString(e.Pos),
		})
	}
	table.Render()
}

func (x *Index) suffixString(pos int) string {
	end := pos
	for !x.text.IsSentinel(end) {
		end++
	}
	var b strings.Builder
	b.WriteString(x.text.Decode(pos, end-pos))
	b.WriteByte('$')
	return b.String()
}
