package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	arg "github.com/alexflint/go-arg"
	"github.com/dustin/go-humanize"
	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xiles84/kcommon"
	"github.com/xiles84/kcommon/suffixarray"
)

type args struct {
	File    string   `arg:"-f" help:"read strings from a file, one per line"`
	K       []int    `arg:"-k,--min,separate" help:"number of strings that must share a substring; repeat to solve several"`
	SAIS    bool     `arg:"--sais" help:"build the suffix array by induced sorting instead of prefix doubling"`
	Deque   bool     `arg:"--deque" help:"take window minima from a sliding deque instead of the range-minimum tree"`
	Table   bool     `help:"print the suffix array table"`
	Dump    string   `help:"write the suffix index, one 'pos owner lcp' line per suffix; .sz paths are snappy compressed"`
	Locate  bool     `help:"print where each answer occurs"`
	Verbose bool     `arg:"-v" help:"log every evaluated window"`
	Strings []string `arg:"positional" help:"strings to search, appended after those read from --file"`
}

func (args) Description() string {
	return "kcommon finds the longest substrings shared by at least k of the given strings"
}

func main() {
	var a args
	arg.MustParse(&a)
	os.Exit(realMain(a, os.Stdout))
}

// realMain runs the command and returns its exit code. The logger is
// flushed before it returns, so main can exit right away.
func realMain(a args, stdout io.Writer) int {
	logger, err := newLogger(a.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating logger:", err)
		return 1
	}
	defer logger.Sync()

	if err := run(a, stdout, logger); err != nil {
		logger.Error("kcommon failed", zap.Error(err))
		return 1
	}
	return 0
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(a args, stdout io.Writer, logger *zap.Logger) error {
	strs, err := readStrings(a)
	if err != nil {
		return err
	}
	ks := a.K
	if len(ks) == 0 {
		ks = []int{2}
	}

	var builder suffixarray.Builder = suffixarray.PrefixDoubling{}
	if a.SAIS {
		builder = suffixarray.SAIS{}
	}

	opts := []kcommon.Option{kcommon.WithBuilder(builder), kcommon.WithLogger(logger)}
	if a.Deque {
		opts = append(opts, kcommon.WithSlidingMinimum())
	}

	idx, err := kcommon.NewIndex(strs, opts...)
	if err != nil {
		return err
	}
	logger.Info("index built",
		zap.Int("strings", idx.NumStrings()),
		zap.String("symbols", humanize.Comma(int64(idx.Len()))))

	if a.Table {
		idx.WriteTable(stdout)
	}
	if a.Dump != "" {
		if err := writeDump(a.Dump, idx.Entries()); err != nil {
			return err
		}
		logger.Info("index dumped", zap.String("path", a.Dump))
	}

	// the index is immutable, so every k is solved concurrently
	results := make([]*kcommon.Result, len(ks))
	var g errgroup.Group
	for i, k := range ks {
		g.Go(func() error {
			res, err := idx.Solve(k)
			if err != nil {
				return errors.WithMessagef(err, "k=%d", k)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		printResult(stdout, idx, res, a.Locate)
	}
	return nil
}

// readStrings loads the strings from --file, skipping blank lines, followed
// by the positional arguments.
func readStrings(a args) ([]string, error) {
	var strs []string
	if a.File != "" {
		data, err := os.ReadFile(a.File)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", a.File)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				strs = append(strs, trimmed)
			}
		}
	}
	return append(strs, a.Strings...), nil
}

func printResult(w io.Writer, idx *kcommon.Index, res *kcommon.Result, locate bool) {
	if len(res.Substrings) == 0 {
		fmt.Fprintf(w, "k=%d: no common substring\n", res.K)
		return
	}
	fmt.Fprintf(w, "k=%d: length %d: %q\n", res.K, res.Length, res.Substrings)
	if !locate {
		return
	}
	for _, sub := range res.Substrings {
		var occs []string
		for _, occ := range idx.Locate(sub) {
			occs = append(occs, fmt.Sprintf("(%d, %d)", occ.String, occ.Offset))
		}
		fmt.Fprintf(w, "  %q found at (string, offset): %s\n", sub, strings.Join(occs, " "))
	}
}

func writeDump(path string, entries []kcommon.Entry) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "closing %s", path)
		}
	}()

	if !strings.HasSuffix(path, ".sz") {
		return kcommon.WriteEntries(f, entries)
	}

	sw := snappy.NewBufferedWriter(f)
	if err := kcommon.WriteEntries(sw, entries); err != nil {
		sw.Close()
		return err
	}
	return errors.Wrap(sw.Close(), "closing snappy stream")
}
