package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bjaus/lru/internal/config"
	"github.com/bjaus/lru/search"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	flagConfig      = "config"
	flagCapacity    = "capacity"
	flagLogLevel    = "log-level"
	flagMetricsAddr = "metrics-addr"
	flagData        = "data"
)

// maxLineBytes caps a single REPL input line.
const maxLineBytes = 1 << 20

type options struct {
	configFile  string
	capacity    int
	logLevel    string
	metricsAddr string
	dataFile    string
}

func installFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVarP(&opts.configFile, flagConfig, "c", "", "TOML configuration file")
	flags.IntVar(&opts.capacity, flagCapacity, config.DefaultCapacity, "Maximum number of memoized search terms")
	flags.StringVar(&opts.logLevel, flagLogLevel, "info", "Log level (trace, debug, info, warn, error)")
	flags.StringVar(&opts.metricsAddr, flagMetricsAddr, "", "Serve Prometheus metrics on this address")
	flags.StringVar(&opts.dataFile, flagData, "", "JSON file of items to search instead of the built-in set")
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "lrusearch",
		Short:         "Search a static dataset with LRU-memoized results",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	installFlags(cmd.PersistentFlags(), opts)

	cmd.AddCommand(
		newQueryCommand(opts),
		newReplCommand(opts),
	)
	return cmd
}

func newQueryCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "query TERM [TERM...]",
		Short: "Run each term through one cache in order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.close()

			out := cmd.OutOrStdout()
			for _, term := range args {
				fmt.Fprintf(out, "> %s\n", term)
				printResults(out, a.searcher.Search(term))
			}
			printKeys(out, a.cache.Keys())
			return nil
		},
	}
}

func newReplCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read search terms from standard input",
		Long: `Read search terms from standard input, one per line.

Lines longer than 1 MiB are rejected.

Commands:
  :keys   list cached terms, oldest first
  :stats  show cache hit, miss and eviction counts
  :clear  drop every cached term
  :quit   exit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			defer a.close()

			return a.repl(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (a *app) repl(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for {
		fmt.Fprint(out, "search> ")
		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		switch strings.TrimSpace(line) {
		case "":
			continue
		case ":quit":
			return nil
		case ":keys":
			printKeys(out, a.cache.Keys())
		case ":stats":
			stats := a.cache.Stats()
			fmt.Fprintf(out, "size %d/%d, hits %d, misses %d, evictions %d, hit rate %.0f%%\n",
				a.cache.Len(), a.cache.Cap(), stats.Hits, stats.Misses, stats.Evictions, stats.HitRate()*100)
		case ":clear":
			a.cache.Clear()
			fmt.Fprintln(out, "cache cleared")
		default:
			printResults(out, a.searcher.Search(line))
		}
	}

	fmt.Fprintln(out)
	return errors.Wrap(scanner.Err(), "read input")
}

func printResults(w io.Writer, results []search.Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, "no results found")
		return
	}
	for _, r := range results {
		fmt.Fprintf(w, "  %3d  %s\n", r.Item.ID, r.Render("**", "**"))
	}
}

func printKeys(w io.Writer, keys []string) {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = fmt.Sprintf("%q", k)
	}
	fmt.Fprintf(w, "cached terms (oldest first): [%s]\n", strings.Join(quoted, ", "))
}
