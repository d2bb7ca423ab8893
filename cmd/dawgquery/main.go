// Command dawgquery loads a packed DAWG file and answers interactive
// Subwords queries read from stdin, one letters/pattern pair per round.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/milden6/dawg"
	"github.com/spf13/cobra"
)

var useMmap bool

var rootCmd = &cobra.Command{
	Use:   "dawgquery <dawgfile>",
	Short: "Interactively query a packed DAWG file for subwords",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var d *dawg.Dawg
		var err error
		if useMmap {
			d, err = dawg.LoadMmap(args[0])
		} else {
			d, err = dawg.Load(args[0])
		}
		if err != nil {
			return err
		}

		fmt.Printf("loaded %d words, %d nodes\n", d.WordCount(), d.NodeCount())
		return query(d, os.Stdin, os.Stdout)
	},
}

func query(d *dawg.Dawg, in *os.File, out *os.File) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "letters:  ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		letters := strings.TrimSpace(scanner.Text())

		fmt.Fprint(out, "pattern:  ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		pattern := strings.TrimSpace(scanner.Text())

		start := time.Now()
		results := d.Subwords(letters, pattern)
		elapsed := time.Since(start)

		if results == nil {
			fmt.Fprintln(out, "invalid letters or pattern")
			continue
		}

		for _, r := range results {
			fmt.Fprintln(out, r.Word)
			if len(r.WildcardPositions) > 0 {
				fmt.Fprintf(out, "  wildcards at %v\n", r.WildcardPositions)
			}
		}
		fmt.Fprintf(out, "found %d matches in %s\n\n", len(results), elapsed)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&useMmap, "mmap", false, "load the dictionary with a memory-mapped reader instead of copying it in")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
