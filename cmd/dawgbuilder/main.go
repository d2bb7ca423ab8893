// Command dawgbuilder compiles a newline-delimited word list into a
// packed DAWG file.
package main

import (
	"fmt"
	"os"

	"github.com/milden6/dawg"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

var (
	useHash bool
	list    bool
)

var rootCmd = &cobra.Command{
	Use:   "dawgbuilder <infile> <outfile>",
	Short: "Build a DAWG from a newline-delimited word list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inFile, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer inFile.Close()

		b := dawg.New()
		if err := b.AddReader(inFile); err != nil {
			return err
		}

		var d *dawg.Dawg
		if useHash {
			d = b.BuildHashed()
		} else {
			d = b.Build()
		}

		size, err := d.Save(args[1])
		if err != nil {
			return err
		}
		fmt.Printf("wrote %d bytes, %d words, %d nodes\n", size, d.WordCount(), d.NodeCount())

		if list {
			printWords(d)
		}
		return nil
	},
}

// printWords enumerates every word in d and prints them sorted. Children
// are packed in insertion order rather than alphabetical order, so the
// words Enumerate yields aren't sorted on their own.
func printWords(d *dawg.Dawg) {
	var words []string
	d.Enumerate(func(prefix []byte, final bool) dawg.EnumerationResult {
		if final && len(prefix) > 0 {
			words = append(words, string(prefix))
		}
		return dawg.Continue
	})

	slices.Sort(words)
	for _, w := range words {
		fmt.Println(w)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&useHash, "hash", false, "use the hash-based O(N) minimizer instead of pairwise comparison")
	rootCmd.Flags().BoolVar(&list, "list", false, "print every word in the built dictionary, sorted")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
