// Command textalign is the calling layer for the textalign library: it
// decodes UTF-8 text into codepoint sequences, runs the distance, ranking,
// alignment, and consensus operations, and prints the results. The library
// packages never touch text encoding.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/textalign/align"
	"github.com/katalvlaran/textalign/charsub"
	"github.com/katalvlaran/textalign/consensus"
	"github.com/katalvlaran/textalign/levenshtein"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "textalign",
		Short: "Align and compare sets of similar short text fragments",
		Long: `textalign measures edit distances between short text fragments and builds
progressive multiple alignments of them, as used for reconciling several
OCR readings of the same label line.

Fragment input is line-oriented: one fragment per line, UTF-8.`,
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newDistanceCmd(),
		newRankCmd(),
		newAlignCmd(),
		newConsensusCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("textalign version %s\n", version)
		},
	}
}

func newDistanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance A B",
		Short: "Print the edit distance between two fragments",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(levenshtein.Distance([]rune(args[0]), []rune(args[1])))
		},
	}
}

func newRankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank [file]",
		Short: "Rank every fragment pair by edit distance",
		Long: `rank reads fragments (one per line, from file or stdin) and prints one
line per unordered pair, sorted ascending by distance with stable ties:

	distance<TAB>i<TAB>j`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := readFragments(pathArg(args))
			if err != nil {
				return err
			}
			for _, p := range levenshtein.RankAll(seqs) {
				fmt.Printf("%d\t%d\t%d\n", p.Dist, p.I, p.J)
			}

			return nil
		},
	}
}

// weightFlags holds the substitution-matrix sources and penalties shared by
// the align and consensus commands.
type weightFlags struct {
	yamlPath string
	dbPath   string
	charSet  string
	match    float64
	mismatch float64
	gap      float64
	skew     float64
}

func (f *weightFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.yamlPath, "weights", "", "YAML substitution matrix (two-character keys)")
	cmd.Flags().StringVar(&f.dbPath, "db", "", "SQLite database holding char_sub_matrix")
	cmd.Flags().StringVar(&f.charSet, "char-set", "default", "char set to load from --db")
	cmd.Flags().Float64Var(&f.match, "match", 2, "fallback match score when no matrix is given")
	cmd.Flags().Float64Var(&f.mismatch, "mismatch", -1, "fallback mismatch score when no matrix is given")
	cmd.Flags().Float64Var(&f.gap, "gap", -3, "gap open penalty (typically negative)")
	cmd.Flags().Float64Var(&f.skew, "skew", -0.5, "gap extension penalty (typically negative)")
}

// weights resolves the substitution table: YAML file, then SQLite database,
// then a uniform match/mismatch table over the observed alphabet.
func (f *weightFlags) weights(seqs [][]rune) (align.Weights, error) {
	switch {
	case f.yamlPath != "":
		return charsub.LoadYAML(f.yamlPath)
	case f.dbPath != "":
		return charsub.Load(f.dbPath, f.charSet)
	default:
		return charsub.Uniform(alphabetOf(seqs), f.match, f.mismatch), nil
	}
}

func newAlignCmd() *cobra.Command {
	flags := &weightFlags{}
	cmd := &cobra.Command{
		Use:   "align [file]",
		Short: "Print the progressive multiple alignment of the fragments",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := alignFragments(pathArg(args), flags)
			if err != nil {
				return err
			}
			for _, row := range rows {
				fmt.Println(string(row))
			}

			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func newConsensusCmd() *cobra.Command {
	flags := &weightFlags{}
	cmd := &cobra.Command{
		Use:   "consensus [file]",
		Short: "Align the fragments and vote them into one best-guess line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := alignFragments(pathArg(args), flags)
			if err != nil {
				return err
			}
			fmt.Println(string(consensus.Text(rows)))

			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func alignFragments(path string, flags *weightFlags) ([][]rune, error) {
	seqs, err := readFragments(path)
	if err != nil {
		return nil, err
	}
	w, err := flags.weights(seqs)
	if err != nil {
		return nil, err
	}

	return align.Align(seqs, w, flags.gap, flags.skew)
}

func pathArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}

	return ""
}

// readFragments reads one fragment per line from path, or stdin when path is
// empty or "-".
func readFragments(path string) ([][]rune, error) {
	in := os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	var seqs [][]rune
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		seqs = append(seqs, []rune(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read fragments: %w", err)
	}

	return seqs, nil
}

// alphabetOf returns the sorted set of distinct codepoints in seqs.
func alphabetOf(seqs [][]rune) []rune {
	seen := make(map[rune]bool)
	var alphabet []rune
	for _, s := range seqs {
		for _, r := range s {
			if !seen[r] {
				seen[r] = true
				alphabet = append(alphabet, r)
			}
		}
	}
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })

	return alphabet
}
