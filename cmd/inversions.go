package cmd

import (
	"fmt"

	"github.com/jsphweid/chordbook/theory"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inversionsCmd)
}

var inversionsCmd = &cobra.Command{
	Use:   "inversions <note>...",
	Short: "Lists the inversions of a chord",
	Long:  `Inverts a chord until it is back on its root and names every inversion`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := styling()
		if err != nil {
			return err
		}
		rc, err := rootedFromArgs(args)
		if err != nil {
			return err
		}
		for _, inv := range rc.AllInversions() {
			fmt.Printf("%s\t%s\n", inv.AsString(true, st), noteNames(inv.ToScale()))
		}
		return nil
	},
}

func noteNames(scale theory.Scale) []string {
	res := make([]string, len(scale))
	for i, n := range scale {
		res[i] = theory.NoteName(n)
	}
	return res
}

func toInts(c theory.Chord) []int {
	res := make([]int, len(c))
	for i, n := range c {
		res[i] = int(n)
	}
	return res
}
