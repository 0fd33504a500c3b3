package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootedFlag bool

func init() {
	subchordsCmd.Flags().BoolVar(&rootedFlag, "rooted", false, "keep the roots of the sub-chords")
	rootCmd.AddCommand(subchordsCmd)
}

var subchordsCmd = &cobra.Command{
	Use:   "subchords <note>...",
	Short: "Lists the chords inside a chord or scale",
	Long:  `Lists every chord formed by two or more of the given notes`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := styling()
		if err != nil {
			return err
		}
		rc, err := rootedFromArgs(args)
		if err != nil {
			return err
		}
		if rootedFlag {
			for _, sub := range rc.ToSubseqChords() {
				fmt.Printf("%s\t%s\n", sub.AsString(true, st), noteNames(sub.ToScale()))
			}
			return nil
		}
		for _, sub := range rc.Chord.ToSubseqChords() {
			fmt.Printf("%s\t%v\n", sub.AsString(st), toInts(sub))
		}
		return nil
	},
}
