package cmd

import (
	"fmt"

	"github.com/jsphweid/chordbook/scales"
	"github.com/jsphweid/chordbook/theory"
	"github.com/spf13/cobra"
)

var (
	modeFlag  int
	sizeFlag  int
	tonicFlag string
	allFlag   bool
)

func init() {
	chordsCmd.Flags().IntVar(&modeFlag, "mode", 0, "mode of the family")
	chordsCmd.Flags().IntVar(&sizeFlag, "size", 3, "notes per chord")
	chordsCmd.Flags().StringVar(&tonicFlag, "tonic", "", "name chords from this tonic instead of by degree")
	chordsCmd.Flags().BoolVar(&allFlag, "all", false, "list every mode of the family")
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords <family>",
	Short: "Lists the chords of a scale",
	Long:  `Stacks thirds on every degree of a mode and names the resulting chords`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := styling()
		if err != nil {
			return err
		}
		cat, err := catalog()
		if err != nil {
			return err
		}
		family, err := scales.Lookup(cat, args[0])
		if err != nil {
			return err
		}

		modes := []int{modeFlag}
		if allFlag {
			modes = modes[:0]
			for i := range family.Steps {
				modes = append(modes, i)
			}
		}
		for _, m := range modes {
			names, err := scaleChordNames(family.Mode(m).Steps, st)
			if err != nil {
				return err
			}
			fmt.Printf("%s:\t%s\n", family.Mode(m).ModeName, joinNames(names))
		}
		return nil
	},
}

func scaleChordNames(steps theory.Steps, st theory.Styling) ([]string, error) {
	if tonicFlag == "" {
		return theory.ScaleChordNamesRoman(steps, sizeFlag, st), nil
	}
	tonic, err := theory.ParseNamedNote(tonicFlag)
	if err != nil {
		return nil, err
	}
	return theory.ScaleChordNames(steps, tonic, sizeFlag, st), nil
}
