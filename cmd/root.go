package cmd

import (
	"fmt"

	"github.com/jsphweid/chordbook/constants"
	"github.com/jsphweid/chordbook/scales"
	"github.com/jsphweid/chordbook/theory"
	"github.com/spf13/cobra"
)

var (
	stylingFlag string
	scalesFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "chordbook",
	Short: "Chord and scale names from intervals",
	Long: `chordbook names chords from their intervals, lists the chords of scales
and modes, and finds the chords sounding in MIDI files.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&stylingFlag, "styling", constants.GetStyling(), "chord naming: std, extended or spelled")
	rootCmd.PersistentFlags().StringVar(&scalesFlag, "scales", constants.GetScalesPath(), "YAML file with extra scale families")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func styling() (theory.Styling, error) {
	return theory.ParseStyling(stylingFlag)
}

func catalog() ([]scales.ScaleObj, error) {
	return scales.Catalog(scalesFlag)
}

func parseNotes(args []string) ([]theory.Note, error) {
	notes := make([]theory.Note, 0, len(args))
	for _, a := range args {
		n, err := theory.ParseNamedNote(a)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// rootedFromArgs keeps the notes in the given order, so the first one is the
// root and later ones may be voiced in any octave above it.
func rootedFromArgs(args []string) (theory.RootedChord, error) {
	notes, err := parseNotes(args)
	if err != nil {
		return theory.RootedChord{}, err
	}
	for i := 1; i < len(notes); i++ {
		if notes[i] <= notes[i-1] {
			return theory.RootedChord{}, fmt.Errorf("notes must ascend: %s is not above %s",
				theory.NoteName(notes[i]), theory.NoteName(notes[i-1]))
		}
	}
	return theory.RootedChordFromScale(notes), nil
}
