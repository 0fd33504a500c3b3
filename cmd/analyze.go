package cmd

import (
	"fmt"
	"log"
	"strconv"

	"github.com/jsphweid/chordbook/chord"
	"github.com/jsphweid/chordbook/midi"
	"github.com/jsphweid/chordbook/theory"
	"github.com/jsphweid/chordbook/util"
	"github.com/spf13/cobra"
)

var uniqueFlag bool

func init() {
	analyzeCmd.Flags().BoolVar(&uniqueFlag, "unique", false, "print every distinct chord once, with its count")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <path> [max]",
	Short: "Names the chords of MIDI files",
	Long:  `Names the chords sounding in a MIDI file, or in every MIDI file under a directory`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var maxNum int
		if len(args) == 2 {
			arg1, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("max must be a number: %w", err)
			}
			maxNum = arg1
		}
		st, err := styling()
		if err != nil {
			return err
		}
		return analyze(args[0], maxNum, st)
	},
}

func analyze(path string, maxNum int, st theory.Styling) error {
	paths, err := util.GatherAllMidiPaths(path, maxNum)
	if err != nil {
		return err
	}
	for i, p := range paths {
		log.Printf("Processing %v of %v midi files: %v\n", i+1, len(paths), p)
		parsed, err := midi.ReadMidiFile(p)
		if err != nil {
			log.Printf("Skipping %v because: %v\n", p, err)
			continue
		}

		chords := chord.GetChords(parsed)
		if !uniqueFlag {
			for _, c := range chords {
				fmt.Printf("%s\t%d\t%s\n", p, c.AbsTickOffset, chord.Name(c.Notes, st))
			}
			continue
		}

		counts := make(map[string]int)
		names := make(map[string]string)
		for _, c := range chords {
			key := chord.CreateChordKey(c.Notes)
			counts[key]++
			names[key] = chord.Name(c.Notes, st)
		}
		for _, key := range util.GetSortedKeys(counts) {
			fmt.Printf("%s\t%s\t%d\t%s\n", p, key, counts[key], names[key])
		}
	}
	return nil
}
