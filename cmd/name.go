package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(nameCmd)
}

var nameCmd = &cobra.Command{
	Use:   "name <note>...",
	Short: "Names a chord",
	Long:  `Names the chord formed by ascending notes such as C4 E4 G4 B4`,
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
		fmt.Printf("%s\t%v\n", rc.AsString(true, st), toInts(rc.Chord))
		return nil
	},
}
