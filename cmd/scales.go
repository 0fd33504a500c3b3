package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scalesCmd)
}

var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "Lists scale families",
	Long:  `Lists the scale families of the catalog with their steps and modes`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog()
		if err != nil {
			return err
		}
		for _, s := range cat {
			fmt.Printf("%s %v\n", s.FamilyName, s.Steps)
			for i := range s.Steps {
				fmt.Printf("  %d: %s\n", i, s.Mode(i))
			}
		}
		return nil
	},
}

func joinNames(names []string) string {
	return strings.Join(names, ",\t")
}
