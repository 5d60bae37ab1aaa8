package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rollsheet",
	Short: "Piano roll sheet generator",
	Long:  `Turns MIDI performance data into aligned, labeled piano roll sheets for print.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
