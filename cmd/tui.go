package cmd

import (
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/tui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tuiCmd)
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the portfolio in the terminal",
	Run: func(cmd *cobra.Command, args []string) {
		settings := config.Load()
		portfolio, err := loadContent(settings)
		handleErr(err)
		handleErr(tui.Run(tui.Options{Settings: settings, Content: portfolio}))
	},
}
