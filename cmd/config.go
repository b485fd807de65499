package cmd

import (
	"fmt"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolP("env", "e", false, "Show the environment variable for each key")
}

var (
	configKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#38bdf8"))
	configDescStyle = lipgloss.NewStyle().Faint(true)
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print every setting with its current value",
	Run: func(cmd *cobra.Command, args []string) {
		showEnv := lo.Must(cmd.Flags().GetBool("env"))
		out := cmd.OutOrStdout()

		for _, k := range config.Keys() {
			field := config.Default[k]
			value := viper.Get(k)
			if k == config.SMTPPass || k == config.AdminPassword {
				if s, _ := value.(string); s != "" {
					value = "********"
				}
			}

			fmt.Fprintf(out, "%s = %v\n", configKeyStyle.Render(k), value)
			fmt.Fprintf(out, "  %s\n", configDescStyle.Render(field.Description))
			if showEnv {
				fmt.Fprintf(out, "  %s\n", configDescStyle.Render(field.Env()))
			}
		}
	},
}
