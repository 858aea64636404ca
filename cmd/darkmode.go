package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/pkg/client"
)

var darkModeCmd = &cobra.Command{
	Use:   "dark-mode [on|off]",
	Short: "Show or set the dark-mode preference",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := client.NewSessionStore()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			if store.DarkMode() {
				fmt.Println("dark mode is on")
			} else {
				fmt.Println("dark mode is off")
			}
			return nil
		}

		switch args[0] {
		case "on":
			return store.SetDarkMode(true)
		case "off":
			return store.SetDarkMode(false)
		}
		return fmt.Errorf("expected on or off, got %q", args[0])
	},
}

func init() {
	rootCmd.AddCommand(darkModeCmd)
}
