package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, store, err := requireSession()
		if err != nil {
			return err
		}

		// Any server rejection of the stored token means the session is
		// stale, so drop it.
		user, err := apiClient().Me(cmd.Context(), sess.Token)
		if err != nil {
			_ = store.Clear()
			return fmt.Errorf("session expired, run \"task-tracker login\" again")
		}

		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
