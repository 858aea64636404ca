package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/pkg/client"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		result, err := apiClient().Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		store, err := client.NewSessionStore()
		if err != nil {
			return err
		}
		if err := store.Save(&client.Session{ID: result.ID, Name: result.Name, Token: result.Token}); err != nil {
			return err
		}

		fmt.Printf("logged in as %s\n", result.Name)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "email address")
	loginCmd.Flags().String("password", "", "password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd)
}
