package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/pkg/client"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		result, err := apiClient().Register(cmd.Context(), name, email, password)
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

		fmt.Printf("registered and logged in as %s\n", result.Name)
		return nil
	},
}

func init() {
	registerCmd.Flags().String("name", "", "display name")
	registerCmd.Flags().String("email", "", "email address")
	registerCmd.Flags().String("password", "", "password")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(registerCmd)
}
