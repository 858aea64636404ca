package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/pkg/client"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:           "task-tracker",
	Short:         "Personal task tracking service and client",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	defaultServer := os.Getenv("TASK_TRACKER_SERVER")
	if defaultServer == "" {
		defaultServer = "http://127.0.0.1:5000"
	}
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer, "base URL of the task tracker server")
}

func apiClient() *client.Client {
	return client.New(serverURL)
}

// requireSession loads the persisted session; a missing session means the
// command needs a prior login.
func requireSession() (*client.Session, *client.SessionStore, error) {
	store, err := client.NewSessionStore()
	if err != nil {
		return nil, nil, err
	}

	sess, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	if sess == nil {
		return nil, nil, fmt.Errorf("not logged in, run \"task-tracker login\" first")
	}

	return sess, store, nil
}
