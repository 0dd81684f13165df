package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agriformation_backend/pkg/clients/agriclient"
)

var apiURL string

var rootCmd = &cobra.Command{
	Use:           "agrictl",
	Short:         "Administer the Agriformation volunteer platform",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	defaultURL := os.Getenv("AGRIFORMATION_API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:5000"
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", defaultURL,
		"base URL of the Agriformation API")
}

// newClient builds an API client backed by the credentials file.
func newClient() (*agriclient.Client, *agriclient.Store, error) {
	store, err := agriclient.NewFileStore()
	if err != nil {
		return nil, nil, fmt.Errorf("open credentials store: %w", err)
	}
	store.InitAuth()
	return agriclient.New(apiURL, agriclient.WithSession(store)), store, nil
}

// requireLogin is newClient plus a session check.
func requireLogin() (*agriclient.Client, *agriclient.Store, agriclient.User, error) {
	client, store, err := newClient()
	if err != nil {
		return nil, nil, agriclient.User{}, err
	}
	user, err := agriclient.RequireSession(store)
	if err != nil {
		return nil, nil, agriclient.User{}, fmt.Errorf("not logged in; run `agrictl login` first")
	}
	return client, store, user, nil
}
