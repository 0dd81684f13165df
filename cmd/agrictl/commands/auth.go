package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"agriformation_backend/pkg/clients/agriclient"
)

var loginEmail string
var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and save the session to ~/.agrictl/credentials.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		email := loginEmail
		if email == "" {
			email, err = prompt("Email: ")
			if err != nil {
				return err
			}
		}
		password := loginPassword
		if password == "" {
			password, err = prompt("Password: ")
			if err != nil {
				return err
			}
		}

		user, _, err := client.Auth().Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s (%s)\n", user.FullName, user.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke the current token and clear the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, store, err := newClient()
		if err != nil {
			return err
		}
		if !store.IsAuthenticated() {
			fmt.Println("Not logged in.")
			return nil
		}
		if err := client.Auth().Logout(cmd.Context()); err != nil {
			fmt.Println("Server-side logout failed; local session cleared anyway.")
			return nil
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session and its navigation entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, user, err := requireLogin()
		if err != nil {
			return err
		}

		fmt.Printf("%s <%s>\nrole: %s\n", user.FullName, user.Email, user.Role)
		fmt.Println("navigation:")
		for _, item := range agriclient.NavItems(user.Role) {
			fmt.Printf("  %-16s %s\n", item.Label, item.Path)
		}
		return nil
	},
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question and defaults to no.
func confirm(question string) bool {
	answer, err := prompt(question + " [y/N] ")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (prompted when omitted)")

	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
}
