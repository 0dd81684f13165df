package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var applicationsStatus string
var reviewNotes string

var applicationsCmd = &cobra.Command{
	Use:   "applications",
	Short: "Manage volunteer applications",
}

var applicationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List volunteer applications",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := requireLogin()
		if err != nil {
			return err
		}

		items, meta, err := client.Admin().Applications(cmd.Context(), applicationsStatus)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tROLE\tSTATUS\tSUBMITTED")
		for _, app := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				app.ID, app.FullName, app.PreferredRole, app.Status,
				app.CreatedAt.Format("2006-01-02"))
		}
		w.Flush()
		fmt.Printf("%d of %d\n", len(items), meta.Total)
		return nil
	},
}

var applicationsAcceptCmd = &cobra.Command{
	Use:   "accept <id>",
	Short: "Accept a pending or reviewed application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return reviewApplication(cmd, args[0], "accepted")
	},
}

var applicationsRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject a pending or reviewed application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return reviewApplication(cmd, args[0], "rejected")
	},
}

var applicationsMarkReviewedCmd = &cobra.Command{
	Use:   "mark-reviewed <id>",
	Short: "Mark a pending application as reviewed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := requireLogin()
		if err != nil {
			return err
		}
		app, err := client.Admin().MarkReviewed(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s is now %s\n", app.FullName, app.Status)
		return nil
	},
}

func reviewApplication(cmd *cobra.Command, id, status string) error {
	client, _, _, err := requireLogin()
	if err != nil {
		return err
	}
	app, err := client.Admin().ReviewApplication(cmd.Context(), id, status, reviewNotes)
	if err != nil {
		return err
	}
	fmt.Printf("%s is now %s\n", app.FullName, app.Status)
	return nil
}

func init() {
	applicationsListCmd.Flags().StringVar(&applicationsStatus, "status", "",
		"filter by status (pending, reviewed, accepted, rejected)")
	applicationsAcceptCmd.Flags().StringVar(&reviewNotes, "notes", "", "review notes")
	applicationsRejectCmd.Flags().StringVar(&reviewNotes, "notes", "", "review notes")

	applicationsCmd.AddCommand(
		applicationsListCmd,
		applicationsAcceptCmd,
		applicationsRejectCmd,
		applicationsMarkReviewedCmd,
	)
	rootCmd.AddCommand(applicationsCmd)
}
