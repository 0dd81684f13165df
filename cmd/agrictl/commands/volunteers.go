package commands

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var volunteersStatus string
var volunteerStatusNotes string

var volunteersCmd = &cobra.Command{
	Use:   "volunteers",
	Short: "Manage volunteer profiles",
}

var volunteersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List volunteers",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := requireLogin()
		if err != nil {
			return err
		}

		items, meta, err := client.Admin().Volunteers(cmd.Context(), volunteersStatus)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tROLE\tSTATUS\tPROGRAMS\tHOURS")
		for _, v := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
				v.ID, v.PreferredRole, v.Status, len(v.Programs), v.Hours)
		}
		w.Flush()
		fmt.Printf("%d of %d\n", len(items), meta.Total)
		return nil
	},
}

var volunteersStatusCmd = &cobra.Command{
	Use:   "status <id> <pending|approved|rejected|on-hold>",
	Short: "Set a volunteer's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := requireLogin()
		if err != nil {
			return err
		}
		v, err := client.Admin().UpdateVolunteerStatus(cmd.Context(), args[0], args[1], volunteerStatusNotes)
		if err != nil {
			return err
		}
		fmt.Printf("Volunteer %s is now %s\n", v.ID, v.Status)
		return nil
	},
}

var volunteersHoursCmd = &cobra.Command{
	Use:   "hours <id> <total>",
	Short: "Set a volunteer's cumulative hours (never decreases)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := requireLogin()
		if err != nil {
			return err
		}
		hours, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("hours must be a number: %q", args[1])
		}
		v, err := client.Admin().UpdateHours(cmd.Context(), args[0], hours)
		if err != nil {
			return err
		}
		fmt.Printf("Volunteer %s now has %d hour(s)\n", v.ID, v.Hours)
		return nil
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the admin dashboard numbers",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := requireLogin()
		if err != nil {
			return err
		}
		stats, err := client.Admin().DashboardStats(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("volunteers:           %d\n", stats.TotalVolunteers)
		fmt.Printf("active volunteers:    %d\n", stats.ActiveVolunteers)
		fmt.Printf("pending applications: %d\n", stats.PendingApplications)
		fmt.Printf("hours contributed:    %d\n", stats.TotalHoursContributed)
		return nil
	},
}

func init() {
	volunteersListCmd.Flags().StringVar(&volunteersStatus, "status", "",
		"filter by status (pending, approved, rejected, on-hold)")
	volunteersStatusCmd.Flags().StringVar(&volunteerStatusNotes, "notes", "", "review notes")

	volunteersCmd.AddCommand(volunteersListCmd, volunteersStatusCmd, volunteersHoursCmd)
	rootCmd.AddCommand(volunteersCmd, dashboardCmd)
}
