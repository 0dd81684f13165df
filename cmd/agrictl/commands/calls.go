package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var callsCmd = &cobra.Command{
	Use:   "calls",
	Short: "Manage volunteer calls",
}

var callsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List volunteer calls, including drafts",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := requireLogin()
		if err != nil {
			return err
		}

		items, meta, err := client.Calls().AdminList(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tEFFECTIVE\tPUBLISHED\tDEADLINE\tAPPS")
		for _, call := range items {
			published := "no"
			if call.IsPublished {
				published = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
				call.ID, call.Title, call.Status, call.EffectiveStatus, published,
				call.Deadline.Format("2006-01-02"), call.ApplicationCount)
		}
		w.Flush()
		fmt.Printf("%d of %d\n", len(items), meta.Total)
		return nil
	},
}

var callsPublishCmd = &cobra.Command{
	Use:   "publish <id>",
	Short: "Publish a call to the public listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCallPublished(cmd, args[0], true)
	},
}

var callsUnpublishCmd = &cobra.Command{
	Use:   "unpublish <id>",
	Short: "Remove a call from the public listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCallPublished(cmd, args[0], false)
	},
}

var callsStatusCmd = &cobra.Command{
	Use:   "status <id> <draft|open|closed|cancelled>",
	Short: "Set the stored status of a call",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := requireLogin()
		if err != nil {
			return err
		}
		call, err := client.Calls().SetStatus(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("%q is now %s (effective: %s)\n", call.Title, call.Status, call.EffectiveStatus)
		return nil
	},
}

var callsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a call and its applications",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := requireLogin()
		if err != nil {
			return err
		}

		call, err := client.Calls().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !confirm(fmt.Sprintf("Delete %q and its %d application(s)?", call.Title, call.ApplicationCount)) {
			fmt.Println("Aborted.")
			return nil
		}

		if err := client.Calls().Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	},
}

func setCallPublished(cmd *cobra.Command, id string, published bool) error {
	client, _, _, err := requireLogin()
	if err != nil {
		return err
	}
	call, err := client.Calls().SetPublished(cmd.Context(), id, published)
	if err != nil {
		return err
	}
	state := "unpublished"
	if call.IsPublished {
		state = "published"
	}
	fmt.Printf("%q is now %s\n", call.Title, state)
	return nil
}

func init() {
	callsCmd.AddCommand(callsListCmd, callsPublishCmd, callsUnpublishCmd, callsStatusCmd, callsDeleteCmd)
	rootCmd.AddCommand(callsCmd)
}
