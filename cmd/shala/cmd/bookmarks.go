package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "Manage saved retreats",
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved retreat ids",
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := store.IDs()
		if len(ids) == 0 {
			fmt.Println("No saved retreats.")
			return nil
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

var bookmarksAddCmd = &cobra.Command{
	Use:   "add <event-id>",
	Short: "Save a retreat",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.Add(args[0]); err != nil {
			return err
		}
		fmt.Printf("Saved %s\n", args[0])
		return nil
	},
}

var bookmarksRemoveCmd = &cobra.Command{
	Use:   "remove <event-id>",
	Short: "Unsave a retreat",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.Remove(args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}

var bookmarksShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Fetch and display all saved retreats",
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := store.IDs()
		if len(ids) == 0 {
			fmt.Println("No saved retreats.")
			return nil
		}
		events, err := client.ByIDs(cmd.Context(), ids)
		if err != nil {
			return fmt.Errorf("failed to fetch saved retreats: %w", err)
		}
		fmt.Printf("★ %d saved retreat(s):\n", len(events))
		for _, event := range events {
			printEvent(event)
		}
		return nil
	},
}

func init() {
	bookmarksCmd.AddCommand(bookmarksListCmd, bookmarksAddCmd, bookmarksRemoveCmd, bookmarksShowCmd)
	rootCmd.AddCommand(bookmarksCmd)
}
