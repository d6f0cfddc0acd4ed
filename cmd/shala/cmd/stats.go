package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show directory-wide counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := client.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch stats: %w", err)
		}
		fmt.Println("🧘 Directory stats")
		fmt.Printf("  Total events:    %d\n", stats.TotalEvents)
		fmt.Printf("  Upcoming events: %d\n", stats.UpcomingEvents)
		fmt.Printf("  Countries:       %d\n", stats.Countries)
		fmt.Printf("  Organizers:      %d\n", stats.Organizers)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
