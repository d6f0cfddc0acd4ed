package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shalafinder/shala/internal/util"
)

var showCmd = &cobra.Command{
	Use:   "show <event-id>",
	Short: "Show full details for one retreat",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	events, err := client.ByIDs(cmd.Context(), []string{args[0]})
	if err != nil {
		return fmt.Errorf("failed to fetch retreat: %w", err)
	}
	if len(events) == 0 {
		return fmt.Errorf("no retreat found with id %s", args[0])
	}

	event := events[0]
	fmt.Println()
	printEvent(event)

	if event.Description != "" {
		fmt.Println()
		fmt.Println("  📝 Description:")
		for _, line := range strings.Split(util.StripHTML(event.Description), "\n") {
			fmt.Printf("     %s\n", line)
		}
	}
	if len(event.Images) > 0 {
		fmt.Println()
		fmt.Println("  🖼 Photos:")
		for i, img := range event.Images {
			fmt.Printf("     • %s\n", util.MakeHyperlink(img, fmt.Sprintf("photo %d", i+1)))
		}
	}
	return nil
}
