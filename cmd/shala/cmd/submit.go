package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/shalafinder/shala/internal/core"
)

var (
	submitFile string
	submitID   string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Publish or update an event from a YAML draft (organizers)",
	Long: `Publish an event draft to the directory. Requires api_token in the
config. With --id the draft replaces an existing event; without it a new
event is created.

Draft format:

  title: "Vinyasa & Breathwork Retreat"
  start_date: 2026-10-12
  end_date: 2026-10-18
  is_public: true
  price: {amount: 980, currency: EUR}
  location: {country: Portugal, city: Ericeira}
  tags: [vinyasa, breathwork]`,
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVarP(&submitFile, "file", "f", "", "YAML draft file (required)")
	submitCmd.Flags().StringVar(&submitID, "id", "", "Existing event id to update")
	submitCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	if viper.GetString("api_token") == "" {
		return fmt.Errorf("api_token not configured; organizer operations require one")
	}

	raw, err := os.ReadFile(submitFile)
	if err != nil {
		return fmt.Errorf("read draft: %w", err)
	}

	var draft core.EventDraft
	if err := yaml.Unmarshal(raw, &draft); err != nil {
		return fmt.Errorf("parse draft: %w", err)
	}
	if draft.Title == "" {
		return fmt.Errorf("draft is missing a title")
	}
	if draft.StartDate.IsZero() {
		return fmt.Errorf("draft is missing start_date")
	}
	if !draft.EndDate.IsZero() && draft.StartDate.After(draft.EndDate) {
		return fmt.Errorf("start_date is after end_date")
	}

	var event core.Event
	if submitID != "" {
		event, err = client.Update(cmd.Context(), submitID, draft)
	} else {
		event, err = client.Create(cmd.Context(), draft)
	}
	if err != nil {
		return fmt.Errorf("submit failed: %w", err)
	}

	visibility := "private"
	if event.IsPublic {
		visibility = "public"
	}
	fmt.Printf("Published %q (%s) — id %s\n", event.Title, visibility, event.ID)
	return nil
}
