package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shalafinder/shala/internal/listing"
	"github.com/shalafinder/shala/internal/logger"
	"github.com/shalafinder/shala/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Launch the interactive retreat browser",
	Long: `Launch an interactive terminal UI for browsing the retreat directory:
incremental search, country filter, sorting, saved listings, and load-more
pagination.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	// stdout belongs to bubbletea; logs go to a file if configured.
	sessionLog := logger.Nop()
	if path := viper.GetString("log_file"); path != "" {
		fileLog, err := logger.NewFile(viper.GetString("log_level"), expandPath(path))
		if err != nil {
			return err
		}
		sessionLog = fileLog
		defer sessionLog.Sync()
	}

	coord := listing.New(store, listing.WithPageSize(viper.GetInt("page_size")))
	m := tui.NewModel(coord, client, store, sessionLog)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}
	return nil
}
