package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shalafinder/shala/internal/api"
	"github.com/shalafinder/shala/internal/bookmarks"
	"github.com/shalafinder/shala/internal/core"
	"github.com/shalafinder/shala/internal/listing"
	"github.com/shalafinder/shala/internal/logger"
	"github.com/shalafinder/shala/internal/util"
)

var (
	cfgFile string
	client  *api.Client
	store   *bookmarks.Store
	log     logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "shala",
	Short: "A terminal client for browsing yoga retreats and workshops",
	Long: `shala — find your next retreat without leaving the terminal.

Browse, search, and filter the public retreat directory, save listings for
later, and page through results. Organizers can publish event drafts with
'shala submit'.`,
	PersistentPreRunE: initDeps,
	RunE:              listEvents,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags (inherited by all subcommands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/shala/config.yaml)")

	// Listing flags for the root command
	rootCmd.Flags().StringP("search", "q", "", "Free-text search term")
	rootCmd.Flags().String("country", "", "Filter by country")
	rootCmd.Flags().String("state", "", "Filter by state/province")
	rootCmd.Flags().String("sort", "", "Sort field: start_date or price")
	rootCmd.Flags().String("order", "asc", "Sort order: asc or desc")
	rootCmd.Flags().IntP("limit", "l", listing.DefaultPageSize, "Page size")
	rootCmd.Flags().Int("skip", 0, "Offset into the result list")

	viper.BindPFlag("search", rootCmd.Flags().Lookup("search"))
	viper.BindPFlag("country", rootCmd.Flags().Lookup("country"))
	viper.BindPFlag("state", rootCmd.Flags().Lookup("state"))
	viper.BindPFlag("sort", rootCmd.Flags().Lookup("sort"))
	viper.BindPFlag("order", rootCmd.Flags().Lookup("order"))
	viper.BindPFlag("limit", rootCmd.Flags().Lookup("limit"))
	viper.BindPFlag("skip", rootCmd.Flags().Lookup("skip"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "shala")
		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("SHALA")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("page_size", listing.DefaultPageSize)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("pretty_log", true)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// initDeps wires the API client, bookmark store, and logger that every
// command shares. The browse command swaps the logger for a file sink
// afterwards, since bubbletea owns the terminal there.
func initDeps(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" || cmd.Name() == "completion" {
		return nil
	}

	baseURL := viper.GetString("api_base_url")
	if baseURL == "" {
		return fmt.Errorf("api_base_url not configured\n\nAdd it to %s or set SHALA_API_BASE_URL",
			filepath.Join("~", ".config", "shala", "config.yaml"))
	}

	log = logger.New(viper.GetString("log_level"), viper.GetBool("pretty_log"))

	opts := []api.Option{api.WithLogger(log)}
	if token := viper.GetString("api_token"); token != "" {
		opts = append(opts, api.WithToken(token))
	}
	client = api.NewClient(baseURL, opts...)

	var err error
	store, err = bookmarks.Open(bookmarkPath())
	if err != nil {
		return fmt.Errorf("open bookmark store: %w", err)
	}
	return nil
}

// bookmarkPath resolves the bookmark file location, defaulting to
// ~/.local/share/shala/bookmarks.json.
func bookmarkPath() string {
	if p := viper.GetString("bookmark_file"); p != "" {
		return expandPath(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "bookmarks.json"
	}
	return filepath.Join(home, ".local", "share", "shala", "bookmarks.json")
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// buildListQuery assembles a ListQuery from the root command's flags.
func buildListQuery() (core.ListQuery, error) {
	q := core.ListQuery{
		Search: viper.GetString("search"),
		Limit:  viper.GetInt("limit"),
		Skip:   viper.GetInt("skip"),
	}
	if q.Limit <= 0 {
		q.Limit = listing.DefaultPageSize
	}

	country := viper.GetString("country")
	state := viper.GetString("state")
	if country != "" || state != "" {
		q.Location = &core.LocationFilter{Country: country, StateProvince: state}
	}

	if field := viper.GetString("sort"); field != "" {
		sort, err := core.NewSortConfig(core.SortField(field), core.SortOrder(viper.GetString("order")))
		if err != nil {
			return core.ListQuery{}, err
		}
		q.Sort = &sort
	}
	return q, nil
}

func listEvents(cmd *cobra.Command, args []string) error {
	q, err := buildListQuery()
	if err != nil {
		return err
	}

	page, err := client.ListPublic(cmd.Context(), q)
	if err != nil {
		return fmt.Errorf("failed to fetch retreats: %w", err)
	}

	if page.Total == 0 {
		if q.Search != "" {
			fmt.Printf("No retreats match %q.\n", q.Search)
		} else {
			fmt.Println("No retreats found.")
		}
		return nil
	}

	fmt.Println("🧘 Retreats & workshops:")
	fmt.Println("─────────────────────────────────────────────────")
	for _, event := range page.Items {
		printEvent(event)
	}
	fmt.Println("─────────────────────────────────────────────────")
	fmt.Printf("Showing %d–%d of %d\n", q.Skip+1, q.Skip+len(page.Items), page.Total)
	if q.Skip+len(page.Items) < page.Total {
		fmt.Printf("Next page: shala --skip %d\n", q.Skip+len(page.Items))
	}
	return nil
}

// printEvent writes one event in the list format shared by the root,
// show, and bookmarks commands.
func printEvent(event core.Event) {
	fmt.Println()

	saved := ""
	if store.Contains(event.ID) {
		saved = " ★"
	}
	fmt.Printf("  %s%s\n", event.Title, saved)

	when := event.StartDate.Format("Mon, Jan 2 2006")
	if event.MultiDay() {
		when += " – " + event.EndDate.Format("Mon, Jan 2 2006")
	}
	fmt.Printf("  🗓 When:     %s\n", when)

	if event.Price != nil {
		fmt.Printf("  💰 Price:    %.2f %s\n", event.Price.Amount, event.Price.Currency)
	}
	if loc := event.LocationString(); loc != "" {
		fmt.Printf("  📍 Where:    %s\n", loc)
	}
	if len(event.Tags) > 0 {
		fmt.Printf("  🏷 Tags:     %s\n", strings.Join(event.Tags, ", "))
	}
	if event.Description != "" {
		fmt.Printf("  📝 About:    %s\n", util.TruncateText(util.StripHTML(event.Description), 100))
	}
	fmt.Printf("  🆔 ID:       %s\n", event.ID)
}
