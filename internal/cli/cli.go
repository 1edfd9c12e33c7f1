package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/hockey-sync/internal/auth"
	"github.com/pfrederiksen/hockey-sync/internal/calendar"
	"github.com/pfrederiksen/hockey-sync/internal/config"
	"github.com/pfrederiksen/hockey-sync/internal/logger"
	"github.com/pfrederiksen/hockey-sync/internal/reconcile"
	"github.com/pfrederiksen/hockey-sync/internal/scraper"
	"github.com/pfrederiksen/hockey-sync/internal/syncer"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig  string
	flagSpan    int
	flagSource  string
	flagDryRun  bool
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hockey-sync",
		Short: "Sync scraped hockey schedules into Google Calendar",
		Long: `Sync scraped hockey schedules into Google Calendar.
Fetches refereeing assignments and team-game invites from their scheduling
sites and reconciles them against the calendar: events are created, skipped,
or deleted so the calendar matches the latest known schedule without
duplicates. One invocation performs one full sync pass.`,
		RunE: runSync,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to config file (default $HOCKEYSYNC_CONFIG)")
	cmd.Flags().IntVar(&flagSpan, "span", 0, "Days of officials schedule to fetch (default from config)")
	cmd.Flags().StringVar(&flagSource, "source", "all", "Source to sync: officials, invites, or all")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Log decisions without mutating the calendar")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newAuthCmd())

	return cmd
}

// runSync is the main command logic
func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagSpan > 0 {
		cfg.Sync.SpanDays = flagSpan
	}

	log := logger.New(logLevel(cfg), os.Stderr)
	logger.SetDefault(log)

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("loading timezone: %w", err)
	}

	client, err := auth.Client(ctx, cfg.Google.CredentialsFile, cfg.Google.TokenFile)
	if err != nil {
		return fmt.Errorf("authorizing: %w", err)
	}

	cal, err := calendar.NewGoogle(ctx, client, cfg.Google.CalendarID)
	if err != nil {
		return fmt.Errorf("initializing calendar: %w", err)
	}
	if flagDryRun {
		cal = calendar.NewDryRun(cal)
	}

	rec := reconcile.New(cal, cfg.Teams.Sub, log)

	sources, err := buildSources(cfg, loc, log)
	if err != nil {
		return err
	}

	runErr := syncer.New(rec, log, sources...).Run(ctx)

	log.Info("sync complete", logger.Fields{
		"created": logger.Counter("sync.created"),
		"skipped": logger.Counter("sync.skipped"),
		"deleted": logger.Counter("sync.deleted"),
		"metrics": logger.GetMetricsSnapshot(),
	})
	return runErr
}

// buildSources selects the scrapers for the --source flag, officials first.
func buildSources(cfg *config.Config, loc *time.Location, log *logger.Logger) ([]syncer.Source, error) {
	var sources []syncer.Source

	source := strings.ToLower(flagSource)
	if source != "all" && source != "officials" && source != "invites" {
		return nil, fmt.Errorf("invalid source: %s (must be officials, invites, or all)", flagSource)
	}

	if source == "all" || source == "officials" {
		officials, err := scraper.NewOfficials(cfg.Ihonc.URL, cfg.Ihonc.Username,
			cfg.Ihonc.Password, cfg.Sync.SpanDays, loc, log)
		if err != nil {
			return nil, fmt.Errorf("initializing officials scraper: %w", err)
		}
		sources = append(sources, officials)
	}

	if source == "all" || source == "invites" {
		invites, err := scraper.NewInvites(cfg.Hockeyvite.URL, cfg.Hockeyvite.Username,
			cfg.Hockeyvite.Password, loc, log)
		if err != nil {
			return nil, fmt.Errorf("initializing invites scraper: %w", err)
		}
		sources = append(sources, invites)
	}

	return sources, nil
}

func logLevel(cfg *config.Config) logger.Level {
	if flagVerbose {
		return logger.LevelDebug
	}
	switch strings.ToLower(cfg.Sync.LogLevel) {
	case "debug":
		return logger.LevelDebug
	case "warn":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

// newAuthCmd creates the auth subcommand running the one-time consent flow.
func newAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authorize calendar access and cache the OAuth2 token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flagConfig)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return auth.Authorize(cmd.Context(), cfg.Google.CredentialsFile,
				cfg.Google.TokenFile, os.Stdin, os.Stdout)
		},
	}
}
