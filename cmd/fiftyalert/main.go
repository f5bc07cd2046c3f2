// Command fiftyalert is the DoorDash 50-point alert CLI.
//
// Two independently scheduled phases hand off through a JSON state file:
//
//	fiftyalert scan                     # check yesterday's games
//	fiftyalert scan --date 2024-01-26   # check a specific date
//	fiftyalert scan --test              # check Luka's 73-point game
//	fiftyalert notify                   # send the alert if one is pending
//	fiftyalert notify --test me@x.com   # send a test email to one address
//	fiftyalert notify --preview         # render without sending
//	fiftyalert contacts                 # list the audience
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/urielgre/doordash-fifty-alert/internal/config"
	"github.com/urielgre/doordash-fifty-alert/internal/notify"
	"github.com/urielgre/doordash-fifty-alert/internal/provider/nba"
	"github.com/urielgre/doordash-fifty-alert/internal/scan"
	"github.com/urielgre/doordash-fifty-alert/internal/state"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "fiftyalert",
		Short: "DoorDash 50-point alert pipeline",
	}

	root.AddCommand(scanCmd())
	root.AddCommand(notifyCmd())
	root.AddCommand(contactsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// scan command
// --------------------------------------------------------------------------

func scanCmd() *cobra.Command {
	var (
		date string
		test bool
	)
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Check box scores for 50+ point performances and persist the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) error {
				checkDate, err := scan.ResolveDate(date, test, nil)
				if err != nil {
					return err
				}
				if test {
					logger.Info("[TEST MODE] Checking Luka's 73-point game", "date", checkDate)
				}

				client := nba.NewClient(cfg.StatsBaseURL, cfg.RequestDelay, cfg.StatsTimeout, logger)
				scanner := scan.NewScanner(client, cfg.PointsThreshold, logger)
				store := newStore(cfg)

				_, err = scan.Run(ctx, client, scanner, store, checkDate, logger)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date to check (YYYY-MM-DD). Default: yesterday")
	cmd.Flags().BoolVar(&test, "test", false, "Check the known 73-point game (2024-01-26)")
	return cmd
}

// --------------------------------------------------------------------------
// notify command
// --------------------------------------------------------------------------

func notifyCmd() *cobra.Command {
	var (
		testAddr string
		preview  bool
	)
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send the pending alert email, if any",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) error {
				store := newStore(cfg)

				// Preview renders locally; no credentials and no network.
				if preview {
					return notify.Preview(cfg, store, logger)
				}

				if err := cfg.RequireNotifyCreds(); err != nil {
					return err
				}

				client := notify.NewResendClient(cfg.ResendAPIKey, cfg.ResendAudienceID)
				dispatcher := notify.NewDispatcher(client, cfg, logger)
				return notify.Run(ctx, store, dispatcher, testAddr, logger)
			})
		},
	}
	cmd.Flags().StringVar(&testAddr, "test", "", "Send a test email to this address only")
	cmd.Flags().BoolVar(&preview, "preview", false, "Render the email without sending")
	return cmd
}

// --------------------------------------------------------------------------
// contacts command
// --------------------------------------------------------------------------

func contactsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contacts",
		Short: "List all contacts in the Resend audience",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) error {
				if err := cfg.RequireNotifyCreds(); err != nil {
					return err
				}

				client := notify.NewResendClient(cfg.ResendAPIKey, cfg.ResendAudienceID)
				contacts, err := client.ListContacts(ctx)
				if err != nil {
					return err
				}

				subscribed := 0
				for _, c := range contacts {
					status := "subscribed"
					if c.Unsubscribed {
						status = "unsubscribed"
					} else {
						subscribed++
					}
					fmt.Printf("  %s (%s)\n", c.Email, status)
				}
				logger.Info("Audience summary",
					"subscribed", subscribed,
					"unsubscribed", len(contacts)-subscribed,
					"total", len(contacts))
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

func newStore(cfg *config.Config) *state.Store {
	return state.NewStore(cfg.StateFile, state.PromoWindow{
		Start: cfg.PromoStart,
		End:   cfg.PromoEnd,
	})
}

// run handles config loading and context cancellation.
func run(fn func(ctx context.Context, cfg *config.Config) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	return fn(ctx, config.Load())
}
