package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wayne/internal/bootstrap"
	sessiondto "wayne/internal/modules/session/dto"
	"wayne/internal/platform/config"
	"wayne/internal/platform/logging"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	faint  = color.New(color.Faint).SprintFunc()
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, red(err.Error()))
		os.Exit(1)
	}
}

type rootOptions struct {
	dataPath   string
	configFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "wayne",
		Short:         "Tactical daily planner with debriefs and progression",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataPath, "data", ".", "data directory")
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default <data>/wayne.yaml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newPlanCmd(opts))
	root.AddCommand(newMissionsCmd(opts))
	root.AddCommand(newDebriefCmd(opts))
	root.AddCommand(newProfileCmd(opts))
	root.AddCommand(newHistoryCmd(opts))
	root.AddCommand(newReindexCmd(opts))
	return root
}

// loadApp wires the application. The returned cleanup closes the app and
// flushes the logger.
func loadApp(ctx context.Context, opts *rootOptions) (*bootstrap.App, func(), error) {
	cfg, err := config.Load(opts.dataPath, opts.configFile)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.LogLevel
	if opts.verbose {
		level = "debug"
	}
	log, err := logging.New(level, cfg.LogPath)
	if err != nil {
		return nil, nil, err
	}
	app, err := bootstrap.New(ctx, cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, err
	}
	cleanup := func() {
		if err := app.Close(); err != nil {
			log.Warn("close app", zap.Error(err))
		}
		_ = log.Sync()
	}
	return app, cleanup, nil
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal board",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()
			return bootstrap.RunTUI(cmd.Context(), app)
		},
	}
}

func newPlanCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <objectives...>",
		Short: "Turn free-text objectives into a new mission list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()
			state, err := app.SessionCLI.Plan(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				if state.ErrorMessage != "" {
					return fmt.Errorf("%s: %w", state.ErrorMessage, err)
				}
				return err
			}
			printMissions(cmd.OutOrStdout(), state)
			return nil
		},
	}
}

func newMissionsCmd(opts *rootOptions) *cobra.Command {
	var sortBy string
	var desc bool

	cmd := &cobra.Command{
		Use:   "missions",
		Short: "List the current missions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()
			direction := "asc"
			if desc {
				direction = "desc"
			}
			out, err := app.SessionCLI.Missions(sortBy, direction)
			if err != nil {
				return err
			}
			printMissions(cmd.OutOrStdout(), sessiondto.StateOutput{Missions: out.Missions})
			return nil
		},
	}
	cmd.Flags().StringVar(&sortBy, "sort", "time", "sort by: time|xp|difficulty")
	cmd.Flags().BoolVar(&desc, "desc", false, "descending order")
	return cmd
}

func newDebriefCmd(opts *rootOptions) *cobra.Command {
	var missionID, outcome string

	cmd := &cobra.Command{
		Use:   "debrief",
		Short: "Report a mission outcome and progress the profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()
			out, err := app.SessionCLI.Debrief(cmd.Context(), missionID, outcome)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if !out.Applied {
				_, _ = fmt.Fprintf(w, "nothing to debrief for %s\n", missionID)
				return nil
			}
			_, _ = fmt.Fprintf(w, "%s  %s +%d\n", green(fmt.Sprintf("xp +%d", out.Outcome.XPGained)), out.Outcome.Attribute, out.Outcome.StatIncrease)
			if out.Outcome.LeveledUp {
				_, _ = fmt.Fprintln(w, yellow(fmt.Sprintf("level up: %d (%s)", out.State.Profile.Level, out.State.Rank)))
			}
			if out.NotePath != "" {
				_, _ = fmt.Fprintf(w, "note=%s\n", out.NotePath)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&missionID, "id", "", "mission id")
	cmd.Flags().StringVar(&outcome, "outcome", "on-target", "exceptional|on-target|compromised")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newProfileCmd(opts *rootOptions) *cobra.Command {
	profile := &cobra.Command{
		Use:   "profile",
		Short: "Show the profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()
			printProfile(cmd.OutOrStdout(), app.SessionCLI.Profile())
			return nil
		},
	}

	var name string
	rename := &cobra.Command{
		Use:   "rename",
		Short: "Change the profile display name",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()
			state, err := app.SessionCLI.Rename(cmd.Context(), name)
			if err != nil {
				return err
			}
			printProfile(cmd.OutOrStdout(), state)
			return nil
		},
	}
	rename.Flags().StringVar(&name, "name", "", "new display name")
	_ = rename.MarkFlagRequired("name")

	profile.AddCommand(rename)
	return profile
}

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent debriefs, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()
			out, err := app.ProfileCLI.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(out.Records) == 0 {
				_, _ = fmt.Fprintln(w, "no debriefs")
				return nil
			}
			for _, r := range out.Records {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\txp=%d\t%s+%d\tlevel=%d\n",
					r.RecordedAt.Local().Format(time.DateTime),
					r.MissionTitle,
					r.Multiplier.Label(),
					r.XPGained,
					r.Attribute,
					r.StatIncrease,
					r.LevelAfter,
				)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of debriefs")
	return cmd
}

func newReindexCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the debrief index from notes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer cleanup()
			out, err := app.ProfileCLI.Reindex(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reindexed %d debriefs\n", out.Records)
			return nil
		},
	}
}

func printMissions(w io.Writer, state sessiondto.StateOutput) {
	if len(state.Missions) == 0 {
		_, _ = fmt.Fprintln(w, "no missions")
		return
	}
	for _, m := range state.Missions {
		status := faint("pending")
		if m.Completed {
			status = green("done")
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%dm\t%s\t%s\t%dxp\t%s\t%s\n",
			m.ID, m.StartTime, m.DurationMinutes, m.Category, m.Difficulty, m.XPReward, status, m.Title)
	}
}

func printProfile(w io.Writer, state sessiondto.StateOutput) {
	p := state.Profile
	_, _ = fmt.Fprintf(w, "%s  level %d  %s\n", p.Name, p.Level, yellow(state.Rank))
	_, _ = fmt.Fprintf(w, "xp %d/%d  streak %d\n", p.CurrentXP, p.XPToNextLevel, p.Streak)
	_, _ = fmt.Fprintf(w, "intellect %d  strength %d  tech %d  willpower %d\n",
		p.Stats.Intellect, p.Stats.Strength, p.Stats.Tech, p.Stats.Willpower)
}
