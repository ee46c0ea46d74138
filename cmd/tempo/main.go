package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tempo/internal/bootstrap"
	checkindto "tempo/internal/modules/checkin/dto"
	plannerdto "tempo/internal/modules/planner/dto"
	progressdto "tempo/internal/modules/progress/dto"
	sessiondto "tempo/internal/modules/session/dto"
	"tempo/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var homePath string

	root := &cobra.Command{
		Use:           "tempo",
		Short:         "Focus timer, planner and study stats",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&homePath, "home", "", "data directory (default ~/.tempo)")

	root.AddCommand(newTUICmd(&homePath))
	root.AddCommand(newSessionCmd(&homePath))
	root.AddCommand(newStatsCmd(&homePath))
	root.AddCommand(newCheckinCmd(&homePath))
	root.AddCommand(newPlanCmd(&homePath))
	root.AddCommand(newBreatheCmd(&homePath))
	root.AddCommand(newRecordsCmd(&homePath))
	root.AddCommand(newPluginCmd(&homePath))
	return root
}

func loadApp(homePath string) (*bootstrap.App, error) {
	cfg, err := config.New(homePath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run tempo terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.StartReminders(); err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newSessionCmd(homePath *string) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Focus session lifecycle"}

	var label string
	start := &cobra.Command{
		Use:   "start",
		Short: "Start a focus session with configured durations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			loaded, err := app.Settings.Load()
			if err != nil {
				return err
			}
			status, err := app.SessionCLI.Start(context.Background(), sessiondto.StartInput{
				Label:            label,
				DailyGoalSeconds: loaded.DailyGoal(),
				StudyDuration:    loaded.StudyDuration(),
				BreakDuration:    loaded.BreakDuration(),
				Ambience:         loaded.Ambience,
			})
			if err != nil {
				return err
			}
			printStatus(cmd, status)
			return nil
		},
	}
	start.Flags().StringVar(&label, "label", "", "what this session is for")
	session.AddCommand(start)

	session.AddCommand(statusVerb(homePath, "pause", "Pause the running session", func(app *bootstrap.App) (sessiondto.StatusOutput, error) {
		return app.SessionCLI.Pause(context.Background())
	}))
	session.AddCommand(statusVerb(homePath, "resume", "Resume a paused session", func(app *bootstrap.App) (sessiondto.StatusOutput, error) {
		return app.SessionCLI.Resume(context.Background())
	}))
	session.AddCommand(statusVerb(homePath, "skip-break", "Skip the current break and return to study", func(app *bootstrap.App) (sessiondto.StatusOutput, error) {
		return app.SessionCLI.SkipBreak(context.Background())
	}))
	session.AddCommand(statusVerb(homePath, "status", "Show the current session state", func(app *bootstrap.App) (sessiondto.StatusOutput, error) {
		return app.SessionCLI.Status(context.Background())
	}))

	session.AddCommand(&cobra.Command{
		Use:   "stop",
		Short: "Stop the session and write its log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.SessionCLI.Stop(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "stopped: study=%s break=%s log=%s\n",
				formatSeconds(out.StudySeconds), formatSeconds(out.BreakSeconds), out.LogPath)
			return nil
		},
	})

	return session
}

func statusVerb(homePath *string, use, short string, call func(*bootstrap.App) (sessiondto.StatusOutput, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			status, err := call(app)
			if err != nil {
				return err
			}
			printStatus(cmd, status)
			return nil
		},
	}
}

func printStatus(cmd *cobra.Command, status sessiondto.StatusOutput) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s remaining, goal %s/%s\n",
		status.State, status.Phase,
		formatSeconds(status.RemainingSeconds),
		formatSeconds(status.GoalProgressSeconds),
		formatSeconds(status.DailyGoalSeconds))
	if status.Label != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "label: %s\n", status.Label)
	}
	if status.PromptPending {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "prompt: %s\n", status.StatusText)
	}
}

func newStatsCmd(homePath *string) *cobra.Command {
	stats := &cobra.Command{Use: "stats", Short: "Study progress and streaks"}

	var asJSON bool
	stats.PersistentFlags().BoolVar(&asJSON, "json", false, "emit JSON")

	stats.AddCommand(&cobra.Command{
		Use:   "today",
		Short: "Today's study totals against the goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.ProgressCLI.Today(context.Background())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, out)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: studied %s of %s (%.0f%%), %d sessions, break %s\n",
				out.DayKey,
				formatSeconds(out.EffectiveStudySeconds),
				formatSeconds(out.DailyGoalSeconds),
				out.Ratio*100,
				out.SessionsCount,
				formatSeconds(out.BreakSeconds))
			if out.RemainingGoalSeconds > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s to go\n", formatSeconds(out.RemainingGoalSeconds))
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "goal met")
			}
			return nil
		},
	})

	stats.AddCommand(summaryVerb(homePath, &asJSON, "week", "This week's totals", func(app *bootstrap.App) (progressdto.SummaryOutput, error) {
		return app.ProgressCLI.WeekSummary(context.Background())
	}))
	stats.AddCommand(summaryVerb(homePath, &asJSON, "month", "This month's totals", func(app *bootstrap.App) (progressdto.SummaryOutput, error) {
		return app.ProgressCLI.MonthSummary(context.Background())
	}))

	stats.AddCommand(&cobra.Command{
		Use:   "streak",
		Short: "Current and longest goal streaks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.ProgressCLI.Streaks(context.Background())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, out)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "current streak %d days, longest %d days\n", out.Current, out.Longest)
			return nil
		},
	})

	stats.AddCommand(&cobra.Command{
		Use:   "badges",
		Short: "List badges and which are earned",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			badges, err := app.ProgressCLI.Badges(context.Background())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, badges)
			}
			for _, b := range badges {
				marker := " "
				if b.Earned {
					marker = "*"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", marker, b.Title)
			}
			return nil
		},
	})

	var historyLimit int
	history := &cobra.Command{
		Use:   "history",
		Short: "Recent days, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			days, err := app.ProgressCLI.History(context.Background(), historyLimit)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, days)
			}
			if len(days) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no study recorded yet")
				return nil
			}
			for _, d := range days {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d sessions\t%.0f%%\n",
					d.DayKey, formatSeconds(d.StudySeconds), d.SessionsCount, d.Ratio*100)
			}
			return nil
		},
	}
	history.Flags().IntVar(&historyLimit, "limit", 14, "days to show")
	stats.AddCommand(history)

	return stats
}

func summaryVerb(homePath *string, asJSON *bool, use, short string, call func(*bootstrap.App) (progressdto.SummaryOutput, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := call(app)
			if err != nil {
				return err
			}
			if *asJSON {
				return printJSON(cmd, out)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "studied %s over %d sessions on %d days, break %s\n",
				formatSeconds(out.StudySeconds),
				out.SessionsCount,
				out.ActiveDays,
				formatSeconds(out.BreakSeconds))
			return nil
		},
	}
}

func newCheckinCmd(homePath *string) *cobra.Command {
	checkin := &cobra.Command{Use: "checkin", Short: "Mood and energy check-ins"}

	var energy int
	var note string
	add := &cobra.Command{
		Use:   "add <mood 1-5>",
		Short: "Record how you feel right now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mood, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("mood must be a number 1-5")
			}
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			entry, err := app.CheckinCLI.Add(context.Background(), checkindto.AddInput{
				Mood:   mood,
				Energy: energy,
				Note:   note,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded mood=%d energy=%d at %s\n",
				entry.Mood, entry.Energy, entry.At.Format("15:04"))
			return nil
		},
	}
	add.Flags().IntVar(&energy, "energy", 3, "energy 1-5")
	add.Flags().StringVar(&note, "note", "", "optional note")
	checkin.AddCommand(add)

	checkin.AddCommand(&cobra.Command{
		Use:   "today",
		Short: "Show today's check-ins",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			summary, err := app.CheckinCLI.Today(context.Background())
			if err != nil {
				return err
			}
			if len(summary.Entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no check-ins today")
				return nil
			}
			for _, e := range summary.Entries {
				line := fmt.Sprintf("%s  mood=%d energy=%d", e.At.Format("15:04"), e.Mood, e.Energy)
				if e.Note != "" {
					line += "  " + e.Note
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "average mood %.1f\n", summary.AverageMood)
			return nil
		},
	})

	checkin.AddCommand(&cobra.Command{
		Use:   "range <from> <to>",
		Short: "List check-ins between two days, inclusive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			entries, err := app.CheckinCLI.Range(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no check-ins in range")
				return nil
			}
			for _, e := range entries {
				line := fmt.Sprintf("%s %s  mood=%d energy=%d", e.DayKey, e.At.Format("15:04"), e.Mood, e.Energy)
				if e.Note != "" {
					line += "  " + e.Note
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	})

	return checkin
}

func newPlanCmd(homePath *string) *cobra.Command {
	plan := &cobra.Command{Use: "plan", Short: "Daily study planner"}

	var dayKey string
	add := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task for today or a given day",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			task, err := app.PlannerCLI.Add(context.Background(), plannerdto.AddInput{
				Title:  strings.Join(args, " "),
				DayKey: dayKey,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s on %s: %s\n", task.ID, task.DayKey, task.Title)
			return nil
		},
	}
	add.Flags().StringVar(&dayKey, "day", "", "day key YYYY-MM-DD (default today)")
	plan.AddCommand(add)

	var listDay string
	list := &cobra.Command{
		Use:   "list",
		Short: "List tasks for today or a given day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			var out plannerdto.DayPlanOutput
			if listDay == "" {
				out, err = app.PlannerCLI.TodayPlan(context.Background())
			} else {
				out, err = app.PlannerCLI.DayPlan(context.Background(), listDay)
			}
			if err != nil {
				return err
			}
			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "nothing planned for %s\n", out.DayKey)
				return nil
			}
			for _, t := range out.Tasks {
				marker := " "
				if t.Done {
					marker = "x"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s  %s\n", marker, t.ID, t.Title)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d open, %d done\n", out.OpenCount, out.DoneCount)
			return nil
		},
	}
	list.Flags().StringVar(&listDay, "day", "", "day key YYYY-MM-DD (default today)")
	plan.AddCommand(list)

	plan.AddCommand(&cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			task, err := app.PlannerCLI.Complete(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "done: %s\n", task.Title)
			return nil
		},
	})

	plan.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.PlannerCLI.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	})

	plan.AddCommand(&cobra.Command{
		Use:   "carry-over",
		Short: "Move open tasks from past days to today",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			moved, err := app.PlannerCLI.CarryOver(context.Background())
			if err != nil {
				return err
			}
			if len(moved) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "nothing to carry over")
				return nil
			}
			for _, t := range moved {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "moved to today: %s\n", t.Title)
			}
			return nil
		},
	})

	return plan
}

func newBreatheCmd(homePath *string) *cobra.Command {
	breathe := &cobra.Command{Use: "breathe", Short: "Breathing exercise patterns"}

	breathe.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available breathing patterns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			patterns, err := app.CalmCLI.Patterns(context.Background())
			if err != nil {
				return err
			}
			for _, p := range patterns {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%ds cycle\n", p.ID, p.Name, p.CycleSeconds)
			}
			return nil
		},
	})

	breathe.AddCommand(&cobra.Command{
		Use:   "meditations",
		Short: "List meditation presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			presets, err := app.CalmCLI.Meditations(context.Background())
			if err != nil {
				return err
			}
			for _, p := range presets {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", p.ID, p.Name, formatSeconds(p.DurationSeconds))
			}
			return nil
		},
	})

	return breathe
}

func newRecordsCmd(homePath *string) *cobra.Command {
	records := &cobra.Command{Use: "records", Short: "Raw daily study records"}

	records.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Dump every daily record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			all, err := app.RecordsCLI.ListAll(context.Background())
			if err != nil {
				return err
			}
			if len(all) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no records")
				return nil
			}
			for _, r := range all {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tstudy=%s\tbreak=%s\tsessions=%d\n",
					r.DayKey, formatSeconds(r.StudySeconds), formatSeconds(r.BreakSeconds), r.SessionsCount)
			}
			return nil
		},
	})

	records.AddCommand(&cobra.Command{
		Use:   "show <day>",
		Short: "Show one day's record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			r, err := app.RecordsCLI.ForDay(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tstudy=%s\tbreak=%s\tsessions=%d\n",
				r.DayKey, formatSeconds(r.StudySeconds), formatSeconds(r.BreakSeconds), r.SessionsCount)
			return nil
		},
	})

	return records
}

func newPluginCmd(homePath *string) *cobra.Command {
	plugin := &cobra.Command{Use: "plugin", Short: "Notifier plugin operations"}

	plugin.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List plugin manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			plugins, err := app.NotifierCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(plugins) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins configured")
				return nil
			}
			for _, p := range plugins {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s enabled=%t capabilities=%s binary=%s\n",
					p.Name, p.Version, p.Enabled, strings.Join(p.Capabilities, ","), p.Binary)
			}
			return nil
		},
	})

	plugin.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Validate plugin checksums and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			defer app.Close()
			results, err := app.NotifierCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins configured")
				return nil
			}
			failed := false
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s checksum=%t binary=%t lifecycle=%t",
					r.Name, r.ChecksumValid, r.BinaryReachable, r.LifecycleOK)
				if r.Error != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " error=%q", r.Error)
					failed = true
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			if failed {
				return fmt.Errorf("plugin doctor found failing plugins")
			}
			return nil
		},
	})

	return plugin
}

func printJSON(cmd *cobra.Command, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	return nil
}

func formatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
