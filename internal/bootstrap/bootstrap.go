package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	calminadapter "tempo/internal/modules/calm/adapter/in"
	calmusecase "tempo/internal/modules/calm/usecase"
	checkininadapter "tempo/internal/modules/checkin/adapter/in"
	checkinoutadapter "tempo/internal/modules/checkin/adapter/out"
	checkinservice "tempo/internal/modules/checkin/service"
	checkinusecase "tempo/internal/modules/checkin/usecase"
	notifierinadapter "tempo/internal/modules/notifier/adapter/in"
	notifieroutadapter "tempo/internal/modules/notifier/adapter/out"
	notifierdto "tempo/internal/modules/notifier/dto"
	notifierin "tempo/internal/modules/notifier/port/in"
	notifierservice "tempo/internal/modules/notifier/service"
	notifierusecase "tempo/internal/modules/notifier/usecase"
	plannerinadapter "tempo/internal/modules/planner/adapter/in"
	planneroutadapter "tempo/internal/modules/planner/adapter/out"
	plannerservice "tempo/internal/modules/planner/service"
	plannerusecase "tempo/internal/modules/planner/usecase"
	progressinadapter "tempo/internal/modules/progress/adapter/in"
	progressoutadapter "tempo/internal/modules/progress/adapter/out"
	progressin "tempo/internal/modules/progress/port/in"
	progressservice "tempo/internal/modules/progress/service"
	progressusecase "tempo/internal/modules/progress/usecase"
	recordsinadapter "tempo/internal/modules/records/adapter/in"
	recordsoutadapter "tempo/internal/modules/records/adapter/out"
	recordsservice "tempo/internal/modules/records/service"
	recordsusecase "tempo/internal/modules/records/usecase"
	sessioninadapter "tempo/internal/modules/session/adapter/in"
	sessionoutadapter "tempo/internal/modules/session/adapter/out"
	sessiondto "tempo/internal/modules/session/dto"
	sessionservice "tempo/internal/modules/session/service"
	sessionusecase "tempo/internal/modules/session/usecase"
	"tempo/internal/platform/clock"
	"tempo/internal/platform/config"
	"tempo/internal/platform/id"
	"tempo/internal/platform/scheduler"
	"tempo/internal/platform/settings"
	uiapp "tempo/internal/ui/app"
)

type App struct {
	SessionCLI  sessioninadapter.CLIHandler
	RecordsCLI  recordsinadapter.CLIHandler
	ProgressCLI progressinadapter.CLIHandler
	CheckinCLI  checkininadapter.CLIHandler
	PlannerCLI  plannerinadapter.CLIHandler
	CalmCLI     calminadapter.CLIHandler
	NotifierCLI notifierinadapter.CLIHandler

	Settings *settings.Store

	notifierUC notifierin.Usecase
	progressUC progressin.Usecase
	records    *recordsoutadapter.SQLiteRecordStore
	host       interface{ Close() }
	reminders  *scheduler.Scheduler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}
	settingsStore := settings.NewStore(cfg.SettingsPath)

	recordStore, err := recordsoutadapter.NewSQLiteRecordStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}
	recordsUC := recordsusecase.NewInteractor(recordsservice.NewRecordService(recordStore))

	checkinStore, err := checkinoutadapter.NewSQLiteCheckInStore(recordStore.DB())
	if err != nil {
		return nil, fmt.Errorf("open check-in store: %w", err)
	}
	checkinUC := checkinusecase.NewInteractor(checkinservice.NewCheckInService(clk, ids, checkinStore))

	taskStore, err := planneroutadapter.NewSQLiteTaskStore(recordStore.DB())
	if err != nil {
		return nil, fmt.Errorf("open task store: %w", err)
	}
	plannerUC := plannerusecase.NewInteractor(plannerservice.NewPlannerService(clk, ids, taskStore))

	host := notifieroutadapter.NewGRPCHost()
	notifierUC := notifierusecase.NewInteractor(notifierservice.NewNotifierService(
		notifieroutadapter.NewFileManifestStore(cfg.PluginsPath),
		host,
	))

	sessionUC := sessionusecase.NewInteractor(sessionservice.NewFocusService(
		clk,
		ids,
		sessionoutadapter.NewRecordsGateway(recordsUC),
		sessionoutadapter.NewFileSnapshotStore(cfg.SnapshotPath),
		sessionoutadapter.NewNotifierSoundBridge(notifierUC),
		sessionoutadapter.NewFileSessionLogStore(cfg.LogsPath),
	))

	progressUC := progressusecase.NewInteractor(progressservice.NewProgressService(
		clk,
		progressoutadapter.NewRecordsSource(recordsUC),
		progressoutadapter.NewSessionLiveSource(sessionUC),
		progressoutadapter.NewSettingsGoalSource(settingsStore),
	))

	calmUC := calmusecase.NewInteractor()

	return &App{
		SessionCLI:  sessioninadapter.NewCLIHandler(sessionUC),
		RecordsCLI:  recordsinadapter.NewCLIHandler(recordsUC),
		ProgressCLI: progressinadapter.NewCLIHandler(progressUC),
		CheckinCLI:  checkininadapter.NewCLIHandler(checkinUC),
		PlannerCLI:  plannerinadapter.NewCLIHandler(plannerUC),
		CalmCLI:     calminadapter.NewCLIHandler(calmUC),
		NotifierCLI: notifierinadapter.NewCLIHandler(notifierUC),
		Settings:    settingsStore,
		notifierUC:  notifierUC,
		progressUC:  progressUC,
		records:     recordStore,
		host:        host,
	}, nil
}

// Close releases the database and kills any plugin still playing.
func (a *App) Close() {
	if a.reminders != nil {
		a.reminders.Stop()
	}
	if a.host != nil {
		a.host.Close()
	}
	if a.records != nil {
		_ = a.records.Close()
	}
}

// StartReminders schedules the daily nudge and the evening summary
// through the notifier plugins. A missing notify plugin makes the jobs
// silent no-ops.
func (a *App) StartReminders() error {
	loaded, err := a.Settings.Load()
	if err != nil {
		return err
	}
	if !loaded.RemindersEnabled {
		return nil
	}
	a.reminders = scheduler.New()
	if err := a.reminders.AddDaily(loaded.ReminderHour, func() {
		ctx := context.Background()
		today, err := a.progressUC.Today(ctx)
		if err != nil || today.RemainingGoalSeconds == 0 {
			return
		}
		_ = a.notifierUC.Notify(ctx, notifierdto.NotifyInput{
			Title: "tempo",
			Body:  fmt.Sprintf("%d minutes to go on today's goal", today.RemainingGoalSeconds/60),
		})
	}); err != nil {
		return err
	}
	if err := a.reminders.AddDaily(loaded.SummaryHour, func() {
		ctx := context.Background()
		today, err := a.progressUC.Today(ctx)
		if err != nil {
			return
		}
		_ = a.notifierUC.Notify(ctx, notifierdto.NotifyInput{
			Title: "tempo",
			Body:  fmt.Sprintf("today: %dm studied over %d sessions", today.EffectiveStudySeconds/60, today.SessionsCount),
		})
	}); err != nil {
		return err
	}
	a.reminders.Start()
	return nil
}

func RunTUI(app *App) error {
	defaults := func() sessiondto.StartInput {
		loaded, err := app.Settings.Load()
		if err != nil {
			loaded = settings.Defaults()
		}
		return sessiondto.StartInput{
			DailyGoalSeconds: loaded.DailyGoal(),
			StudyDuration:    loaded.StudyDuration(),
			BreakDuration:    loaded.BreakDuration(),
			Ambience:         loaded.Ambience,
		}
	}
	model := uiapp.NewModel(
		app.SessionCLI,
		app.ProgressCLI,
		app.PlannerCLI,
		app.CheckinCLI,
		app.CalmCLI,
		app.NotifierCLI,
		defaults,
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
