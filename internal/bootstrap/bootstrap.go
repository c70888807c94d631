package bootstrap

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	missionoutadapter "wayne/internal/modules/mission/adapter/out"
	missionout "wayne/internal/modules/mission/port/out"
	missionservice "wayne/internal/modules/mission/service"
	missionusecase "wayne/internal/modules/mission/usecase"
	profileinadapter "wayne/internal/modules/profile/adapter/in"
	profileoutadapter "wayne/internal/modules/profile/adapter/out"
	profiledomain "wayne/internal/modules/profile/domain"
	profileservice "wayne/internal/modules/profile/service"
	profileusecase "wayne/internal/modules/profile/usecase"
	sessioninadapter "wayne/internal/modules/session/adapter/in"
	sessionoutadapter "wayne/internal/modules/session/adapter/out"
	sessionin "wayne/internal/modules/session/port/in"
	sessionusecase "wayne/internal/modules/session/usecase"
	"wayne/internal/platform/clock"
	"wayne/internal/platform/config"
	"wayne/internal/platform/id"
	"wayne/internal/platform/logging"
	uiapp "wayne/internal/ui/app"
)

type App struct {
	Config     config.Config
	Session    sessionin.Usecase
	SessionCLI sessioninadapter.CLIHandler
	ProfileCLI profileinadapter.CLIHandler

	closers []func() error
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	log = logging.OrNop(log)
	ids := id.UUID{}

	planner, err := newPlanner(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	missionUC := missionusecase.NewInteractor(missionservice.NewMissionService(ids, planner), log.Named("mission"))

	projector, err := profileoutadapter.NewSQLiteDebriefProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new debrief projector: %w", err)
	}
	profileUC := profileusecase.NewInteractor(
		profileservice.NewProfileService(clock.SystemClock{}, ids, profiledomain.Progression{Rollover: cfg.XPRollover}),
		profileoutadapter.NewVaultDebriefLog(cfg.DataPath),
		projector,
		log.Named("profile"),
	)

	sessionUC := sessionusecase.NewInteractor(
		ctx,
		missionUC,
		profileUC,
		sessionoutadapter.NewFileStateStore(cfg.DataPath),
		sessionusecase.Options{ProfileName: cfg.ProfileName},
		log.Named("session"),
	)

	return &App{
		Config:     cfg,
		Session:    sessionUC,
		SessionCLI: sessioninadapter.NewCLIHandler(sessionUC),
		ProfileCLI: profileinadapter.NewCLIHandler(profileUC),
		closers:    []func() error{projector.Close},
	}, nil
}

func newPlanner(ctx context.Context, cfg config.Config, log *zap.Logger) (missionout.Planner, error) {
	if cfg.UseFixturePlanner() {
		log.Info("using offline fixture planner", zap.String("provider", cfg.Planner.Provider))
		return missionoutadapter.NewFixturePlanner(), nil
	}
	gemini, err := missionoutadapter.NewGeminiPlanner(ctx, missionoutadapter.GeminiConfig{
		APIKey:  cfg.Planner.APIKey,
		Model:   cfg.Planner.Model,
		Timeout: cfg.Planner.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("new gemini planner: %w", err)
	}
	return missionoutadapter.NewCachingPlanner(gemini, cfg.Planner.CacheSize)
}

func (a *App) Close() error {
	var errs []error
	for _, closer := range a.closers {
		if err := closer(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func RunTUI(ctx context.Context, app *App) error {
	model := uiapp.NewModel(ctx, app.Session)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
