package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskpilot/config"
	_ "taskpilot/docs" // Swagger docs
	"taskpilot/internal/httpserver"
	listHTTP "taskpilot/internal/list/delivery/http"
	listSqlite "taskpilot/internal/list/repository/sqlite"
	listUsecase "taskpilot/internal/list/usecase"
	"taskpilot/internal/middleware"
	taskHTTP "taskpilot/internal/task/delivery/http"
	taskSqlite "taskpilot/internal/task/repository/sqlite"
	"taskpilot/internal/task/usecase"
	"taskpilot/pkg/gcalendar"
	"taskpilot/pkg/log"
	"taskpilot/pkg/quickadd"
	"taskpilot/pkg/schedule"
	"taskpilot/pkg/sqlitedb"
)

// @title       TaskPilot API
// @description Personal task manager with quick-add text parsing, working-hours scheduling, fuzzy search, and optional Google Calendar mirroring.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting TaskPilot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "SQLite database: %s", cfg.Storage.SQLitePath)

	// 3. Storage
	db, err := sqlitedb.Open(cfg.Storage.SQLitePath)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	listRepo, err := listSqlite.New(db, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize list repository: ", err)
		return
	}
	taskRepo, err := taskSqlite.New(db, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize task repository: ", err)
		return
	}

	// 4. Quick-add parser and planner
	parser := quickadd.NewParser()
	if t := cfg.QuickAdd.DefaultTitle; t != "" && t != quickadd.DefaultTitle {
		vocab := quickadd.DefaultVocabulary()
		vocab.DefaultTitle = t
		parser = quickadd.NewParserWithVocabulary(vocab)
	}

	planner := schedule.NewPlanner(schedule.Config{
		WorkStartHour:          cfg.Scheduler.WorkStartHour,
		WorkEndHour:            cfg.Scheduler.WorkEndHour,
		BreakMinutes:           cfg.Scheduler.BreakMinutes,
		DefaultDurationMinutes: cfg.Scheduler.DefaultDurationMinutes,
		MaxSuggestions:         cfg.Scheduler.MaxSuggestions,
		ProbeStepMinutes:       cfg.Scheduler.ProbeStepMinutes,
		MaxProbes:              cfg.Scheduler.MaxProbes,
	})

	// 5. Google Calendar client (optional)
	var calendar usecase.Calendar
	if cfg.GoogleCalendar.Enabled {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			calendar = client
		}
	}

	// 6. UseCases and delivery
	listUC := listUsecase.New(logger, listRepo)
	taskUC := usecase.New(
		logger,
		taskRepo,
		listRepo,
		parser,
		planner,
		calendar,
		cfg.GoogleCalendar.Timezone,
		cfg.GoogleCalendar.CalendarID,
	)

	listHandler := listHTTP.New(logger, listUC)
	taskHandler := taskHTTP.New(logger, taskUC)

	mw := middleware.New(logger, cfg.RateLimit)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ListHandler: listHandler,
		TaskHandler: taskHandler,
		Middleware:  mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
