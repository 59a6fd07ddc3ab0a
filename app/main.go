package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"taskflow/app/config"
	"taskflow/app/controllers"
	"taskflow/app/logging"
	"taskflow/app/middleware"
	"taskflow/app/routes"
	"taskflow/app/services"
	"taskflow/app/store"
	"taskflow/app/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "taskflow:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags, err := config.ParseFlags(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}
	flags.Apply(cfg)

	// The terminal dashboard owns the screen, so its logs go to a file or nowhere.
	var logOut io.Writer = os.Stderr
	if flags.Mode == config.ModeTUI {
		logOut = io.Discard
	}
	logger, closeLog, err := logging.Open(cfg.Log, logOut)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithLogger(ctx, logger)

	// Initialize the store and service layer
	opts := []store.Option{store.WithFilter(cfg.Dashboard.DefaultFilter)}
	var st *store.Store
	if cfg.Dashboard.Seed {
		st = store.NewSeeded(opts...)
	} else {
		st = store.New(opts...)
	}
	taskService := services.NewTaskService(st)

	if flags.Mode == config.ModeTUI {
		return ui.Run(ctx, taskService)
	}
	return serve(ctx, cfg, logger, taskService)
}

func serve(ctx context.Context, cfg *config.Config, logger *log.Logger, taskService *services.TaskService) error {
	contactService, err := services.NewContactService()
	if err != nil {
		return err
	}

	// Initialize the controller layer
	taskController := controllers.NewTaskController(taskService, services.NewExporter(taskService))
	pageController := controllers.NewPageController(contactService)

	// Setup HTTP server
	router := mux.NewRouter()
	routes.RegisterRoutes(router, taskController, pageController)

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: middleware.Chain(router, logger, cfg.Server.CORSOrigin),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server is running", "addr", cfg.Server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
