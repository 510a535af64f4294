package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"diary/internal/api"
	"diary/internal/config"
	"diary/internal/repository"
	"diary/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	if err := repository.BackfillShowTotals(ctx, db); err != nil {
		log.Fatalf("backfill: %v", err)
	}

	taskRepo := repository.NewTaskRepository(db)
	showRepo := repository.NewShowRepository(db)
	bookRepo := repository.NewBookRepository(db)
	learningRepo := repository.NewLearningRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	taskSvc := service.NewTaskService(taskRepo)
	showSvc := service.NewShowService(showRepo)
	bookSvc := service.NewBookService(bookRepo)
	learningSvc := service.NewLearningService(learningRepo)
	notificationSvc := service.NewNotificationService(notificationRepo, taskRepo, bookRepo, learningRepo)
	overviewSvc := service.NewOverviewService(taskRepo, showRepo, bookRepo, learningRepo)
	statsSvc := service.NewStatsService(taskRepo, showRepo, bookRepo, learningRepo)

	// Initial derivation pass before the interface comes up.
	if err := notificationSvc.RunPass(ctx, time.Now()); err != nil {
		log.Printf("notification pass: %v", err)
	}

	scheduler := service.NewSchedulerService(time.Local)
	if cfg.NotifyInterval > 0 {
		if _, err := scheduler.ScheduleInterval(cfg.NotifyInterval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := notificationSvc.RunPass(jobCtx, time.Now()); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("notification pass: %v", err)
			}
		}); err != nil {
			log.Fatalf("schedule notification pass: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	server := api.NewServer(taskSvc, showSvc, bookSvc, learningSvc, notificationSvc, overviewSvc, statsSvc)
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server.Router(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("Diary started on %s.", cfg.HTTPAddr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}
