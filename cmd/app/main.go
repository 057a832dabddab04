package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/church-roster/internal/catalog"
	"github.com/bagdasarian/church-roster/internal/config"
	"github.com/bagdasarian/church-roster/internal/db"
	"github.com/bagdasarian/church-roster/internal/handler"
	"github.com/bagdasarian/church-roster/internal/handler/server"
	"github.com/bagdasarian/church-roster/internal/logger"
	"github.com/bagdasarian/church-roster/internal/repository/postgres"
	"github.com/bagdasarian/church-roster/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log := logger.MustNew(cfg.Log.Level)
	defer log.Sync()

	roles, err := catalog.Load(cfg.Roster.RoleCatalogPath)
	if err != nil {
		log.Fatal("failed to load role catalog", zap.Error(err))
	}
	log.Info("role catalog loaded",
		zap.String("path", cfg.Roster.RoleCatalogPath),
		zap.String("fallback_role", roles.Fallback()),
	)

	location, err := cfg.Roster.Location()
	if err != nil {
		log.Warn("falling back to UTC", zap.Error(err))
	}

	database, err := db.NewPostgres(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	log.Info("connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("db", cfg.Database.DBName),
	)
	defer database.Close()

	memberRepo := postgres.NewMemberRepository(database)
	ministryRepo := postgres.NewMinistryRepository(database)
	rosterRepo := postgres.NewRosterRepository(database)
	statsRepo := postgres.NewStatsRepository(database)

	memberService := service.NewMemberService(memberRepo)
	ministryService := service.NewMinistryService(ministryRepo, memberRepo, roles)
	rosterService := service.NewRosterService(
		database,
		ministryRepo,
		memberRepo,
		rosterRepo,
		roles,
		service.NewRandomPicker(time.Now().UnixNano()),
		service.RosterSettings{
			MembersPerWeek: cfg.Roster.MembersPerWeek,
			DefaultWeeks:   cfg.Roster.DefaultWeeks,
			MaxWeeks:       cfg.Roster.MaxWeeks,
			Location:       location,
		},
		log.Named("roster"),
	)
	statsService := service.NewStatsService(statsRepo)

	h := handler.NewHandler(memberService, ministryService, rosterService, statsService, log.Named("http"))
	srv := server.NewServer(h, cfg.HTTP.Addr, log)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
}
