package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"shipsched/internal/cache"
	"shipsched/internal/carriers"
	intconfig "shipsched/internal/config"
	"shipsched/internal/document"
	"shipsched/internal/extraction"
	router "shipsched/internal/http"
	"shipsched/internal/http/handlers"
	"shipsched/internal/llm"
	"shipsched/internal/repositories"
	"shipsched/internal/services"
	"shipsched/internal/utils"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	log := utils.NewLogger(env.LogLevel, env.LogFormat)
	defer func() { _ = log.Sync() }()

	var db *sql.DB
	if env.MySQL.Enabled() {
		conn, err := intconfig.ConnectDB(env.MySQL)
		if err != nil {
			log.Warn("mysql unavailable, fares will be empty", zap.Error(err))
		} else {
			db = conn
			defer db.Close()
		}
	}

	regionCache := newRegionCache(env, log)

	model, err := llm.New(llm.Config{
		Provider:    env.LLMProvider,
		APIKey:      env.OpenAIKey,
		BaseURL:     baseURLFor(env),
		APIVersion:  env.OpenAIVersion,
		Model:       modelFor(env),
		Temperature: float32(env.LLMTemperature),
		Timeout:     env.LLMTimeout,
	})
	if err != nil {
		log.Fatal("language model not configured", zap.Error(err))
	}

	fleet, err := carriers.Build(env.EnabledCarriers, carriers.Deps{
		Classifier:    carriers.NewClassifier(model, regionCache, log),
		Pages:         carriers.NewHTTPRenderer(env.PageTimeout),
		Wait:          carriers.WaitConfig{Timeout: env.AnchorWaitTimeout, Interval: env.AnchorPollInterval},
		MaerskAPIKey:  env.MaerskAPIKey,
		MaerskBaseURL: env.MaerskBaseURL,
		HTTPTimeout:   env.FetchTimeout,
		COSCOLookback: env.CoscoLookbackDays,
		Now:           time.Now,
	})
	if err != nil {
		log.Fatal("invalid ENABLED_CARRIERS", zap.Error(err))
	}

	extractor := extraction.NewService(
		document.NewFetcher(env.DownloadDir, env.FetchTimeout),
		document.PDFText{},
		model,
		repositories.NewAuditLogRepository(env.AuditLogPath),
		env.CandidateCharBudget,
		log,
	)

	hs := &handlers.Handlers{
		Schedules: &services.ScheduleService{
			Carriers:    fleet,
			Extractor:   extractor,
			Fares:       repositories.FreightRateRepository{DB: db},
			Concurrency: env.CarrierConcurrency,
			Log:         log,
		},
		Feedback: services.FeedbackService{
			Store: repositories.NewFeedbackRepository(env.FeedbackLogPath),
			Log:   log,
		},
		Docs:  services.DocsService{Log: log, Now: time.Now},
		Model: handlers.ModelStatus{Provider: env.LLMProvider, APIKey: env.OpenAIKey},
	}

	r := router.NewRouter(env, hs, log)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		// a full recommendation walks every carrier and several model calls
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", env.AppAddr), zap.Int("carriers", len(fleet)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
		return
	}

	log.Info("server stopped")
}

func newRegionCache(env intconfig.Env, log *zap.Logger) cache.RegionCache {
	if !env.Redis.Enabled() {
		return cache.NewMemoryRegionCache()
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     env.Redis.Address,
		Password: env.Redis.Password,
		DB:       env.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, using in-process region cache", zap.Error(err))
		_ = rdb.Close()
		return cache.NewMemoryRegionCache()
	}
	return cache.NewRedisRegionCache(rdb, env.RegionCacheTTL)
}

func baseURLFor(env intconfig.Env) string {
	if env.LLMProvider == "ollama" {
		return env.OllamaURL
	}
	return env.OpenAIBase
}

func modelFor(env intconfig.Env) string {
	if env.LLMProvider == "ollama" {
		return env.OllamaModel
	}
	return env.OpenAIModel
}
