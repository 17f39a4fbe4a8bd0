package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/codebyvimal/BiblioDrift/internal/ai"
	"github.com/codebyvimal/BiblioDrift/internal/config"
	"github.com/codebyvimal/BiblioDrift/internal/handler"
	"github.com/codebyvimal/BiblioDrift/internal/middleware"
	"github.com/codebyvimal/BiblioDrift/internal/service"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "bibliodrift",
		Short: "BiblioDrift mood analysis backend server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run BiblioDrift server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))
			return runServer(cfg)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

// newMoodManager resolves the analyzer once at startup. A missing provider
// or a failed init both mean "absent": the server keeps running on local
// heuristics instead of refusing to start.
func newMoodManager(cfg config.AnalyzerConfig) *ai.Manager {
	if cfg.Provider == "" {
		logutil.GetLogger(context.Background()).Warn("mood analysis not configured - using fallback heuristics")
		return nil
	}
	provider, err := ai.NewProvider(cfg.Provider, cfg.Data)
	if err != nil {
		logutil.GetLogger(context.Background()).Warn("mood analysis init failed - using fallback heuristics", zap.Error(err))
		return nil
	}
	return ai.NewManager(provider, cfg.Model, ai.ManagerConfig{
		Timeout: cfg.Timeout,
		MaxTags: cfg.MaxTags,
	})
}

func runServer(cfg *config.Config) error {
	moodService := service.NewMoodService(newMoodManager(cfg.Analyzer))
	noteService := service.NewNoteService(moodService)
	recommendService := service.NewRecommendService()

	deps := handler.RouterDeps{
		Notes:             handler.NewNoteHandler(noteService),
		Moods:             handler.NewMoodHandler(moodService),
		Search:            handler.NewSearchHandler(recommendService),
		Health:            handler.NewHealthHandler(moodService),
		AnalyzerRateLimit: time.Duration(cfg.Analyzer.RateLimitSeconds) * time.Second,
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(cfg.CORSAllowlist),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}

	logutil.GetLogger(context.Background()).Info("http server listening",
		zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)),
		zap.String("service", handler.ServiceName),
		zap.String("version", handler.ServiceVersion),
		zap.Bool("mood_analysis_available", moodService.Available()),
		zap.String("analyzer_provider", moodService.ProviderName()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	return nil
}
