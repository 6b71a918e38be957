package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/varoOP/sankanime/internal/anime"
	"github.com/varoOP/sankanime/internal/api"
	"github.com/varoOP/sankanime/internal/cache"
	"github.com/varoOP/sankanime/internal/config"
	"github.com/varoOP/sankanime/internal/database"
	"github.com/varoOP/sankanime/internal/domain"
	"github.com/varoOP/sankanime/internal/logger"
	"github.com/varoOP/sankanime/internal/notification"
	"github.com/varoOP/sankanime/internal/repository"
)

// App represents the main application with all dependencies initialized
type App struct {
	log                 zerolog.Logger
	config              *domain.Config
	store               domain.KeyValueStore
	animeService        anime.Service
	resultRepo          domain.ResultRepository
	notificationService domain.NotificationService
}

// NewApp loads the configuration and opens every dependency it names
func NewApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewLoggerWithLevel(logger.ParseLevel(cfg.LogLevel))

	store, err := database.OpenStore(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage, err)
	}

	return New(log, cfg, NewTransport(log, cfg), store), nil
}

// NewTransport builds the HTTP client described by cfg
func NewTransport(log zerolog.Logger, cfg *domain.Config) *api.Client {
	var opts []api.Option
	if cfg.Breaker {
		opts = append(opts, api.WithCircuitBreaker(cfg.BreakerFailures, cfg.BreakerTimeout))
	}
	return api.NewClient(log, cfg.BaseURL, cfg.UserAgent, cfg.Timeout, opts...)
}

// New assembles an App from already opened collaborators
func New(log zerolog.Logger, cfg *domain.Config, transport domain.Transport, store domain.KeyValueStore) *App {
	return &App{
		log:                 log,
		config:              cfg,
		store:               store,
		animeService:        anime.NewService(log, cfg, transport, store),
		resultRepo:          repository.NewFileRepository(log),
		notificationService: notification.NewService(log, cfg.DiscordWebhookURL),
	}
}

func (a *App) Log() *zerolog.Logger {
	return &a.log
}

func (a *App) Config() *domain.Config {
	return a.config
}

func (a *App) Anime() anime.Service {
	return a.animeService
}

func (a *App) Results() domain.ResultRepository {
	return a.resultRepo
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.store.Close()
}

// Warm resolves the home aggregate through the cache and reports the outcome
// to the configured notification channels.
func (a *App) Warm(ctx context.Context) (report domain.WarmReport, err error) {
	defer func() {
		if err != nil {
			if notifyErr := a.notificationService.SendError(ctx, err); notifyErr != nil {
				a.log.Warn().Err(notifyErr).Msg("failed to send error notification")
			}
		}
	}()

	start := time.Now()
	home, err := a.animeService.GetHomeInfo(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to resolve home data: %w", err)
	}

	report = domain.WarmReport{
		CacheKey:  cache.KeyPrefix + a.config.CacheVersion,
		Sections:  home.SectionCounts(),
		Genres:    len(home.Genres),
		Elapsed:   time.Since(start),
		Timestamp: time.Now(),
	}

	a.log.Info().
		Str("key", report.CacheKey).
		Int("entries", report.Total()).
		Int("genres", report.Genres).
		Dur("elapsed", report.Elapsed).
		Msg("home data ready")

	if notifyErr := a.notificationService.SendSuccess(ctx, report); notifyErr != nil {
		a.log.Warn().Err(notifyErr).Msg("failed to send success notification")
	}

	return report, nil
}
