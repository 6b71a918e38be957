package notification

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/varoOP/sankanime/internal/domain"
)

// Service fans notifications out to every configured channel
type Service struct {
	log     zerolog.Logger
	discord *DiscordService
}

// NewService creates a notification service. With an empty webhookURL every
// send is a no-op.
func NewService(log zerolog.Logger, webhookURL string) domain.NotificationService {
	var discord *DiscordService
	if webhookURL != "" {
		discord = NewDiscordService(log, webhookURL)
	}

	return &Service{
		log:     log.With().Str("module", "notification").Logger(),
		discord: discord,
	}
}

func (s *Service) SendSuccess(ctx context.Context, report domain.WarmReport) error {
	if s.discord == nil {
		s.log.Trace().Msg("no notification channel configured")
		return nil
	}
	return s.discord.SendSuccess(ctx, report)
}

func (s *Service) SendError(ctx context.Context, err error) error {
	if s.discord == nil {
		s.log.Trace().Msg("no notification channel configured")
		return nil
	}
	return s.discord.SendError(ctx, err)
}
