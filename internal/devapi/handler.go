package devapi

import (
	"fmt"

	"github.com/MKhiriev/stream-console/internal/config"
	"github.com/MKhiriev/stream-console/internal/logger"
	"github.com/MKhiriev/stream-console/models"
)

// Development credentials of the seeded administrator.
const (
	SeedAdminEmail    = "admin@example.com"
	SeedAdminPassword = "admin"
)

type Handler struct {
	repo   *repository
	tokens *tokenIssuer

	logger *logger.Logger
}

func NewHandler(cfg config.DevAPIConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("devapi handler created")
	return &Handler{
		repo:   newRepository(cfg.TokenSignKey),
		tokens: newTokenIssuer(cfg.TokenSignKey, cfg.TokenIssuer, cfg.TokenDuration),
		logger: logger,
	}
}

// Seed creates the development administrator and a few streams.
func (h *Handler) Seed() error {
	admin, err := h.repo.createUser(models.UserInput{
		Name:     "Administrator",
		Email:    SeedAdminEmail,
		Password: SeedAdminPassword,
		Role:     models.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	streams := []models.StreamInput{
		{Title: "Morning show", StreamerID: admin.ID, Status: models.StreamLive, PlaybackURL: "https://cdn.example.com/live/morning.m3u8"},
		{Title: "Release party", StreamerID: admin.ID, Status: models.StreamScheduled},
		{Title: "Weekly recap", StreamerID: admin.ID, Status: models.StreamEnded, PlaybackURL: "https://cdn.example.com/vod/recap.m3u8"},
	}
	for _, in := range streams {
		if _, err = h.repo.createStream(in); err != nil {
			return fmt.Errorf("seed stream %q: %w", in.Title, err)
		}
	}

	h.logger.Info().Str("email", SeedAdminEmail).Int("streams", len(streams)).Msg("devapi seeded")
	return nil
}
