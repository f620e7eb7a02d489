package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/argo-acoustics/argo"
	"github.com/couchcryptid/argo-acoustics/internal/domain"
)

// ProfileTransformer implements Transformer using the domain enrichment
// functions.
type ProfileTransformer struct {
	source string
	logger *slog.Logger
}

// NewTransformer creates a ProfileTransformer. The source string is stamped
// onto every event it produces.
func NewTransformer(source string, logger *slog.Logger) *ProfileTransformer {
	return &ProfileTransformer{
		source: source,
		logger: logger,
	}
}

func (t *ProfileTransformer) Transform(_ context.Context, profile argo.Profile) (domain.ProfileEvent, error) {
	event, err := domain.EnrichProfile(profile, t.source)
	if err != nil {
		return domain.ProfileEvent{}, err
	}

	t.logger.Debug("enriched profile",
		"platform", event.Platform,
		"cycle", event.Cycle,
		"levels", event.Summary.Levels,
	)
	return event, nil
}
