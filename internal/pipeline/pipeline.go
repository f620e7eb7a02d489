// Package pipeline wires the Argo source, the acoustic enrichment step and
// the Kafka sink into a fetch/transform/publish loop.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/argo-acoustics/argo"
	"github.com/couchcryptid/argo-acoustics/internal/domain"
	"github.com/couchcryptid/argo-acoustics/internal/observability"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const (
	initialBackoff = 200 * time.Millisecond
	maxBackoff     = 5 * time.Second
)

// Transformer enriches a raw hydrographic cast into a publishable event.
type Transformer interface {
	Transform(ctx context.Context, profile argo.Profile) (domain.ProfileEvent, error)
}

// Loader publishes enriched profile events downstream.
type Loader interface {
	Load(ctx context.Context, event domain.ProfileEvent) error
}

// Options carries the query window and scheduling knobs for the loop.
type Options struct {
	Region      argo.BoundingBox
	MinPressure float64
	MaxPressure float64

	// Lookback is how far behind now each query window starts.
	Lookback time.Duration
	// Interval is the pause between successful cycles.
	Interval time.Duration

	// Clock drives window derivation and scheduling. Nil means wall clock.
	Clock clockwork.Clock
}

// Pipeline periodically fetches the densest recent cast in a region,
// enriches it with sound speed data and publishes the result.
type Pipeline struct {
	source      argo.Source
	transformer Transformer
	loader      Loader
	logger      *slog.Logger
	metrics     *observability.Metrics
	opts        Options
	clock       clockwork.Clock

	ready atomic.Bool
}

func New(
	source argo.Source,
	transformer Transformer,
	loader Loader,
	logger *slog.Logger,
	metrics *observability.Metrics,
	opts Options,
) *Pipeline {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Pipeline{
		source:      source,
		transformer: transformer,
		loader:      loader,
		logger:      logger,
		metrics:     metrics,
		opts:        opts,
		clock:       clock,
	}
}

type cycleResult int

const (
	cycleOK cycleResult = iota
	cycleNoData
	cycleRetry
	cycleStop
)

// Run executes fetch cycles until ctx is cancelled. Transient failures back
// off exponentially; cycles that publish or find nothing wait the configured
// interval before the next query.
func (p *Pipeline) Run(ctx context.Context) error {
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	backoff := initialBackoff

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("pipeline stopping")
			return nil
		default:
		}

		switch p.runCycle(ctx) {
		case cycleStop:
			p.logger.Info("pipeline stopping")
			return nil
		case cycleRetry:
			if !p.sleepWithContext(ctx, backoff) {
				continue
			}
			backoff = nextBackoff(backoff)
		default:
			backoff = initialBackoff
			if !p.sleepWithContext(ctx, p.opts.Interval) {
				continue
			}
		}
	}
}

func (p *Pipeline) runCycle(ctx context.Context) cycleResult {
	runID := uuid.NewString()
	now := p.clock.Now().UTC()

	query := argo.RegionQuery{
		Box:         p.opts.Region,
		Start:       now.Add(-p.opts.Lookback),
		End:         now,
		MinPressure: p.opts.MinPressure,
		MaxPressure: p.opts.MaxPressure,
	}

	fetchStart := time.Now()
	profile, err := argo.GetProfile(ctx, p.source, query)
	p.metrics.FetchDuration.Observe(time.Since(fetchStart).Seconds())
	if err != nil {
		if ctx.Err() != nil {
			return cycleStop
		}
		if errors.Is(err, argo.ErrNoQualifyingProfile) {
			p.metrics.NoQualifyingProfile.Inc()
			p.logger.Warn("no qualifying cast in window", "run_id", runID, "error", err)
			return cycleNoData
		}
		p.metrics.FetchErrors.Inc()
		p.logger.Error("fetch failed", "run_id", runID, "error", err)
		return cycleRetry
	}
	p.metrics.ProfilesFetched.Inc()

	event, err := p.transformer.Transform(ctx, profile)
	if err != nil {
		p.metrics.TransformErrors.Inc()
		p.logger.Warn("enrichment failed, skipping cast",
			"run_id", runID,
			"platform", profile.Platform,
			"cycle", profile.Cycle,
			"error", err,
		)
		return cycleNoData
	}

	publishStart := time.Now()
	err = p.loader.Load(ctx, event)
	p.metrics.PublishDuration.Observe(time.Since(publishStart).Seconds())
	if err != nil {
		if ctx.Err() != nil {
			return cycleStop
		}
		p.metrics.PublishErrors.Inc()
		p.logger.Error("publish failed", "run_id", runID, "event_id", event.ID, "error", err)
		return cycleRetry
	}

	p.metrics.EventsPublished.Inc()
	p.ready.Store(true)
	p.logger.Info("published profile event",
		"run_id", runID,
		"event_id", event.ID,
		"platform", event.Platform,
		"cycle", event.Cycle,
		"levels", event.Summary.Levels,
	)
	return cycleOK
}

// CheckReadiness reports whether the pipeline has published at least one
// event since startup.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not published any events yet")
	}
	return nil
}

func nextBackoff(current time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

// sleepWithContext waits for d and reports false if ctx fired first.
func (p *Pipeline) sleepWithContext(ctx context.Context, d time.Duration) bool {
	timer := p.clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.Chan():
		return true
	}
}
