package dashboard

import (
	"context"
	"errors"
	"time"

	"extension-monitor/core/feed"
	"extension-monitor/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrExtensionNotFound is returned when no group matches the requested name.
var ErrExtensionNotFound = errors.New("extension not found")

// Service fetches the upstream feed and reconciles it on demand.
// Nothing is kept between calls; concurrent calls share one upstream request.
type Service struct {
	client         feed.Client
	submissionsKey string
	logger         *zap.Logger
	sf             singleflight.Group
	now            func() time.Time
}

// NewService creates a new dashboard service.
func NewService(client feed.Client, submissionsKey string, logger *zap.Logger) *Service {
	return &Service{
		client:         client,
		submissionsKey: submissionsKey,
		logger:         logger,
		now:            time.Now,
	}
}

// Snapshot fetches the feed and returns the classified report.
// On fetch failure no classification happens and the error is returned as is.
// The shared fetch outlives a cancelled caller so coalesced waiters still get a result.
func (s *Service) Snapshot(ctx context.Context) (*reconcile.Report, error) {
	v, err, shared := s.sf.Do("snapshot", func() (any, error) {
		start := time.Now()

		body, err := s.client.Fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		f, err := feed.Parse(body, s.submissionsKey)
		if err != nil {
			return nil, err
		}

		report := reconcile.Reconcile(f)
		report.GeneratedAt = s.now().UTC()

		s.logger.Debug("Snapshot reconciled",
			zap.Int("groups", report.Summary.Groups),
			zap.Int("stores", report.Summary.Stores),
			zap.Int("mismatch", report.Summary.Mismatch),
			zap.Duration("elapsed", time.Since(start)),
		)
		return &report, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Snapshot shared with concurrent request")
	}
	return v.(*reconcile.Report), nil
}

// Extension returns the classified group matching name (canonical name or slug).
func (s *Service) Extension(ctx context.Context, name string) (*reconcile.ClassifiedGroup, error) {
	report, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	g, ok := report.Find(name)
	if !ok {
		return nil, ErrExtensionNotFound
	}
	return &g, nil
}

// Raw returns the upstream document unmodified.
func (s *Service) Raw(ctx context.Context) ([]byte, error) {
	v, err, _ := s.sf.Do("raw", func() (any, error) {
		return s.client.Fetch(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
