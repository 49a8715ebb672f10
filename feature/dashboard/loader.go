package dashboard

import (
	"extension-monitor/core/feed"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Dashboard feature.
func NewFeature(client feed.Client, submissionsKey, cacheControl string, logger *zap.Logger) *Feature {
	svc := NewService(client, submissionsKey, logger)
	h := NewHandler(svc, cacheControl)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "dashboard"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
