package dashboard

import (
	"errors"
	"net/url"

	"extension-monitor/core/feed"
	"extension-monitor/core/logger"
	"extension-monitor/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the dashboard.
type Handler struct {
	service      *Service
	cacheControl string
}

// NewHandler creates a new HTTP handler. cacheControl is sent on every
// successful response.
func NewHandler(service *Service, cacheControl string) *Handler {
	return &Handler{service: service, cacheControl: cacheControl}
}

// RegisterRoutes registers the dashboard routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/extensions")
	group.Get("/", h.HandleList)
	group.Get("/raw", h.HandleRaw)
	group.Get("/:name", h.HandleGet)
}

// HandleList returns every classified extension group.
// The optional status query parameter (live, pending, mismatch) filters groups;
// the summary always covers the whole snapshot.
// @Summary List Extensions
// @Description Fetches the store feed and returns every extension group classified against its submitted version.
// @Tags extensions
// @Produce json
// @Param status query string false "Filter groups by status (live, pending, mismatch)"
// @Success 200 {object} reconcile.Report "Classified report"
// @Failure 502 {object} map[string]interface{} "Store feed unavailable"
// @Router /extensions [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Snapshot(c.UserContext())
	if err != nil {
		return h.fetchFailed(c, l, err)
	}

	if status := c.Query("status"); status != "" {
		filtered := *report
		filtered.Groups = make([]reconcile.ClassifiedGroup, 0, len(report.Groups))
		for _, g := range report.Groups {
			if string(g.Status.Status) == status {
				filtered.Groups = append(filtered.Groups, g)
			}
		}
		report = &filtered
	}

	c.Set(fiber.HeaderCacheControl, h.cacheControl)
	return c.JSON(report)
}

// HandleGet returns one classified extension group by canonical name or slug.
// @Summary Get Extension
// @Description Returns one classified extension group. The name may be the canonical name or its slug.
// @Tags extensions
// @Produce json
// @Param name path string true "Canonical name or slug (e.g. adblockplus)"
// @Success 200 {object} reconcile.ClassifiedGroup "Classified group"
// @Failure 400 {object} map[string]string "Invalid extension name"
// @Failure 404 {object} map[string]string "Extension not found"
// @Failure 502 {object} map[string]interface{} "Store feed unavailable"
// @Router /extensions/{name} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid extension name"})
	}

	group, err := h.service.Extension(c.UserContext(), name)
	if errors.Is(err, ErrExtensionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
			"name":  name,
		})
	}
	if err != nil {
		return h.fetchFailed(c, l, err)
	}

	c.Set(fiber.HeaderCacheControl, h.cacheControl)
	return c.JSON(group)
}

// HandleRaw proxies the upstream document.
// @Summary Raw Store Feed
// @Description Returns the upstream store feed document unmodified.
// @Tags extensions
// @Produce json
// @Success 200 {object} map[string]interface{} "Upstream document"
// @Failure 502 {object} map[string]interface{} "Store feed unavailable"
// @Router /extensions/raw [get]
func (h *Handler) HandleRaw(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	body, err := h.service.Raw(c.UserContext())
	if err != nil {
		return h.fetchFailed(c, l, err)
	}

	c.Set(fiber.HeaderCacheControl, h.cacheControl)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// fetchFailed reports an unavailable snapshot as 502 Bad Gateway.
func (h *Handler) fetchFailed(c *fiber.Ctx, l *zap.Logger, err error) error {
	l.Error("Feed fetch failed", zap.Error(err))

	resp := fiber.Map{"error": err.Error()}
	var statusErr *feed.StatusError
	if errors.As(err, &statusErr) {
		resp["upstream_status"] = statusErr.StatusCode
	}
	return c.Status(fiber.StatusBadGateway).JSON(resp)
}
