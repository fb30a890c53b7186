package fiber

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"conversation-funnel-service/internal/funnel/core/domain"
	"conversation-funnel-service/internal/funnel/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetAggregatesUseCase interface {
	Execute(ctx context.Context, in usecase.GetAggregatesInput) (*domain.Aggregates, error)
}

type FunnelHandler struct {
	uc GetAggregatesUseCase
}

func NewFunnelHandler(uc GetAggregatesUseCase) *FunnelHandler {
	return &FunnelHandler{uc: uc}
}

// Register mounts the funnel routes on r.
func (h *FunnelHandler) Register(r fiber.Router) {
	g := r.Group("/funnel")
	g.Get("/aggregates", h.GetAggregates)
	g.Get("/deliveries", h.GetDeliveries)
	g.Get("/latency", h.GetLatency)
	g.Get("/conversion", h.GetConversion)
	g.Get("/tags", h.GetTags)
}

// GetAggregates godoc
// @Summary Compute every funnel view
// @Description Delivery counts, response latencies and reply conversion for a date range
// @Tags Funnel
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD), defaults to 30 days before to"
// @Param to query string false "Range end (YYYY-MM-DD), defaults to today"
// @Param group_by query string false "Period: day | week | month"
// @Param category query string false "Conversion category: start | second | final"
// @Param tags query string false "Comma separated tracked tags"
// @Param series_tags query string false "Comma separated tags charted per period"
// @Param locale query string false "Label locale: es | en"
// @Success 200 {object} AggregatesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /funnel/aggregates [get]
func (h *FunnelHandler) GetAggregates(c *fiber.Ctx) error {
	res, err := h.execute(c)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(AggregatesResponse{
		TotalRecords: res.TotalRecords,
		GroupBy:      string(res.PeriodMode),
		Deliveries:   toDeliveries(res.Deliveries),
		Latency:      toLatency(res.Latency),
		Conversion:   toConversion(res.Conversion),
	})
}

// GetDeliveries godoc
// @Summary Delivery counts per period
// @Tags Funnel
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param group_by query string false "Period: day | week | month"
// @Param locale query string false "Label locale: es | en"
// @Success 200 {object} DeliveriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /funnel/deliveries [get]
func (h *FunnelHandler) GetDeliveries(c *fiber.Ctx) error {
	res, err := h.execute(c)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(DeliveriesResponse{
		GroupBy:    string(res.PeriodMode),
		Deliveries: toDeliveries(res.Deliveries),
	})
}

// GetLatency godoc
// @Summary Response latency statistics
// @Tags Funnel
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} LatencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /funnel/latency [get]
func (h *FunnelHandler) GetLatency(c *fiber.Ctx) error {
	res, err := h.execute(c)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(LatencyResponse{
		Latency: toLatency(res.Latency),
	})
}

// GetConversion godoc
// @Summary Reply conversion per tag
// @Tags Funnel
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param group_by query string false "Period: day | week | month"
// @Param category query string false "Conversion category: start | second | final"
// @Param tags query string false "Comma separated tracked tags"
// @Param series_tags query string false "Comma separated tags charted per period"
// @Param locale query string false "Label locale: es | en"
// @Success 200 {object} ConversionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /funnel/conversion [get]
func (h *FunnelHandler) GetConversion(c *fiber.Ctx) error {
	res, err := h.execute(c)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toConversion(res.Conversion))
}

// GetTags godoc
// @Summary Message tag taxonomy
// @Tags Funnel
// @Produce json
// @Success 200 {object} TagsResponse
// @Router /funnel/tags [get]
func (h *FunnelHandler) GetTags(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(toTags())
}

func (h *FunnelHandler) execute(c *fiber.Ctx) (*domain.Aggregates, error) {
	locale := c.Query("locale", "")
	if locale == "" {
		locale = c.Get(fiber.HeaderAcceptLanguage)
	}

	in := usecase.GetAggregatesInput{
		From:       c.Query("from", ""),
		To:         c.Query("to", ""),
		GroupBy:    c.Query("group_by", ""),
		Category:   c.Query("category", ""),
		Tags:       splitList(c.Query("tags", "")),
		SeriesTags: splitList(c.Query("series_tags", "")),
		Locale:     locale,
	}

	return h.uc.Execute(c.UserContext(), in)
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrInvalidCategory),
		errors.Is(err, usecase.ErrUnknownTag):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, strings.Clone(p))
		}
	}
	return out
}
