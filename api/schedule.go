package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Domenick1991/tripplanner/internal/service/stations"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ScheduleSource interface {
	Fetch(ctx context.Context, from, to, date string) ([]byte, error)
}

type ScheduleHandler struct {
	stations   stations.StationResolver
	source     ScheduleSource
	resultsDir string
	now        func() time.Time
}

type ScheduleHandlerOption func(*ScheduleHandler)

// WithResultsDir saves every complex route response as a JSON file in dir.
func WithResultsDir(dir string) ScheduleHandlerOption {
	return func(h *ScheduleHandler) {
		h.resultsDir = dir
	}
}

func NewScheduleHandler(resolver stations.StationResolver, source ScheduleSource, opts ...ScheduleHandlerOption) *ScheduleHandler {
	h := &ScheduleHandler{stations: resolver, source: source, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *ScheduleHandler) Register(router *gin.RouterGroup) {
	router.GET("/schedule", h.schedule)
	router.GET("/routes", h.routes)
	router.GET("/complex_route", h.complexRoute)
}

func (h *ScheduleHandler) schedule(c *gin.Context) {
	from, to, date := c.Query("from_station"), c.Query("to_station"), c.Query("date")
	if from == "" || to == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from_station, to_station and date are required"})
		return
	}

	codes, ok := h.resolve(c, from, to)
	if !ok {
		return
	}

	raw, err := h.source.Fetch(c.Request.Context(), codes[0], codes[1], date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

func (h *ScheduleHandler) routes(c *gin.Context) {
	origin, destination, date := c.Query("origin"), c.Query("destination"), c.Query("date")
	if origin == "" || destination == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin, destination and date are required"})
		return
	}

	codes, ok := h.resolve(c, origin, destination)
	if !ok {
		return
	}

	raw, err := h.source.Fetch(c.Request.Context(), codes[0], codes[1], date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("decode provider response: %v", err)})
		return
	}
	if threads, ok := doc["threads"]; ok && string(threads) != "null" {
		c.JSON(http.StatusOK, gin.H{"direct_route": json.RawMessage(raw)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "No direct route found. Use /api/plans to build a route with transfers."})
}

func (h *ScheduleHandler) complexRoute(c *gin.Context) {
	origin, transfer, destination, date := c.Query("origin"), c.Query("transfer"), c.Query("destination"), c.Query("date")
	if origin == "" || transfer == "" || destination == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin, transfer, destination and date are required"})
		return
	}

	codes, ok := h.resolve(c, origin, transfer, destination)
	if !ok {
		return
	}

	leg1, err := h.source.Fetch(c.Request.Context(), codes[0], codes[1], date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("route %s -> %s: %v", origin, transfer, err)})
		return
	}
	leg2, err := h.source.Fetch(c.Request.Context(), codes[1], codes[2], date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("route %s -> %s: %v", transfer, destination, err)})
		return
	}

	if !json.Valid(leg1) || !json.Valid(leg2) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "provider returned malformed JSON"})
		return
	}

	now := h.now()
	result := gin.H{
		"leg1":         json.RawMessage(leg1),
		"leg2":         json.RawMessage(leg2),
		"requested_at": now.Format(time.RFC3339),
	}
	h.saveResult(result, now)

	c.JSON(http.StatusOK, result)
}

// resolve writes the error response itself and reports whether every name
// was resolved.
func (h *ScheduleHandler) resolve(c *gin.Context, names ...string) ([]string, bool) {
	codes := make([]string, 0, len(names))
	for _, name := range names {
		code, err := h.stations.Resolve(name)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, stations.ErrStationNotFound) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": fmt.Sprintf("no code found for station %s", name)})
			return nil, false
		}
		codes = append(codes, code)
	}
	return codes, true
}

func (h *ScheduleHandler) saveResult(result gin.H, now time.Time) {
	if h.resultsDir == "" {
		return
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal complex route result")
		return
	}
	name := filepath.Join(h.resultsDir, fmt.Sprintf("complex_route_result_%s.json", now.Format("20060102T150405")))
	if err := os.WriteFile(name, data, 0o644); err != nil {
		log.Error().Err(err).Str("file", name).Msg("Failed to save complex route result")
		return
	}
	log.Info().Str("file", name).Msg("Complex route result saved")
}
