package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/realty-decks/deck-backend/internal/metrics"
)

type HealthResponse struct {
	Status    string          `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
	Service   string          `json:"service"`
	Version   string          `json:"version"`
	DB        string          `json:"db,omitempty"`
	Redis     string          `json:"redis,omitempty"`
	Upstreams UpstreamSummary `json:"upstreams"`
}

type UpstreamSummary struct {
	Calls        int64            `json:"calls"`
	Errors       int64            `json:"errors"`
	AvgLatencyMs float64          `json:"avgLatencyMs"`
	ErrorRatePct float64          `json:"errorRatePct"`
	PerUpstream  map[string]int64 `json:"perUpstream,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	db          *pgxpool.Pool
	redis       *redis.Client
}

func NewHealthHandler(serviceName, version string, db *pgxpool.Pool, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		db:          db,
		redis:       rdb,
	}
}

// HealthCheck reports "degraded" when Redis is unreachable; sessions and
// jobs cannot work without it. The database is optional.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
	defer cancel()

	dbStatus := "disabled"
	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			dbStatus = "down"
		} else {
			dbStatus = "up"
		}
	}

	redisStatus := "disabled"
	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "down"
		} else {
			redisStatus = "up"
		}
	}

	status := "healthy"
	if redisStatus == "down" {
		status = "degraded"
	}

	m := metrics.GetMetrics()
	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		DB:        dbStatus,
		Redis:     redisStatus,
		Upstreams: UpstreamSummary{
			Calls:        m.UpstreamCalls,
			Errors:       m.UpstreamErrors,
			AvgLatencyMs: m.AverageUpstreamLatency(),
			ErrorRatePct: m.UpstreamErrorRate(),
			PerUpstream:  m.PerUpstream,
		},
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
