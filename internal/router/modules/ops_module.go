package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	handlers "github.com/oksasatya/unibase/internal/interface/http"
	"github.com/oksasatya/unibase/internal/interface/middleware"
)

// OpsModule serves /health and, when enabled, /metrics. Scrapers on private
// addresses bypass the limiter.
type OpsModule struct {
	Health         *handlers.HealthHandler
	Guards         Guards
	MetricsEnabled bool
}

func (m *OpsModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", m.Health.Health)
	if m.MetricsEnabled {
		rl := middleware.RateLimit(m.Guards.Redis, protectedLimit, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
		rg.GET("/metrics", rl, gin.WrapH(promhttp.Handler()))
	}
}
