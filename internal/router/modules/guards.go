package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/unibase/internal/interface/middleware"
)

const (
	authLimit      = 10  // register/login per IP per route
	refreshLimit   = 60  // refresh per IP
	protectedLimit = 120 // authenticated routes per user
)

// Guards bundles the gate with the limiter every protected route shares.
type Guards struct {
	Gate  *middleware.Gate
	Redis *redis.Client
}

func (g Guards) perUser() gin.HandlerFunc {
	return middleware.RateLimit(g.Redis, protectedLimit, time.Minute, middleware.KeyByUserID(), nil)
}

// Auth requires a signed-in user, then applies the per-user limit.
func (g Guards) Auth() []gin.HandlerFunc {
	return []gin.HandlerFunc{g.Gate.RequireAuth(), g.perUser()}
}

func (g Guards) Staff() []gin.HandlerFunc {
	return []gin.HandlerFunc{g.Gate.RequireStaff(), g.perUser()}
}

func with(chain []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(chain)+1)
	out = append(out, chain...)
	return append(out, h)
}

// resource is the usual route set of a directory entity. Nil handlers are not
// registered.
type resource struct {
	List, Get, Mine        gin.HandlerFunc
	Create, Update, Delete gin.HandlerFunc
	// WriteGuard defaults to staff.
	WriteGuard    func() []gin.HandlerFunc
	DeleteEnabled bool
}

func (g Guards) register(rg *gin.RouterGroup, path string, r resource) {
	grp := rg.Group(path)
	write := r.WriteGuard
	if write == nil {
		write = g.Staff
	}
	if r.List != nil {
		grp.GET("", r.List)
	}
	if r.Mine != nil {
		grp.GET("/mine", with(g.Auth(), r.Mine)...)
	}
	if r.Get != nil {
		grp.GET("/:id", r.Get)
	}
	if r.Create != nil {
		grp.POST("", with(write(), r.Create)...)
	}
	if r.Update != nil {
		grp.PUT("/:id", with(write(), r.Update)...)
	}
	if r.Delete != nil && r.DeleteEnabled {
		grp.DELETE("/:id", with(write(), r.Delete)...)
	}
}
