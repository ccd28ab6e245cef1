package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/unibase/internal/interface/http"
	"github.com/oksasatya/unibase/internal/interface/middleware"
)

// AuthModule serves /auth/* and the signed-in user's own account at /users/me.
type AuthModule struct {
	Handler *handlers.UserHandler
	Guards  Guards
}

func NewAuthModule(h *handlers.UserHandler, g Guards) *AuthModule {
	return &AuthModule{Handler: h, Guards: g}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(m.Guards.Redis, authLimit, time.Minute, middleware.KeyByIPAndPath(), nil)
	refreshLimiter := middleware.RateLimit(m.Guards.Redis, refreshLimit, time.Minute, middleware.KeyByIP(), nil)

	auth := rg.Group("/auth")
	auth.POST("/register", loginLimiter, m.Handler.Register)
	auth.POST("/login", loginLimiter, m.Handler.Login)
	auth.POST("/refresh", refreshLimiter, m.Handler.Refresh)
	auth.POST("/logout", with(m.Guards.Auth(), m.Handler.Logout)...)

	me := rg.Group("/users/me")
	me.Use(m.Guards.Auth()...)
	{
		me.GET("", m.Handler.Me)
		me.PUT("", m.Handler.UpdateMe)
		me.DELETE("", m.Handler.DeleteMe)
		me.PUT("/password", m.Handler.ChangePassword)
	}
}
