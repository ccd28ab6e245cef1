package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/unibase/internal/interface/http"
)

type ContentModule struct {
	News      *handlers.NewsHandler
	Comments  *handlers.CommentHandler
	Favorites *handlers.FavoriteHandler
	Media     *handlers.MediaHandler
	Guards    Guards
}

func (m *ContentModule) Register(rg *gin.RouterGroup) {
	n, c, f := m.News, m.Comments, m.Favorites
	m.Guards.register(rg, "/news", resource{
		List: n.List, Get: n.Get, Mine: n.ListMine,
		Create: n.Create, Update: n.Update, Delete: n.Delete, DeleteEnabled: true,
	})

	// any signed-in user may comment; authorship is checked by the service
	m.Guards.register(rg, "/comments", resource{
		List: c.ListByUniversity, Mine: c.ListMine,
		Create: c.Create, Update: c.Update, Delete: c.Delete, DeleteEnabled: true,
		WriteGuard: m.Guards.Auth,
	})

	fav := rg.Group("/favorites")
	fav.Use(m.Guards.Auth()...)
	{
		fav.GET("", f.List)
		fav.POST("", f.Add)
		fav.DELETE("/:university_id", f.Remove)
		fav.GET("/:university_id/exists", f.Exists)
	}

	rg.POST("/media", with(m.Guards.Staff(), m.Media.Upload)...)
}
