package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/unibase/internal/interface/http"
)

// CategoryModule: deletes stay unrouted unless CATEGORY_DELETE_ENABLED is set.
type CategoryModule struct {
	Handler       *handlers.CategoryHandler
	Guards        Guards
	DeleteEnabled bool
}

func (m *CategoryModule) Register(rg *gin.RouterGroup) {
	h := m.Handler
	m.Guards.register(rg, "/categories", resource{
		List: h.List, Get: h.Get, Mine: h.ListMine,
		Create: h.Create, Update: h.Update, Delete: h.Delete,
		DeleteEnabled: m.DeleteEnabled,
	})
}

type RegionModule struct {
	Handler       *handlers.RegionHandler
	Guards        Guards
	DeleteEnabled bool
}

func (m *RegionModule) Register(rg *gin.RouterGroup) {
	h := m.Handler
	m.Guards.register(rg, "/regions", resource{
		List: h.List, Get: h.Get, Mine: h.ListMine,
		Create: h.Create, Update: h.Update, Delete: h.Delete,
		DeleteEnabled: m.DeleteEnabled,
	})
}

type LocationModule struct {
	Handler       *handlers.LocationHandler
	Guards        Guards
	DeleteEnabled bool
}

func (m *LocationModule) Register(rg *gin.RouterGroup) {
	h := m.Handler
	m.Guards.register(rg, "/locations", resource{
		List: h.List, Get: h.Get, Mine: h.ListMine,
		Create: h.Create, Update: h.Update, Delete: h.Delete,
		DeleteEnabled: m.DeleteEnabled,
	})
}
