package router

import (
	"github.com/oksasatya/unibase/internal/container"
	"github.com/oksasatya/unibase/internal/router/modules"
)

// InitModules registers every feature module. Call once at startup, before
// RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	g := modules.Guards{Gate: c.Gate, Redis: c.Redis}

	r.AddRoot(&modules.OpsModule{Health: c.Health, Guards: g, MetricsEnabled: c.Config.MetricsEnabled})

	r.Add(modules.NewAuthModule(c.Users, g))
	r.Add(&modules.CategoryModule{Handler: c.Categories, Guards: g, DeleteEnabled: c.Config.CategoryDeleteEnabled})
	r.Add(&modules.RegionModule{Handler: c.Regions, Guards: g, DeleteEnabled: c.Config.RegionDeleteEnabled})
	r.Add(&modules.LocationModule{Handler: c.Locations, Guards: g, DeleteEnabled: c.Config.LocationDeleteEnabled})
	r.Add(&modules.AcademicModule{
		Universities: c.Universities,
		Departments:  c.Departments,
		Programs:     c.Programs,
		Students:     c.Students,
		Guards:       g,
	})
	r.Add(&modules.ContentModule{
		News:      c.News,
		Comments:  c.Comments,
		Favorites: c.Favorites,
		Media:     c.Media,
		Guards:    g,
	})
}
