package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/unibase/internal/interface/http"
)

// AcademicModule routes universities and everything beneath them.
type AcademicModule struct {
	Universities *handlers.UniversityHandler
	Departments  *handlers.DepartmentHandler
	Programs     *handlers.ProgramHandler
	Students     *handlers.StudentHandler
	Guards       Guards
}

func (m *AcademicModule) Register(rg *gin.RouterGroup) {
	u, d, p, s := m.Universities, m.Departments, m.Programs, m.Students
	m.Guards.register(rg, "/universities", resource{
		List: u.List, Get: u.Get, Mine: u.ListMine,
		Create: u.Create, Update: u.Update, Delete: u.Delete, DeleteEnabled: true,
	})
	m.Guards.register(rg, "/departments", resource{
		List: d.List, Get: d.Get, Mine: d.ListMine,
		Create: d.Create, Update: d.Update, Delete: d.Delete, DeleteEnabled: true,
	})
	m.Guards.register(rg, "/programs", resource{
		List: p.List, Get: p.Get, Mine: p.ListMine,
		Create: p.Create, Update: p.Update, Delete: p.Delete, DeleteEnabled: true,
	})
	// students have no owner, so no /mine
	m.Guards.register(rg, "/students", resource{
		List: s.List, Get: s.Get,
		Create: s.Create, Update: s.Update, Delete: s.Delete, DeleteEnabled: true,
	})
}
