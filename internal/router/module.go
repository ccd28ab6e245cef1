package router

import "github.com/gin-gonic/gin"

// Module owns a slice of the route table. The registry hands it either the
// /api group or the bare engine group, never both.
type Module interface {
	Register(rg *gin.RouterGroup)
}

// ModuleFunc lets a plain function act as a Module.
type ModuleFunc func(rg *gin.RouterGroup)

func (f ModuleFunc) Register(rg *gin.RouterGroup) { f(rg) }
