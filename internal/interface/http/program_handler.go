package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/internal/application"
	repo "github.com/oksasatya/unibase/internal/domain/repository"
	"github.com/oksasatya/unibase/internal/interface/middleware"
	"github.com/oksasatya/unibase/pkg/response"
)

type programRequest struct {
	Name             string `json:"name" binding:"required,max=255"`
	Photo            string `json:"photo" binding:"omitempty,url"`
	Description      string `json:"description"`
	NumberOfStudents int    `json:"number_of_students" binding:"gte=0"`
	DepartmentID     string `json:"department_id" binding:"required,uuid"`
}

func (r programRequest) input() application.ProgramInput {
	return application.ProgramInput{Name: r.Name, Photo: r.Photo, Description: r.Description, NumberOfStudents: r.NumberOfStudents, DepartmentID: r.DepartmentID}
}

type programQuery struct {
	pageQuery
	Query        string `form:"q" binding:"max=255"`
	DepartmentID string `form:"department_id" binding:"omitempty,uuid"`
}

type ProgramHandler struct {
	Svc    *application.ProgramService
	Logger *logrus.Logger
}

func NewProgramHandler(svc *application.ProgramService, logger *logrus.Logger) *ProgramHandler {
	return &ProgramHandler{Svc: svc, Logger: logger}
}

func (h *ProgramHandler) Create(c *gin.Context) {
	var req programRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), middleware.CurrentUser(c), req.input())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, toProgram(p), "program created", nil)
}

func (h *ProgramHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req programRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), middleware.CurrentUser(c), id, req.input())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, toProgram(p), "program updated", nil)
}

func (h *ProgramHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, toProgram(p), "program", nil)
}

func (h *ProgramHandler) List(c *gin.Context) {
	var q programQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.Svc.List(c.Request.Context(), repo.ProgramFilter{DepartmentID: q.DepartmentID, Query: q.Query, Page: q.page()})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	list(c, mapSlice(items, toProgram), q.page(), "programs")
}

func (h *ProgramHandler) ListMine(c *gin.Context) {
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.Svc.ListMine(c.Request.Context(), middleware.CurrentUser(c), q.page())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	list(c, mapSlice(items, toProgram), q.page(), "my programs")
}

func (h *ProgramHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"deleted": true}, "program deleted", nil)
}
