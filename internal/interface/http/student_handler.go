package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/internal/application"
	"github.com/oksasatya/unibase/internal/interface/middleware"
	"github.com/oksasatya/unibase/pkg/response"
)

type studentRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	Lastname     string `json:"lastname" binding:"required,max=255"`
	Photo        string `json:"photo" binding:"omitempty,url"`
	Description  string `json:"description"`
	WorkingPlace string `json:"working_place" binding:"max=255"`
	Achievements string `json:"achievements"`
	ProgramID    string `json:"program_id" binding:"required,uuid"`
}

func (r studentRequest) input() application.StudentInput {
	return application.StudentInput{
		Name:         r.Name,
		Lastname:     r.Lastname,
		Photo:        r.Photo,
		Description:  r.Description,
		WorkingPlace: r.WorkingPlace,
		Achievements: r.Achievements,
		ProgramID:    r.ProgramID,
	}
}

type studentQuery struct {
	pageQuery
	ProgramID string `form:"program_id" binding:"omitempty,uuid"`
}

type StudentHandler struct {
	Svc    *application.StudentService
	Logger *logrus.Logger
}

func NewStudentHandler(svc *application.StudentService, logger *logrus.Logger) *StudentHandler {
	return &StudentHandler{Svc: svc, Logger: logger}
}

func (h *StudentHandler) Create(c *gin.Context) {
	var req studentRequest
	if !bindJSON(c, &req) {
		return
	}
	st, err := h.Svc.Create(c.Request.Context(), middleware.CurrentUser(c), req.input())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, toStudent(st), "student created", nil)
}

func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req studentRequest
	if !bindJSON(c, &req) {
		return
	}
	st, err := h.Svc.Update(c.Request.Context(), middleware.CurrentUser(c), id, req.input())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, toStudent(st), "student updated", nil)
}

func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	st, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, toStudent(st), "student", nil)
}

// List returns summaries; the detail route carries the full profile.
func (h *StudentHandler) List(c *gin.Context) {
	var q studentQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.Svc.List(c.Request.Context(), q.ProgramID, q.page())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	list(c, mapSlice(items, toStudentSummary), q.page(), "students")
}

func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"deleted": true}, "student deleted", nil)
}
