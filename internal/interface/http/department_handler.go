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

type departmentRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	Photo        string `json:"photo" binding:"omitempty,url"`
	Description  string `json:"description"`
	UniversityID string `json:"university_id" binding:"required,uuid"`
}

func (r departmentRequest) input() application.DepartmentInput {
	return application.DepartmentInput{Name: r.Name, Photo: r.Photo, Description: r.Description, UniversityID: r.UniversityID}
}

type departmentQuery struct {
	pageQuery
	Query        string `form:"q" binding:"max=255"`
	UniversityID string `form:"university_id" binding:"omitempty,uuid"`
}

type DepartmentHandler struct {
	Svc    *application.DepartmentService
	Logger *logrus.Logger
}

func NewDepartmentHandler(svc *application.DepartmentService, logger *logrus.Logger) *DepartmentHandler {
	return &DepartmentHandler{Svc: svc, Logger: logger}
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	var req departmentRequest
	if !bindJSON(c, &req) {
		return
	}
	d, err := h.Svc.Create(c.Request.Context(), middleware.CurrentUser(c), req.input())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, toDepartment(d), "department created", nil)
}

func (h *DepartmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req departmentRequest
	if !bindJSON(c, &req) {
		return
	}
	d, err := h.Svc.Update(c.Request.Context(), middleware.CurrentUser(c), id, req.input())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, toDepartment(d), "department updated", nil)
}

func (h *DepartmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	d, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, toDepartment(d), "department", nil)
}

func (h *DepartmentHandler) List(c *gin.Context) {
	var q departmentQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.Svc.List(c.Request.Context(), repo.DepartmentFilter{UniversityID: q.UniversityID, Query: q.Query, Page: q.page()})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	list(c, mapSlice(items, toDepartment), q.page(), "departments")
}

func (h *DepartmentHandler) ListMine(c *gin.Context) {
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.Svc.ListMine(c.Request.Context(), middleware.CurrentUser(c), q.page())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	list(c, mapSlice(items, toDepartment), q.page(), "my departments")
}

func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"deleted": true}, "department deleted", nil)
}
