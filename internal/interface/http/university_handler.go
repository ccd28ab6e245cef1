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

type universityRequest struct {
	Name             string `json:"name" binding:"required,max=255"`
	Photo            string `json:"photo" binding:"omitempty,url"`
	Video            string `json:"video" binding:"omitempty,url"`
	Description      string `json:"description"`
	AmountOfStudents int    `json:"amount_of_students" binding:"gte=0"`
	PhoneNumber      string `json:"phone_number" binding:"required,phone"`
	Email            string `json:"email" binding:"required,email"`
	Webpage          string `json:"webpage" binding:"omitempty,url"`
	CategoryID       string `json:"category_id" binding:"required,uuid"`
	LocationID       string `json:"location_id" binding:"required,uuid"`
}

func (r universityRequest) input() application.UniversityInput {
	return application.UniversityInput{
		Name:             r.Name,
		Photo:            r.Photo,
		Video:            r.Video,
		Description:      r.Description,
		AmountOfStudents: r.AmountOfStudents,
		PhoneNumber:      r.PhoneNumber,
		Email:            r.Email,
		Webpage:          r.Webpage,
		CategoryID:       r.CategoryID,
		LocationID:       r.LocationID,
	}
}

type universityQuery struct {
	pageQuery
	Query      string `form:"q" binding:"max=255"`
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	LocationID string `form:"location_id" binding:"omitempty,uuid"`
}

type UniversityHandler struct {
	Svc    *application.UniversityService
	Logger *logrus.Logger
}

func NewUniversityHandler(svc *application.UniversityService, logger *logrus.Logger) *UniversityHandler {
	return &UniversityHandler{Svc: svc, Logger: logger}
}

func (h *UniversityHandler) Create(c *gin.Context) {
	var req universityRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.Svc.Create(c.Request.Context(), middleware.CurrentUser(c), req.input())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, toUniversity(u), "university created", nil)
}

func (h *UniversityHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req universityRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.Svc.Update(c.Request.Context(), middleware.CurrentUser(c), id, req.input())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, toUniversity(u), "university updated", nil)
}

func (h *UniversityHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	u, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, toUniversity(u), "university", nil)
}

func (h *UniversityHandler) List(c *gin.Context) {
	var q universityQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.Svc.List(c.Request.Context(), repo.UniversityFilter{
		CategoryID: q.CategoryID,
		LocationID: q.LocationID,
		Query:      q.Query,
		Page:       q.page(),
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	list(c, mapSlice(items, toUniversity), q.page(), "universities")
}

func (h *UniversityHandler) ListMine(c *gin.Context) {
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.Svc.ListMine(c.Request.Context(), middleware.CurrentUser(c), q.page())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	list(c, mapSlice(items, toUniversity), q.page(), "my universities")
}

func (h *UniversityHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"deleted": true}, "university deleted", nil)
}
