package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/internal/application"
	"github.com/oksasatya/unibase/internal/interface/middleware"
	"github.com/oksasatya/unibase/pkg/response"
)

type nameRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type CategoryHandler struct {
	Svc    *application.CategoryService
	Logger *logrus.Logger
}

func NewCategoryHandler(svc *application.CategoryService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{Svc: svc, Logger: logger}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req nameRequest
	if !bindJSON(c, &req) {
		return
	}
	cat, err := h.Svc.Create(c.Request.Context(), middleware.CurrentUser(c), req.Name)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, toCategory(cat), "category created", nil)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req nameRequest
	if !bindJSON(c, &req) {
		return
	}
	cat, err := h.Svc.Update(c.Request.Context(), middleware.CurrentUser(c), id, req.Name)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, toCategory(cat), "category updated", nil)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cat, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, toCategory(cat), "category", nil)
}

func (h *CategoryHandler) List(c *gin.Context) {
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.Svc.List(c.Request.Context(), q.page())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	list(c, mapSlice(items, toCategory), q.page(), "categories")
}

func (h *CategoryHandler) ListMine(c *gin.Context) {
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.Svc.ListMine(c.Request.Context(), middleware.CurrentUser(c), q.page())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	list(c, mapSlice(items, toCategory), q.page(), "my categories")
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"deleted": true}, "category deleted", nil)
}

type RegionHandler struct {
	Svc    *application.RegionService
	Logger *logrus.Logger
}

func NewRegionHandler(svc *application.RegionService, logger *logrus.Logger) *RegionHandler {
	return &RegionHandler{Svc: svc, Logger: logger}
}

func (h *RegionHandler) Create(c *gin.Context) {
	var req nameRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.Svc.Create(c.Request.Context(), middleware.CurrentUser(c), req.Name)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, toRegion(r), "region created", nil)
}

func (h *RegionHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req nameRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.Svc.Update(c.Request.Context(), middleware.CurrentUser(c), id, req.Name)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, toRegion(r), "region updated", nil)
}

func (h *RegionHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	r, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, toRegion(r), "region", nil)
}

func (h *RegionHandler) List(c *gin.Context) {
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.Svc.List(c.Request.Context(), q.page())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	list(c, mapSlice(items, toRegion), q.page(), "regions")
}

func (h *RegionHandler) ListMine(c *gin.Context) {
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.Svc.ListMine(c.Request.Context(), middleware.CurrentUser(c), q.page())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	list(c, mapSlice(items, toRegion), q.page(), "my regions")
}

func (h *RegionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"deleted": true}, "region deleted", nil)
}

type locationRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	RegionID string `json:"region_id" binding:"required,uuid"`
}

type locationQuery struct {
	pageQuery
	RegionID string `form:"region_id" binding:"omitempty,uuid"`
}

type LocationHandler struct {
	Svc    *application.LocationService
	Logger *logrus.Logger
}

func NewLocationHandler(svc *application.LocationService, logger *logrus.Logger) *LocationHandler {
	return &LocationHandler{Svc: svc, Logger: logger}
}

func (h *LocationHandler) Create(c *gin.Context) {
	var req locationRequest
	if !bindJSON(c, &req) {
		return
	}
	l, err := h.Svc.Create(c.Request.Context(), middleware.CurrentUser(c), application.LocationInput{Name: req.Name, RegionID: req.RegionID})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, toLocation(l), "location created", nil)
}

func (h *LocationHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req locationRequest
	if !bindJSON(c, &req) {
		return
	}
	l, err := h.Svc.Update(c.Request.Context(), middleware.CurrentUser(c), id, application.LocationInput{Name: req.Name, RegionID: req.RegionID})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, toLocation(l), "location updated", nil)
}

func (h *LocationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	l, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, toLocation(l), "location", nil)
}

func (h *LocationHandler) List(c *gin.Context) {
	var q locationQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.Svc.List(c.Request.Context(), q.RegionID, q.page())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	list(c, mapSlice(items, toLocation), q.page(), "locations")
}

func (h *LocationHandler) ListMine(c *gin.Context) {
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.Svc.ListMine(c.Request.Context(), middleware.CurrentUser(c), q.page())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	list(c, mapSlice(items, toLocation), q.page(), "my locations")
}

func (h *LocationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"deleted": true}, "location deleted", nil)
}
