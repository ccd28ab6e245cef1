package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/internal/application"
	"github.com/oksasatya/unibase/internal/interface/middleware"
	"github.com/oksasatya/unibase/pkg/response"
)

type addFavoriteRequest struct {
	UniversityID string `json:"university_id" binding:"required,uuid"`
}

type FavoriteHandler struct {
	Svc    *application.FavoriteService
	Logger *logrus.Logger
}

func NewFavoriteHandler(svc *application.FavoriteService, logger *logrus.Logger) *FavoriteHandler {
	return &FavoriteHandler{Svc: svc, Logger: logger}
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	var req addFavoriteRequest
	if !bindJSON(c, &req) {
		return
	}
	f, err := h.Svc.Add(c.Request.Context(), middleware.CurrentUser(c), req.UniversityID)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, toFavorite(f), "added to favorites", nil)
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	uid, ok := pathID(c, "university_id")
	if !ok {
		return
	}
	if err := h.Svc.Remove(c.Request.Context(), middleware.CurrentUser(c), uid); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"removed": true}, "removed from favorites", nil)
}

func (h *FavoriteHandler) Exists(c *gin.Context) {
	uid, ok := pathID(c, "university_id")
	if !ok {
		return
	}
	found, err := h.Svc.Exists(c.Request.Context(), middleware.CurrentUser(c), uid)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"favorited": found}, "favorite status", nil)
}

func (h *FavoriteHandler) List(c *gin.Context) {
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.Svc.List(c.Request.Context(), middleware.CurrentUser(c), q.page())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	list(c, mapSlice(items, toFavoriteEntry), q.page(), "favorites")
}
