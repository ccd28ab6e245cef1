package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/internal/application"
	"github.com/oksasatya/unibase/internal/interface/middleware"
	"github.com/oksasatya/unibase/pkg/response"
)

type createNewsRequest struct {
	Title string `json:"title" binding:"required,title"`
	Photo string `json:"photo" binding:"omitempty,url"`
	Body  string `json:"body" binding:"required"`
}

// blank fields keep the stored value
type updateNewsRequest struct {
	Title string `json:"title" binding:"omitempty,title"`
	Photo string `json:"photo" binding:"omitempty,url"`
	Body  string `json:"body"`
}

type NewsHandler struct {
	Svc    *application.NewsService
	Logger *logrus.Logger
}

func NewNewsHandler(svc *application.NewsService, logger *logrus.Logger) *NewsHandler {
	return &NewsHandler{Svc: svc, Logger: logger}
}

func (h *NewsHandler) Create(c *gin.Context) {
	var req createNewsRequest
	if !bindJSON(c, &req) {
		return
	}
	n, err := h.Svc.Create(c.Request.Context(), middleware.CurrentUser(c), application.NewsInput{Title: req.Title, Photo: req.Photo, Body: req.Body})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, toNews(n), "news created", nil)
}

func (h *NewsHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateNewsRequest
	if !bindJSON(c, &req) {
		return
	}
	n, err := h.Svc.Update(c.Request.Context(), middleware.CurrentUser(c), id, application.NewsInput{Title: req.Title, Photo: req.Photo, Body: req.Body})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, toNews(n), "news updated", nil)
}

func (h *NewsHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	n, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, toNews(n), "news", nil)
}

func (h *NewsHandler) List(c *gin.Context) {
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.Svc.List(c.Request.Context(), q.page())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	list(c, mapSlice(items, toNews), q.page(), "news")
}

func (h *NewsHandler) ListMine(c *gin.Context) {
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.Svc.ListMine(c.Request.Context(), middleware.CurrentUser(c), q.page())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	list(c, mapSlice(items, toNews), q.page(), "my news")
}

func (h *NewsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"deleted": true}, "news deleted", nil)
}
