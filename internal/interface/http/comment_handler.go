package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/internal/application"
	"github.com/oksasatya/unibase/internal/interface/middleware"
	"github.com/oksasatya/unibase/pkg/response"
)

type createCommentRequest struct {
	UniversityID string `json:"university_id" binding:"required,uuid"`
	Body         string `json:"body" binding:"required,max=5000"`
}

type updateCommentRequest struct {
	Body string `json:"body" binding:"required,max=5000"`
}

type commentQuery struct {
	pageQuery
	UniversityID string `form:"university_id" binding:"required,uuid"`
}

type CommentHandler struct {
	Svc    *application.CommentService
	Logger *logrus.Logger
}

func NewCommentHandler(svc *application.CommentService, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{Svc: svc, Logger: logger}
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req createCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	cm, err := h.Svc.Create(c.Request.Context(), middleware.CurrentUser(c), req.UniversityID, req.Body)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, toComment(cm), "comment created", nil)
}

func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	cm, err := h.Svc.Update(c.Request.Context(), middleware.CurrentUser(c), id, req.Body)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, toComment(cm), "comment updated", nil)
}

func (h *CommentHandler) ListByUniversity(c *gin.Context) {
	var q commentQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.Svc.ListByUniversity(c.Request.Context(), q.UniversityID, q.page())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	list(c, mapSlice(items, toComment), q.page(), "comments")
}

func (h *CommentHandler) ListMine(c *gin.Context) {
	var q pageQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.Svc.ListMine(c.Request.Context(), middleware.CurrentUser(c), q.page())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	list(c, mapSlice(items, toComment), q.page(), "my comments")
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"deleted": true}, "comment deleted", nil)
}
