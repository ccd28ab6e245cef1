package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	repo "github.com/oksasatya/unibase/internal/domain/repository"
	"github.com/oksasatya/unibase/pkg/response"
)

// pathID parses a uuid path parameter, aborting with 400 when it is malformed.
func pathID(c *gin.Context, name string) (string, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Abort(c, http.StatusBadRequest, "invalid "+name, nil)
		return "", false
	}
	return id.String(), true
}

type pageQuery struct {
	Limit  int `form:"limit" binding:"gte=0"`
	Offset int `form:"offset" binding:"gte=0"`
}

func (q pageQuery) page() repo.Page {
	return repo.Page{Limit: q.Limit, Offset: q.Offset}.Normalize()
}

// bindQuery binds query filters, aborting with 400 on failure.
func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		badPayload(c, err)
		return false
	}
	return true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		badPayload(c, err)
		return false
	}
	return true
}

// list writes items with paging meta. items is never nil on the wire.
func list[T any](c *gin.Context, items []T, p repo.Page, message string) {
	if items == nil {
		items = []T{}
	}
	response.OK(c, http.StatusOK, items, message, response.PageMeta{Limit: p.Limit, Offset: p.Offset, Count: len(items)})
}

func mapSlice[E, D any](in []E, fn func(*E) D) []D {
	out := make([]D, 0, len(in))
	for i := range in {
		out = append(out, fn(&in[i]))
	}
	return out
}
