// Package httpresp writes successful JSON responses.
package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListResponse wraps a listing. Data is never null. Listings are not
// paginated, so Total is len(Data).
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// List writes rows as a ListResponse. A nil slice is sent as [].
func List[T any](c *gin.Context, rows []T) {
	if rows == nil {
		rows = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  rows,
		Total: len(rows),
	})
}
