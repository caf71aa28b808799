package httpresp

import "github.com/gin-gonic/gin"

// PageResponse is the envelope for paginated listings. Total counts
// all matching rows, not just the returned page.
type PageResponse[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(201, data)
}

func Page[T any](c *gin.Context, data []T, total int64, page, limit int) {
	c.JSON(200, PageResponse[T]{
		Data:  data,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
