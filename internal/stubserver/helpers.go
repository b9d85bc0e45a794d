package stubserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// respondList wraps a full result set in the `{data, pagination}` envelope,
// slicing out the requested page.
func respondList[T any](c *gin.Context, items []T) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"data": items[start:end],
		"pagination": pagination{
			Page:       page,
			PageSize:   pageSize,
			TotalItems: total,
			TotalPages: totalPages,
		},
	})
}

func respondMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

func respondFieldErrors(c *gin.Context, errs []fieldError) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
}

// queryInt reads an integer query param, 0 when absent or malformed.
func queryInt(c *gin.Context, key string) int {
	n, _ := strconv.Atoi(c.Query(key))
	return n
}

// pathID parses the :id route param.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondMessage(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// matchActive applies the is_active query filter when present.
func matchActive(c *gin.Context, isActive bool) bool {
	raw := c.Query("is_active")
	if raw == "" {
		return true
	}
	want := raw == "true"
	return isActive == want
}
