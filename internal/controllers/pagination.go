package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// pageSize is the fixed page size used by every paginated listing.
const pageSize = 10

// pageParam returns the requested page number, or 0 when the listing should
// return the full result set.
func pageParam(c *gin.Context) int {
	raw := c.Query("page")
	if raw == "" {
		return 0
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// withNomSearch adds a case-insensitive substring filter on the nom column.
func withNomSearch(q *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return q
	}
	return q.Where("LOWER(nom) LIKE ?", "%"+strings.ToLower(search)+"%")
}

// respondList runs the prepared query and writes either the full result set
// or, when page >= 1, one page of it together with the total counts.
func respondList[T any](c *gin.Context, q *gorm.DB, page int) {
	var rows []T
	if page > 0 {
		var total int64
		if err := q.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count records"})
			return
		}
		if err := q.Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
			return
		}
		totalPages := int((total + pageSize - 1) / pageSize)
		c.JSON(http.StatusOK, gin.H{"data": rows, "total": total, "page": page, "totalPages": totalPages})
		return
	}
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}
