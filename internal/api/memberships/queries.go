package memberships

import (
	"strconv"

	"github.com/Librity/gympoint-back-end/internal/domain/memberships"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func joinedQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&memberships.Membership{}).
		Preload("Student").
		Preload("Plan")
}

func findJoined(db *gorm.DB, id uint) (*memberships.Membership, error) {
	var m memberships.Membership
	if err := joinedQuery(db).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// pagination reads page/requestsPerPage the way the API has always exposed
// them, clamped to sane minimums.
func pagination(c *gin.Context) (limit int, offset int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("requestsPerPage", "20"))
	if err != nil || perPage < 1 {
		perPage = 20
	}
	return perPage, (page - 1) * perPage
}

// uintParam parses a numeric path parameter. A malformed id behaves like a
// lookup miss, matching how the store treated garbage keys.
func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
