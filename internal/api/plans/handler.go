package plans

import (
	"net/http"

	"github.com/Librity/gympoint-back-end/database"
	"github.com/Librity/gympoint-back-end/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

type PlanDTO struct {
	ID         uint    `json:"id"`
	Title      string  `json:"title"`
	Symbol     string  `json:"symbol"`
	Duration   int     `json:"duration"`
	Price      float64 `json:"price"`
	TotalPrice float64 `json:"total_price"`
}

func buildPlanDTO(p plans.Plan) PlanDTO {
	return PlanDTO{
		ID:         p.ID,
		Title:      p.Title,
		Symbol:     p.Symbol,
		Duration:   p.Duration,
		Price:      p.Price,
		TotalPrice: p.TotalPrice(),
	}
}

type planInput struct {
	Title    string  `json:"title" binding:"required"`
	Symbol   string  `json:"symbol"`
	Duration int     `json:"duration" binding:"required,min=1"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}

// ------------------------------
// GET /plans
// ------------------------------
func Index(c *gin.Context) {
	var rows []plans.Plan
	if err := database.DB.Order("duration ASC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}

	out := make([]PlanDTO, 0, len(rows))
	for _, p := range rows {
		out = append(out, buildPlanDTO(p))
	}

	c.JSON(http.StatusOK, out)
}

// ------------------------------
// POST /plans
// ------------------------------
func Store(c *gin.Context) {
	var input planInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed."})
		return
	}

	var existing plans.Plan
	if err := database.DB.Where("title = ?", input.Title).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Plan already exists."})
		return
	}

	plan := plans.Plan{
		Title:    input.Title,
		Symbol:   input.Symbol,
		Duration: input.Duration,
		Price:    input.Price,
	}
	if err := database.DB.Create(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plan"})
		return
	}

	c.JSON(http.StatusOK, buildPlanDTO(plan))
}

// ------------------------------
// PUT /plans/:plan_id
// ------------------------------
func Update(c *gin.Context) {
	var plan plans.Plan
	if err := database.DB.First(&plan, c.Param("plan_id")).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Plan not found."})
		return
	}

	var input planInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed."})
		return
	}

	plan.Title = input.Title
	plan.Symbol = input.Symbol
	plan.Duration = input.Duration
	plan.Price = input.Price

	if err := database.DB.Save(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
		return
	}

	c.JSON(http.StatusOK, buildPlanDTO(plan))
}

// ------------------------------
// DELETE /plans/:plan_id
// ------------------------------
func Destroy(c *gin.Context) {
	var plan plans.Plan
	if err := database.DB.First(&plan, c.Param("plan_id")).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Plan not found."})
		return
	}

	if err := database.DB.Delete(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete plan"})
		return
	}

	c.JSON(http.StatusOK, buildPlanDTO(plan))
}
