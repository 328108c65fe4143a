package helporders

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Librity/gympoint-back-end/database"
	"github.com/Librity/gympoint-back-end/internal/domain/helporders"
	"github.com/Librity/gympoint-back-end/internal/domain/students"
	"github.com/Librity/gympoint-back-end/internal/infra/queue"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// unansweredOnly mirrors the query contract: only the literal "true"
// (also the default) narrows the listing to open orders.
func unansweredOnly(c *gin.Context) bool {
	return c.DefaultQuery("unanswered", "true") == "true"
}

func scopedQuery(db *gorm.DB, unanswered bool) *gorm.DB {
	q := db.Model(&helporders.HelpOrder{})
	if unanswered {
		q = q.Where("answer IS NULL")
	}
	return q
}

// ------------------------------
// GET /help-orders
// ------------------------------
func Index(c *gin.Context) {
	unanswered := unansweredOnly(c)

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("requestsPerPage", "20"))
	if err != nil || perPage < 1 {
		perPage = 20
	}

	var count int64
	if err := scopedQuery(database.DB, unanswered).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load help orders"})
		return
	}

	var rows []helporders.HelpOrder
	err = scopedQuery(database.DB, unanswered).
		Preload("Student").
		Order("updated_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load help orders"})
		return
	}

	out := ListResponse{Count: count, Rows: make([]HelpOrderDTO, 0, len(rows))}
	for _, h := range rows {
		out.Rows = append(out.Rows, buildHelpOrderDTO(h, true))
	}

	c.JSON(http.StatusOK, out)
}

// ------------------------------
// GET /students/:student_id/help-orders
// ------------------------------
func Show(c *gin.Context) {
	studentID, err := strconv.ParseUint(c.Param("student_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	var student students.Student
	if err := database.DB.First(&student, studentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	var rows []helporders.HelpOrder
	err = scopedQuery(database.DB, unansweredOnly(c)).
		Where("student_id = ?", studentID).
		Order("updated_at DESC").
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load help orders"})
		return
	}

	out := make([]HelpOrderDTO, 0, len(rows))
	for _, h := range rows {
		out = append(out, buildHelpOrderDTO(h, false))
	}

	c.JSON(http.StatusOK, out)
}

// ------------------------------
// POST /students/:student_id/help-orders
// ------------------------------
func Store(c *gin.Context) {
	var req struct {
		Question string `json:"question"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed."})
		return
	}

	studentID, err := strconv.ParseUint(c.Param("student_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	var student students.Student
	if err := database.DB.First(&student, studentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	h := helporders.HelpOrder{
		StudentID: uint(studentID),
		Question:  req.Question,
	}
	if err := database.DB.Create(&h).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create help order"})
		return
	}

	c.JSON(http.StatusOK, buildHelpOrderDTO(h, false))
}

// ------------------------------
// POST /help-orders/:help_order_id/answer
// ------------------------------
func Answer(c *gin.Context) {
	var req struct {
		Answer string `json:"answer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Answer) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed."})
		return
	}

	helpOrderID, err := strconv.ParseUint(c.Param("help_order_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Help order not found."})
		return
	}

	var h helporders.HelpOrder
	if err := database.DB.Preload("Student").First(&h, helpOrderID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Help order not found."})
		return
	}

	if h.Answered() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Help order already answered."})
		return
	}

	now := time.Now()
	h.Answer = &req.Answer
	h.AnswerAt = &now

	if err := database.DB.Save(&h).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to answer help order"})
		return
	}

	dto := buildHelpOrderDTO(h, true)
	queue.Dispatch(queue.HelpOrderAnswerMail, dto)

	c.JSON(http.StatusOK, dto)
}
