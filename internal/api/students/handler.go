package students

import (
	"net/http"
	"strconv"

	"github.com/Librity/gympoint-back-end/database"
	"github.com/Librity/gympoint-back-end/internal/domain/students"

	"github.com/gin-gonic/gin"
)

type studentInput struct {
	Name   string  `json:"name" binding:"required"`
	Email  string  `json:"email" binding:"required,email"`
	Age    int     `json:"age"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
}

// ------------------------------
// GET /students?q=&page=&requestsPerPage=
// ------------------------------
func Index(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("requestsPerPage", "20"))
	if err != nil || perPage < 1 {
		perPage = 20
	}

	query := database.DB.Model(&students.Student{})
	if q := c.Query("q"); q != "" {
		query = query.Where("name ILIKE ?", "%"+q+"%")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load students"})
		return
	}

	var rows []students.Student
	err = query.
		Order("name ASC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load students"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count, "rows": rows})
}

// ------------------------------
// POST /students
// ------------------------------
func Store(c *gin.Context) {
	var input studentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed."})
		return
	}

	var existing students.Student
	if err := database.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Student already exists."})
		return
	}

	student := students.Student{
		Name:   input.Name,
		Email:  input.Email,
		Age:    input.Age,
		Weight: input.Weight,
		Height: input.Height,
	}
	if err := database.DB.Create(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create student"})
		return
	}

	c.JSON(http.StatusOK, student)
}

// ------------------------------
// PUT /students/:student_id
// ------------------------------
func Update(c *gin.Context) {
	var student students.Student
	if err := database.DB.First(&student, c.Param("student_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	var input studentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed."})
		return
	}

	if input.Email != student.Email {
		var existing students.Student
		if err := database.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Student already exists."})
			return
		}
	}

	student.Name = input.Name
	student.Email = input.Email
	student.Age = input.Age
	student.Weight = input.Weight
	student.Height = input.Height

	if err := database.DB.Save(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update student"})
		return
	}

	c.JSON(http.StatusOK, student)
}

// ------------------------------
// DELETE /students/:student_id
// ------------------------------
func Destroy(c *gin.Context) {
	var student students.Student
	if err := database.DB.First(&student, c.Param("student_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	if err := database.DB.Delete(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete student"})
		return
	}

	c.JSON(http.StatusOK, student)
}
