package memberships

import (
	"net/http"
	"time"

	"github.com/Librity/gympoint-back-end/database"
	"github.com/Librity/gympoint-back-end/internal/domain/memberships"
	"github.com/Librity/gympoint-back-end/internal/domain/plans"
	"github.com/Librity/gympoint-back-end/internal/domain/students"
	"github.com/Librity/gympoint-back-end/internal/infra/queue"

	"github.com/gin-gonic/gin"
)

// ------------------------------
// GET /memberships
// ------------------------------
func Index(c *gin.Context) {
	limit, offset := pagination(c)

	var count int64
	if err := database.DB.Model(&memberships.Membership{}).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load memberships"})
		return
	}

	var rows []memberships.Membership
	err := joinedQuery(database.DB).
		Order("end_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load memberships"})
		return
	}

	now := time.Now()
	out := ListResponse{Count: count, Rows: make([]MembershipDTO, 0, len(rows))}
	for _, m := range rows {
		out.Rows = append(out.Rows, buildMembershipDTO(m, now))
	}

	c.JSON(http.StatusOK, out)
}

// ------------------------------
// GET /students/:student_id/memberships
// ------------------------------
func Show(c *gin.Context) {
	studentID, ok := uintParam(c, "student_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	var student students.Student
	if err := database.DB.First(&student, studentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	var rows []memberships.Membership
	err := joinedQuery(database.DB).
		Where("student_id = ?", studentID).
		Order("end_date DESC").
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load memberships"})
		return
	}

	now := time.Now()
	out := make([]MembershipDTO, 0, len(rows))
	for _, m := range rows {
		out = append(out, buildStudentScopedDTO(m, now))
	}

	c.JSON(http.StatusOK, out)
}

type storeRequest struct {
	PlanID    *uint      `json:"plan_id"`
	StartDate *time.Time `json:"start_date"`
}

// ------------------------------
// POST /students/:student_id/memberships
// ------------------------------
func Store(c *gin.Context) {
	studentID, ok := uintParam(c, "student_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	var student students.Student
	if err := database.DB.First(&student, studentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	var req storeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PlanID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed."})
		return
	}

	var plan plans.Plan
	if err := database.DB.First(&plan, *req.PlanID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Plan not found."})
		return
	}

	startDate := time.Now()
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	m := memberships.Membership{
		StudentID:  studentID,
		PlanID:     plan.ID,
		TempPlanID: plan.ID,
		StartDate:  startDate,
	}
	m.Derive(plan)

	if err := database.DB.Create(&m).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create membership"})
		return
	}

	joined, err := findJoined(database.DB, m.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load membership"})
		return
	}

	dto := buildMembershipDTO(*joined, time.Now())
	queue.Dispatch(queue.MembershipCreationMail, dto)

	c.JSON(http.StatusOK, dto)
}

type updateRequest struct {
	PlanID    *uint      `json:"plan_id"`
	StartDate *time.Time `json:"start_date"`
}

// ------------------------------
// PUT /students/:student_id/memberships/:membership_id
// ------------------------------
func Update(c *gin.Context) {
	studentID, ok := uintParam(c, "student_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	var student students.Student
	if err := database.DB.First(&student, studentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PlanID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed."})
		return
	}

	var plan plans.Plan
	if err := database.DB.First(&plan, *req.PlanID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Plan not found."})
		return
	}

	membershipID, ok := uintParam(c, "membership_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Membership not found."})
		return
	}

	var m memberships.Membership
	if err := database.DB.First(&m, membershipID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Membership not found."})
		return
	}

	m.PlanID = plan.ID
	m.TempPlanID = plan.ID
	if req.StartDate != nil {
		m.StartDate = *req.StartDate
	}
	// The plan backing the derived fields changed, so they are recomputed
	// even when start_date stayed put.
	m.Derive(plan)

	if err := database.DB.Save(&m).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update membership"})
		return
	}

	joined, err := findJoined(database.DB, m.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load membership"})
		return
	}

	dto := buildMembershipDTO(*joined, time.Now())
	queue.Dispatch(queue.MembershipUpdateMail, dto)

	c.JSON(http.StatusOK, dto)
}

type transferRequest struct {
	StudentID *uint      `json:"student_id"`
	PlanID    *uint      `json:"plan_id"`
	StartDate *time.Time `json:"start_date"`
}

// ------------------------------
// PUT /memberships/:membership_id/transfer
// ------------------------------
func Transfer(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.StudentID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed."})
		return
	}

	var student students.Student
	if err := database.DB.First(&student, *req.StudentID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Student not found."})
		return
	}

	var plan plans.Plan
	if req.PlanID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Plan not found."})
		return
	}
	if err := database.DB.First(&plan, *req.PlanID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Plan not found."})
		return
	}

	membershipID, ok := uintParam(c, "membership_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Membership not found."})
		return
	}

	var m memberships.Membership
	if err := database.DB.First(&m, membershipID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Membership not found."})
		return
	}

	m.StudentID = student.ID
	m.PlanID = plan.ID
	m.TempPlanID = plan.ID
	if req.StartDate != nil {
		m.StartDate = *req.StartDate
	}
	m.Derive(plan)

	if err := database.DB.Save(&m).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to transfer membership"})
		return
	}

	joined, err := findJoined(database.DB, m.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load membership"})
		return
	}

	dto := buildMembershipDTO(*joined, time.Now())
	queue.Dispatch(queue.MembershipUpdateMail, dto)

	c.JSON(http.StatusOK, dto)
}

// ------------------------------
// DELETE /students/:student_id/memberships/:membership_id
// ------------------------------
func Destroy(c *gin.Context) {
	studentID, ok := uintParam(c, "student_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	var student students.Student
	if err := database.DB.First(&student, studentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	membershipID, ok := uintParam(c, "membership_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Membership not found."})
		return
	}

	joined, err := findJoined(database.DB, membershipID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Membership not found."})
		return
	}

	// Snapshot before the delete: the cancellation mail carries the record's
	// last known state.
	dto := buildMembershipDTO(*joined, time.Now())

	if err := database.DB.Delete(&memberships.Membership{}, membershipID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel membership"})
		return
	}

	queue.Dispatch(queue.MembershipCancellationMail, dto)

	c.JSON(http.StatusOK, dto)
}
