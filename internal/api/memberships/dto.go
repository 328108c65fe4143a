package memberships

import (
	"time"

	"github.com/Librity/gympoint-back-end/internal/domain/memberships"
	"github.com/Librity/gympoint-back-end/internal/domain/plans"
	"github.com/Librity/gympoint-back-end/internal/domain/students"
)

type StudentDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PlanDTO struct {
	ID         uint    `json:"id"`
	Title      string  `json:"title"`
	Symbol     string  `json:"symbol"`
	Duration   int     `json:"duration"`
	Price      float64 `json:"price"`
	TotalPrice float64 `json:"total_price"`
}

type MembershipDTO struct {
	ID        uint        `json:"id"`
	StartDate time.Time   `json:"start_date"`
	EndDate   time.Time   `json:"end_date"`
	Price     float64     `json:"price"`
	Active    bool        `json:"active"`
	Student   *StudentDTO `json:"student,omitempty"`
	Plan      *PlanDTO    `json:"plan,omitempty"`
}

type ListResponse struct {
	Count int64           `json:"count"`
	Rows  []MembershipDTO `json:"rows"`
}

func buildStudentDTO(s students.Student) *StudentDTO {
	return &StudentDTO{ID: s.ID, Name: s.Name, Email: s.Email}
}

func buildPlanDTO(p plans.Plan) *PlanDTO {
	return &PlanDTO{
		ID:         p.ID,
		Title:      p.Title,
		Symbol:     p.Symbol,
		Duration:   p.Duration,
		Price:      p.Price,
		TotalPrice: p.TotalPrice(),
	}
}

// buildMembershipDTO maps a joined membership row. Active is computed at
// read time, never stored.
func buildMembershipDTO(m memberships.Membership, now time.Time) MembershipDTO {
	return MembershipDTO{
		ID:        m.ID,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Price:     m.Price,
		Active:    m.Active(now),
		Student:   buildStudentDTO(m.Student),
		Plan:      buildPlanDTO(m.Plan),
	}
}

// buildStudentScopedDTO is the per-student listing shape: the student is the
// route scope, so only the plan is embedded.
func buildStudentScopedDTO(m memberships.Membership, now time.Time) MembershipDTO {
	dto := buildMembershipDTO(m, now)
	dto.Student = nil
	return dto
}
