package memberships

import (
	"time"

	"github.com/Librity/gympoint-back-end/internal/domain/plans"
	"github.com/Librity/gympoint-back-end/internal/domain/students"
)

// Membership binds a student to a plan for a date range. EndDate and Price
// are derived from the plan referenced by TempPlanID, never set by callers
// directly; Derive recomputes them and must run whenever TempPlanID changes.
type Membership struct {
	ID        uint `gorm:"primaryKey"`
	StudentID uint `gorm:"not null;index"`
	Student   students.Student

	// PlanID is the committed plan; TempPlanID tracks the plan the derived
	// fields were last computed from. They only differ mid-renew/transfer.
	PlanID     uint `gorm:"not null"`
	Plan       plans.Plan
	TempPlanID uint `gorm:"not null"`

	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null;index"`
	Price     float64   `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Derive recomputes EndDate and Price from the given plan, which must be the
// plan TempPlanID points at.
func (m *Membership) Derive(plan plans.Plan) {
	m.EndDate = m.StartDate.AddDate(0, plan.Duration, 0)
	m.Price = plan.Price
}

// Active reports whether the membership still covers the given instant.
// An end date equal to now still counts as active.
func (m Membership) Active(now time.Time) bool {
	return !m.EndDate.Before(now)
}
