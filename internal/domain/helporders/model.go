package helporders

import (
	"time"

	"github.com/Librity/gympoint-back-end/internal/domain/students"
)

// HelpOrder is a student question. A nil Answer marks it unanswered.
type HelpOrder struct {
	ID        uint `gorm:"primaryKey"`
	StudentID uint `gorm:"not null;index"`
	Student   students.Student

	Question string     `gorm:"type:text;not null"`
	Answer   *string    `gorm:"type:text"`
	AnswerAt *time.Time `gorm:"column:answer_at"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (h HelpOrder) Answered() bool {
	return h.Answer != nil
}
