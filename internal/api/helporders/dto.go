package helporders

import (
	"time"

	"github.com/Librity/gympoint-back-end/internal/domain/helporders"
)

type StudentDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type HelpOrderDTO struct {
	ID        uint        `json:"id"`
	Question  string      `json:"question"`
	Answer    *string     `json:"answer"`
	AnswerAt  *time.Time  `json:"answer_at"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Student   *StudentDTO `json:"student,omitempty"`
}

type ListResponse struct {
	Count int64          `json:"count"`
	Rows  []HelpOrderDTO `json:"rows"`
}

func buildHelpOrderDTO(h helporders.HelpOrder, withStudent bool) HelpOrderDTO {
	dto := HelpOrderDTO{
		ID:        h.ID,
		Question:  h.Question,
		Answer:    h.Answer,
		AnswerAt:  h.AnswerAt,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
	if withStudent {
		dto.Student = &StudentDTO{
			ID:    h.Student.ID,
			Name:  h.Student.Name,
			Email: h.Student.Email,
		}
	}
	return dto
}
