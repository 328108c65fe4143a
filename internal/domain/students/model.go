package students

import "time"

type Student struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Name   string  `gorm:"size:255;not null" json:"name"`
	Email  string  `gorm:"size:255;not null;uniqueIndex:idx_students_email" json:"email"`
	Age    int     `json:"age"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
