package plans

import "time"

// Plan is a catalog entry: a monthly price applied for a fixed number of months.
type Plan struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Title    string  `gorm:"size:255;not null;uniqueIndex:idx_plans_title" json:"title"`
	Symbol   string  `gorm:"size:16" json:"symbol"`
	Duration int     `gorm:"not null" json:"duration"`
	Price    float64 `gorm:"not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TotalPrice is the full cost of the plan over its duration.
func (p Plan) TotalPrice() float64 {
	return p.Price * float64(p.Duration)
}
