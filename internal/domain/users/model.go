package users

import "time"

// User is an administrator account. Students never log in; every management
// route is operated by an admin session.
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:255;not null"`
	Email    string `gorm:"size:255;not null;uniqueIndex:idx_users_email"`
	Password string `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
