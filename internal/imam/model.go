package imam

import (
	"time"
)

// Imam is the officiant record. At most one record is active at any time;
// activation state is immutable through the update path.
type Imam struct {
	ID              string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone           string    `gorm:"type:varchar(20);not null" json:"phone"`
	Email           *string   `gorm:"type:varchar(255)" json:"email"`
	Qualification   string    `gorm:"type:varchar(255)" json:"qualification"`
	ExperienceYears int       `gorm:"not null" json:"experience_years"`
	AppointmentDate time.Time `gorm:"type:date;not null" json:"appointment_date"`
	Salary          *float64  `json:"salary"`
	IsActive        bool      `gorm:"default:true;index" json:"is_active"`
}

func (Imam) TableName() string {
	return "imams"
}

// CreateImamRequest is used for both create and full update.
type CreateImamRequest struct {
	Name            string   `json:"name" binding:"required"`
	Phone           string   `json:"phone" binding:"required"`
	Email           *string  `json:"email"`
	Qualification   string   `json:"qualification" binding:"required"`
	ExperienceYears int      `json:"experience_years"`
	AppointmentDate string   `json:"appointment_date" binding:"required"` // "2006-01-02"
	Salary          *float64 `json:"salary"`
}
