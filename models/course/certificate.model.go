package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is issued automatically when an enrollment finishes a course
type Certificate struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"index;not null"`
	CourseID     uint      `json:"course_id" gorm:"index;not null"`
	EnrollmentID uint      `json:"enrollment_id" gorm:"index;not null"`
	SerialNumber string    `json:"serial_number" gorm:"unique"`
	IssuedAt     time.Time `json:"issued_at"`
	IsDeleted    bool      `gorm:"default:false"`
}
