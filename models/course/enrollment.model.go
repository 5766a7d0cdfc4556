package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment tracks a user's progress through a course. ProgressCounter is
// monotonic and bounded by the course material_count; IsFinished flips to
// true once and never reverts. CancelledAt is a soft marker, the row is
// never physically deleted.
type Enrollment struct {
	gorm.Model
	UserID            uint       `json:"user_id" gorm:"index;not null"`
	CourseID          uint       `json:"course_id" gorm:"index;not null"`
	ProgressCounter   int        `json:"progress_counter" gorm:"default:0"`
	CurrentMaterialID *uint      `json:"current_material_id"`
	IsFinished        bool       `json:"is_finished" gorm:"default:false"`
	CancelledAt       *time.Time `json:"cancelled_at"`
	IsDeleted         bool       `gorm:"default:false"`

	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
