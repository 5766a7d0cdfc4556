package course

import "gorm.io/gorm"

// Module represents a section of a course, linked in via CourseMapper
type Module struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int64  `json:"duration" gorm:"default:0"` // derived, seconds, recomputed on structural writes
	IsDeleted   bool   `gorm:"default:false"`
}

// Lesson represents a unit of study, linked into modules via LessonMapper
type Lesson struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description" gorm:"type:text"`
	IsDeleted   bool   `gorm:"default:false"`
}
