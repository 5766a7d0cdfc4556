package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourseInfo holds the descriptive metadata stored as a JSON column on the course.
// DurationHours is stored in seconds and converted to hours at the read edge.
type CourseInfo struct {
	DurationHours   int64          `json:"durationHours"`
	Tags            []string       `json:"tags"`
	NewSkills       []string       `json:"new_skills_result"`
	LearningOutcome map[string]int `json:"learning_outcome"`
	Prerequisites   []string       `json:"prerequisites"`
}

// Course represents a learning course
type Course struct {
	gorm.Model
	Title           string                         `json:"title"`
	Description     string                         `json:"description" gorm:"type:text"`
	Level           string                         `json:"level" gorm:"default:'BEGINNER'"` // BEGINNER, INTERMEDIATE, ADVANCED
	Topic           string                         `json:"topic"`
	CourseInfo      datatypes.JSONType[CourseInfo] `json:"course_info"`
	MaterialCount   int                            `json:"material_count" gorm:"default:0"` // derived, recomputed on structural writes
	EnrolledCount   int                            `json:"enrolled_count" gorm:"default:0"`
	CompletionCount int                            `json:"completion_count" gorm:"default:0"`
	IsPublished     bool                           `json:"is_published" gorm:"default:false"`
	IsDeleted       bool                           `gorm:"default:false"`
}
