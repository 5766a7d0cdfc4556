package course

import "gorm.io/gorm"

// The mapper tables are the only stored hierarchy edges. OrderIndex is
// meaningful relative to siblings under the same parent; duplicate values
// are not rejected and resolve in a stable but unspecified order.

// CourseMapper links a module into a course
type CourseMapper struct {
	gorm.Model
	CourseID   uint `json:"course_id" gorm:"index;not null"`
	ModuleID   uint `json:"module_id" gorm:"index;not null"`
	OrderIndex int  `json:"order_index" gorm:"default:0"`
}

// LessonMapper links a lesson into a module
type LessonMapper struct {
	gorm.Model
	ModuleID   uint `json:"module_id" gorm:"index;not null"`
	LessonID   uint `json:"lesson_id" gorm:"index;not null"`
	OrderIndex int  `json:"order_index" gorm:"default:0"`
}

// MaterialMapper links a material into a lesson. The material has no inherent
// link back to the lesson; this row owns the relationship entirely.
// MaterialDuration is denormalized from the material at attach time so module
// duration recomputes without touching the per-type tables.
type MaterialMapper struct {
	gorm.Model
	LessonID         uint         `json:"lesson_id" gorm:"index;not null"`
	MaterialID       uint         `json:"material_id" gorm:"index;not null"`
	MaterialType     MaterialType `json:"material_type" gorm:"not null"`
	MaterialDuration int64        `json:"material_duration" gorm:"default:0"`
	OrderIndex       int          `json:"order_index" gorm:"default:0"`
}
