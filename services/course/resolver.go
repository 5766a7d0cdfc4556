package courseService

import (
	"fmt"
	"sort"

	courseModels "madrasa/models/course"

	"gorm.io/gorm"
)

// LessonMaterial is one resolved material in its lesson, carrying the
// presentation order from the mapper row
type LessonMaterial struct {
	Order    int                         `json:"order"`
	Type     courseModels.MaterialType   `json:"type"`
	Material courseModels.MaterialRecord `json:"material"`
}

// LessonDetail is a lesson annotated with its resolved materials
type LessonDetail struct {
	courseModels.Lesson
	Order     int              `json:"order"`
	Materials []LessonMaterial `json:"materials"`
}

// ModuleDetail is a module annotated with its resolved lessons
type ModuleDetail struct {
	courseModels.Module
	Order   int            `json:"order"`
	Lessons []LessonDetail `json:"lessons"`
}

// CourseDetails is the fully materialized course tree plus the
// enrollment-derived fields for the requesting user
type CourseDetails struct {
	courseModels.Course
	DurationHours   int64          `json:"duration_hours"` // whole hours, converted from stored seconds
	CompletionRate  float64        `json:"completion_rate"`
	IsEnrolled      bool           `json:"is_enrolled"`
	Progress        int            `json:"progress"`
	CurrentMaterial *uint          `json:"current_material"`
	Modules         []ModuleDetail `json:"modules"`
}

// ResolveLessonMaterials assembles the ordered material sequence of a lesson.
// Mapper rows are grouped by type so each type store is hit with one batched
// query; grouping is a fetch optimization only and never leaks into the
// result order, which is ascending by the mapper OrderIndex. Ties keep the
// mapper insertion order (deterministic, not a contract).
func ResolveLessonMaterials(db *gorm.DB, lessonID uint) ([]LessonMaterial, error) {
	var mappers []courseModels.MaterialMapper
	if err := db.Where("lesson_id = ?", lessonID).Order("id asc").Find(&mappers).Error; err != nil {
		return nil, fmt.Errorf("fetch material mappers: %w", err)
	}

	grouped := make(map[courseModels.MaterialType][]uint)
	for _, mapper := range mappers {
		grouped[mapper.MaterialType] = append(grouped[mapper.MaterialType], mapper.MaterialID)
	}

	type recordKey struct {
		materialType courseModels.MaterialType
		id           uint
	}
	resolved := make(map[recordKey]courseModels.MaterialRecord)
	for materialType, ids := range grouped {
		records, err := FindMaterialsByType(db, materialType, ids)
		if err != nil {
			return nil, err
		}
		for _, record := range records {
			resolved[recordKey{materialType, record.RecordID()}] = record
		}
	}

	materials := make([]LessonMaterial, 0, len(mappers))
	for _, mapper := range mappers {
		record, ok := resolved[recordKey{mapper.MaterialType, mapper.MaterialID}]
		if !ok {
			// mapper points at a deleted material; skip rather than fail the whole lesson
			continue
		}
		materials = append(materials, LessonMaterial{
			Order:    mapper.OrderIndex,
			Type:     mapper.MaterialType,
			Material: record,
		})
	}

	sort.SliceStable(materials, func(i, j int) bool { return materials[i].Order < materials[j].Order })
	return materials, nil
}

// ResolveModuleLessons assembles the ordered lessons of a module, each with
// its resolved materials
func ResolveModuleLessons(db *gorm.DB, moduleID uint) ([]LessonDetail, error) {
	var mappers []courseModels.LessonMapper
	if err := db.Where("module_id = ?", moduleID).Order("order_index asc, id asc").Find(&mappers).Error; err != nil {
		return nil, fmt.Errorf("fetch lesson mappers: %w", err)
	}
	if len(mappers) == 0 {
		return []LessonDetail{}, nil
	}

	lessonIDs := make([]uint, len(mappers))
	for i, mapper := range mappers {
		lessonIDs[i] = mapper.LessonID
	}

	var lessons []courseModels.Lesson
	if err := db.Where("id IN ? AND is_deleted = ?", lessonIDs, false).Find(&lessons).Error; err != nil {
		return nil, fmt.Errorf("fetch lessons: %w", err)
	}
	lessonByID := make(map[uint]courseModels.Lesson, len(lessons))
	for _, lesson := range lessons {
		lessonByID[lesson.ID] = lesson
	}

	details := make([]LessonDetail, 0, len(mappers))
	for _, mapper := range mappers {
		lesson, ok := lessonByID[mapper.LessonID]
		if !ok {
			continue
		}
		materials, err := ResolveLessonMaterials(db, lesson.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, LessonDetail{
			Lesson:    lesson,
			Order:     mapper.OrderIndex,
			Materials: materials,
		})
	}
	return details, nil
}

// ResolveCourseModules assembles the ordered modules of a course, each with
// its resolved lessons and materials
func ResolveCourseModules(db *gorm.DB, courseID uint) ([]ModuleDetail, error) {
	var mappers []courseModels.CourseMapper
	if err := db.Where("course_id = ?", courseID).Order("order_index asc, id asc").Find(&mappers).Error; err != nil {
		return nil, fmt.Errorf("fetch course mappers: %w", err)
	}
	if len(mappers) == 0 {
		return []ModuleDetail{}, nil
	}

	moduleIDs := make([]uint, len(mappers))
	for i, mapper := range mappers {
		moduleIDs[i] = mapper.ModuleID
	}

	var modules []courseModels.Module
	if err := db.Where("id IN ? AND is_deleted = ?", moduleIDs, false).Find(&modules).Error; err != nil {
		return nil, fmt.Errorf("fetch modules: %w", err)
	}
	moduleByID := make(map[uint]courseModels.Module, len(modules))
	for _, module := range modules {
		moduleByID[module.ID] = module
	}

	details := make([]ModuleDetail, 0, len(mappers))
	for _, mapper := range mappers {
		module, ok := moduleByID[mapper.ModuleID]
		if !ok {
			continue
		}
		lessons, err := ResolveModuleLessons(db, module.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, ModuleDetail{
			Module:  module,
			Order:   mapper.OrderIndex,
			Lessons: lessons,
		})
	}
	return details, nil
}

// GetCourseDetails composes the full course tree plus the requesting user's
// enrollment state. Read-only.
func GetCourseDetails(db *gorm.DB, courseID, userID uint) (*CourseDetails, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, ErrCourseNotFound
	}

	modules, err := ResolveCourseModules(db, courseID)
	if err != nil {
		return nil, err
	}

	details := &CourseDetails{
		Course:         course,
		DurationHours:  course.CourseInfo.Data().DurationHours / 3600,
		CompletionRate: CompletionRate(&course),
		Modules:        modules,
	}

	var enrollment courseModels.Enrollment
	err = db.Where("user_id = ? AND course_id = ? AND cancelled_at IS NULL AND is_deleted = ?", userID, courseID, false).
		First(&enrollment).Error
	if err == nil {
		details.IsEnrolled = true
		details.Progress = progressPercent(enrollment.ProgressCounter, course.MaterialCount)
		details.CurrentMaterial = enrollment.CurrentMaterialID
	}

	return details, nil
}
