package courseService

import (
	"fmt"

	courseModels "madrasa/models/course"

	"gorm.io/gorm"
)

// Structural mutations go through the attach/detach functions below; they are
// the only code paths that write mapper rows, and each one recomputes the
// affected aggregates inside the same transaction. Aggregates are always
// overwritten from current mapper state, never adjusted by a delta.

// AttachModule links a module into a course at the given sibling order
func AttachModule(db *gorm.DB, courseID, moduleID uint, order int) (*courseModels.CourseMapper, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, ErrCourseNotFound
	}
	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return nil, ErrModuleNotFound
	}

	mapper := courseModels.CourseMapper{
		CourseID:   courseID,
		ModuleID:   moduleID,
		OrderIndex: order,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&mapper).Error; err != nil {
			return fmt.Errorf("create course mapper: %w", err)
		}
		// the module may already carry lessons and materials
		return RecomputeCourseMaterialCount(tx, courseID)
	})
	if err != nil {
		return nil, err
	}
	return &mapper, nil
}

// AttachLesson links a lesson into a module at the given sibling order
func AttachLesson(db *gorm.DB, moduleID, lessonID uint, order int) (*courseModels.LessonMapper, error) {
	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return nil, ErrModuleNotFound
	}
	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return nil, ErrLessonNotFound
	}

	mapper := courseModels.LessonMapper{
		ModuleID:   moduleID,
		LessonID:   lessonID,
		OrderIndex: order,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&mapper).Error; err != nil {
			return fmt.Errorf("create lesson mapper: %w", err)
		}
		return recomputeModuleScope(tx, moduleID)
	})
	if err != nil {
		return nil, err
	}
	return &mapper, nil
}

// DetachLesson removes the lesson's link to the module; the lesson itself
// survives
func DetachLesson(db *gorm.DB, moduleID, lessonID uint) error {
	var mapper courseModels.LessonMapper
	if err := db.Where("module_id = ? AND lesson_id = ?", moduleID, lessonID).First(&mapper).Error; err != nil {
		return ErrLessonNotFound
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&mapper).Error; err != nil {
			return fmt.Errorf("delete lesson mapper: %w", err)
		}
		return recomputeModuleScope(tx, moduleID)
	})
}

// AttachMaterial links a material into a lesson. The material is resolved
// through the registry first, both to reject unknown discriminators and
// missing records before anything is written, and to denormalize its
// duration onto the mapper row.
func AttachMaterial(db *gorm.DB, lessonID, materialID uint, materialType courseModels.MaterialType, order int) (*courseModels.MaterialMapper, error) {
	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return nil, ErrLessonNotFound
	}

	record, err := FindMaterial(db, materialType, materialID)
	if err != nil {
		return nil, err
	}

	mapper := courseModels.MaterialMapper{
		LessonID:         lessonID,
		MaterialID:       materialID,
		MaterialType:     materialType,
		MaterialDuration: record.RecordDuration(),
		OrderIndex:       order,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&mapper).Error; err != nil {
			return fmt.Errorf("create material mapper: %w", err)
		}
		return recomputeLessonScope(tx, lessonID)
	})
	if err != nil {
		return nil, err
	}
	return &mapper, nil
}

// DetachMaterial removes the material's link to the lesson; the underlying
// material record survives
func DetachMaterial(db *gorm.DB, lessonID, materialID uint, materialType courseModels.MaterialType) error {
	var mapper courseModels.MaterialMapper
	err := db.Where("lesson_id = ? AND material_id = ? AND material_type = ?", lessonID, materialID, materialType).
		First(&mapper).Error
	if err != nil {
		return ErrMaterialNotFound
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&mapper).Error; err != nil {
			return fmt.Errorf("delete material mapper: %w", err)
		}
		return recomputeLessonScope(tx, lessonID)
	})
}

// recomputeLessonScope recomputes the aggregates affected by a material
// attach/detach: the duration of every module linking this lesson and the
// material count of every course above those modules.
func recomputeLessonScope(tx *gorm.DB, lessonID uint) error {
	var moduleIDs []uint
	if err := tx.Model(&courseModels.LessonMapper{}).Where("lesson_id = ?", lessonID).
		Distinct().Pluck("module_id", &moduleIDs).Error; err != nil {
		return fmt.Errorf("fetch owning modules: %w", err)
	}
	for _, moduleID := range moduleIDs {
		if err := recomputeModuleScope(tx, moduleID); err != nil {
			return err
		}
	}
	return nil
}

// recomputeModuleScope recomputes a module's duration and the material count
// of every course linking that module
func recomputeModuleScope(tx *gorm.DB, moduleID uint) error {
	if err := RecomputeModuleDuration(tx, moduleID); err != nil {
		return err
	}
	var courseIDs []uint
	if err := tx.Model(&courseModels.CourseMapper{}).Where("module_id = ?", moduleID).
		Distinct().Pluck("course_id", &courseIDs).Error; err != nil {
		return fmt.Errorf("fetch owning courses: %w", err)
	}
	for _, courseID := range courseIDs {
		if err := RecomputeCourseMaterialCount(tx, courseID); err != nil {
			return err
		}
	}
	return nil
}

// RecomputeModuleDuration re-walks the module's linked lessons and overwrites
// the stored duration with the sum of their material durations
func RecomputeModuleDuration(db *gorm.DB, moduleID uint) error {
	var lessonIDs []uint
	if err := db.Model(&courseModels.LessonMapper{}).Where("module_id = ?", moduleID).
		Pluck("lesson_id", &lessonIDs).Error; err != nil {
		return fmt.Errorf("fetch module lessons: %w", err)
	}

	var total int64
	if len(lessonIDs) > 0 {
		err := db.Model(&courseModels.MaterialMapper{}).Where("lesson_id IN ?", lessonIDs).
			Select("COALESCE(SUM(material_duration), 0)").Scan(&total).Error
		if err != nil {
			return fmt.Errorf("sum material durations: %w", err)
		}
	}

	if err := db.Model(&courseModels.Module{}).Where("id = ?", moduleID).
		UpdateColumn("duration", total).Error; err != nil {
		return fmt.Errorf("store module duration: %w", err)
	}
	return nil
}

// RecomputeCourseMaterialCount re-walks the course tree and overwrites the
// stored material count with the number of reachable material-mapper rows
func RecomputeCourseMaterialCount(db *gorm.DB, courseID uint) error {
	var moduleIDs []uint
	if err := db.Model(&courseModels.CourseMapper{}).Where("course_id = ?", courseID).
		Pluck("module_id", &moduleIDs).Error; err != nil {
		return fmt.Errorf("fetch course modules: %w", err)
	}

	var count int64
	if len(moduleIDs) > 0 {
		var lessonIDs []uint
		if err := db.Model(&courseModels.LessonMapper{}).Where("module_id IN ?", moduleIDs).
			Pluck("lesson_id", &lessonIDs).Error; err != nil {
			return fmt.Errorf("fetch course lessons: %w", err)
		}
		if len(lessonIDs) > 0 {
			if err := db.Model(&courseModels.MaterialMapper{}).Where("lesson_id IN ?", lessonIDs).
				Count(&count).Error; err != nil {
				return fmt.Errorf("count material mappers: %w", err)
			}
		}
	}

	if err := db.Model(&courseModels.Course{}).Where("id = ?", courseID).
		UpdateColumn("material_count", count).Error; err != nil {
		return fmt.Errorf("store material count: %w", err)
	}
	return nil
}
