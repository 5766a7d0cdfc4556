package courseService

import (
	"fmt"
	"time"

	"madrasa/models"
	courseModels "madrasa/models/course"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// progressRetryLimit bounds the compare-and-swap retries in RecordProgress
const progressRetryLimit = 5

// Enroll creates an active enrollment and bumps the course enrolled count in
// one transaction. A (user, course) pair can hold at most one active
// enrollment; a cancelled one does not block re-enrolling.
func Enroll(db *gorm.DB, userID, courseID uint) (*courseModels.Enrollment, error) {
	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, ErrCourseNotFound
	}

	var existing courseModels.Enrollment
	err := db.Where("user_id = ? AND course_id = ? AND cancelled_at IS NULL AND is_deleted = ?", userID, courseID, false).
		First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyEnrolled
	}

	enrollment := courseModels.Enrollment{
		UserID:          userID,
		CourseID:        courseID,
		ProgressCounter: 0,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&enrollment).Error; err != nil {
			return fmt.Errorf("create enrollment: %w", err)
		}
		err := tx.Model(&courseModels.Course{}).Where("id = ?", courseID).
			UpdateColumn("enrolled_count", gorm.Expr("enrolled_count + 1")).Error
		if err != nil {
			return fmt.Errorf("bump enrolled count: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// RecordProgress advances the progress counter by one consumed material.
// The counter never exceeds the course material count; the call that reaches
// the count flips is_finished, bumps the course completion count and issues a
// certificate. Once finished, further calls are no-ops.
//
// Concurrent calls for the same enrollment serialize through a
// compare-and-swap on the counter: the conditional update loses against a
// concurrent writer, the whole step is retried on fresh state. This prevents
// the double-increment race a plain read-then-update would allow.
func RecordProgress(db *gorm.DB, userID, courseID, materialID uint) (*courseModels.Enrollment, error) {
	for attempt := 0; attempt < progressRetryLimit; attempt++ {
		enrollment, err := findActiveEnrollment(db, userID, courseID)
		if err != nil {
			return nil, err
		}
		if enrollment.IsFinished {
			return enrollment, nil
		}
		var course courseModels.Course
		if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
			return nil, ErrCourseNotFound
		}

		counter := enrollment.ProgressCounter
		updates := map[string]interface{}{}
		if counter+1 <= course.MaterialCount {
			counter++
			updates["progress_counter"] = counter
			updates["current_material_id"] = materialID
		}
		// a zero-material course can never finish
		finished := course.MaterialCount > 0 && counter >= course.MaterialCount
		if finished {
			updates["is_finished"] = true
		}
		if len(updates) == 0 {
			return enrollment, nil
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			result := tx.Model(&courseModels.Enrollment{}).
				Where("id = ? AND progress_counter = ? AND is_finished = ?", enrollment.ID, enrollment.ProgressCounter, false).
				Updates(updates)
			if result.Error != nil {
				return fmt.Errorf("update progress: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return errProgressConflict
			}
			if finished {
				return completeEnrollment(tx, enrollment)
			}
			return nil
		})
		if err == errProgressConflict {
			continue
		}
		if err != nil {
			return nil, err
		}
		return findActiveEnrollment(db, userID, courseID)
	}
	return nil, fmt.Errorf("record progress: %w", errProgressConflict)
}

// completeEnrollment applies the one-time completion side effects
func completeEnrollment(tx *gorm.DB, enrollment *courseModels.Enrollment) error {
	err := tx.Model(&courseModels.Course{}).Where("id = ?", enrollment.CourseID).
		UpdateColumn("completion_count", gorm.Expr("completion_count + 1")).Error
	if err != nil {
		return fmt.Errorf("bump completion count: %w", err)
	}
	certificate := courseModels.Certificate{
		UserID:       enrollment.UserID,
		CourseID:     enrollment.CourseID,
		EnrollmentID: enrollment.ID,
		SerialNumber: uuid.NewString(),
		IssuedAt:     time.Now(),
	}
	if err := tx.Create(&certificate).Error; err != nil {
		return fmt.Errorf("issue certificate: %w", err)
	}
	return nil
}

// CancelEnrollment soft-cancels the active enrollment. The row stays, the
// finished flag is untouched.
func CancelEnrollment(db *gorm.DB, userID, courseID uint) error {
	enrollment, err := findActiveEnrollment(db, userID, courseID)
	if err != nil {
		return err
	}
	now := time.Now()
	if err := db.Model(enrollment).Update("cancelled_at", &now).Error; err != nil {
		return fmt.Errorf("cancel enrollment: %w", err)
	}
	return nil
}

// ProgressPercent reports the user's progress through a course as a floored
// percentage. A course with zero materials reports 0 rather than dividing
// by zero.
func ProgressPercent(db *gorm.DB, userID, courseID uint) (int, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return 0, ErrCourseNotFound
	}
	enrollment, err := findActiveEnrollment(db, userID, courseID)
	if err != nil {
		return 0, err
	}
	return progressPercent(enrollment.ProgressCounter, course.MaterialCount), nil
}

func progressPercent(counter, materialCount int) int {
	if materialCount <= 0 {
		return 0
	}
	return counter * 100 / materialCount
}

func findActiveEnrollment(db *gorm.DB, userID, courseID uint) (*courseModels.Enrollment, error) {
	var enrollment courseModels.Enrollment
	err := db.Where("user_id = ? AND course_id = ? AND cancelled_at IS NULL AND is_deleted = ?", userID, courseID, false).
		First(&enrollment).Error
	if err != nil {
		return nil, ErrEnrollmentNotFound
	}
	return &enrollment, nil
}
