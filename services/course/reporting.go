package courseService

import (
	"fmt"
	"math"
	"time"

	courseModels "madrasa/models/course"

	"gorm.io/gorm"
)

// CurrentCourse is a summary of an in-progress course for the dashboard
type CurrentCourse struct {
	CourseID    uint                    `json:"course_id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Level       string                  `json:"level"`
	IsPublished bool                    `json:"is_published"`
	CourseInfo  courseModels.CourseInfo `json:"course_info"`
	CreatedAt   time.Time               `json:"created_at"`
	Progress    int                     `json:"progress"`
}

// CompletionRate reports the share of enrolled users who finished the course
func CompletionRate(course *courseModels.Course) float64 {
	if course.EnrolledCount == 0 {
		return 0
	}
	return float64(course.CompletionCount) / float64(course.EnrolledCount) * 100
}

// CompletedCoursesCount counts the user's finished enrollments
func CompletedCoursesCount(db *gorm.DB, userID uint) (int64, error) {
	var count int64
	err := db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND is_finished = ? AND is_deleted = ?", userID, true, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count completed courses: %w", err)
	}
	return count, nil
}

// CompletedHours sums the user's learning hours across all enrollments: the
// full course duration for finished ones, the progress-weighted share for
// in-progress ones. Durations are stored in seconds; the result is floored
// to whole hours.
func CompletedHours(db *gorm.DB, userID uint) (int64, error) {
	var enrollments []courseModels.Enrollment
	err := db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("Course").Find(&enrollments).Error
	if err != nil {
		return 0, fmt.Errorf("fetch enrollments: %w", err)
	}

	var total float64
	for _, enrollment := range enrollments {
		duration := float64(enrollment.Course.CourseInfo.Data().DurationHours)
		materials := enrollment.Course.MaterialCount
		if enrollment.IsFinished {
			total += duration / 3600
		} else if duration > 0 && materials > 0 {
			ratio := float64(enrollment.ProgressCounter) / float64(materials)
			total += duration / 3600 * ratio
		}
	}
	return int64(math.Floor(total)), nil
}

// Streak counts consecutive calendar days with learning activity, ending
// today. Activity is any enrollment update within the trailing 7 days; a
// user with nothing today scores 0 no matter how recent the older activity.
func Streak(db *gorm.DB, userID uint) (int, error) {
	today := truncateToDay(time.Now())
	since := today.AddDate(0, 0, -6)

	var stamps []time.Time
	err := db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND updated_at >= ? AND is_deleted = ?", userID, since, false).
		Order("updated_at desc").
		Pluck("updated_at", &stamps).Error
	if err != nil {
		return 0, fmt.Errorf("fetch activity days: %w", err)
	}

	// distinct activity days, newest first
	var days []time.Time
	seen := make(map[time.Time]bool)
	for _, stamp := range stamps {
		day := truncateToDay(stamp.Local())
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}

	streak := 0
	expected := today
	for _, day := range days {
		if !day.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak, nil
}

// CurrentCoursesForUser lists the user's unfinished, uncancelled courses with
// their floored progress percentage
func CurrentCoursesForUser(db *gorm.DB, userID uint) ([]CurrentCourse, error) {
	var enrollments []courseModels.Enrollment
	err := db.Where("user_id = ? AND is_finished = ? AND cancelled_at IS NULL AND is_deleted = ?", userID, false, false).
		Preload("Course").Find(&enrollments).Error
	if err != nil {
		return nil, fmt.Errorf("fetch current enrollments: %w", err)
	}

	courses := make([]CurrentCourse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		description := enrollment.Course.Description
		if len(description) > 100 {
			description = description[:100]
		}
		courses = append(courses, CurrentCourse{
			CourseID:    enrollment.Course.ID,
			Title:       enrollment.Course.Title,
			Description: description,
			Level:       enrollment.Course.Level,
			IsPublished: enrollment.Course.IsPublished,
			CourseInfo:  enrollment.Course.CourseInfo.Data(),
			CreatedAt:   enrollment.Course.CreatedAt,
			Progress:    progressPercent(enrollment.ProgressCounter, enrollment.Course.MaterialCount),
		})
	}
	return courses, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
