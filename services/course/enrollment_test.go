package courseService

import (
	"testing"

	courseModels "madrasa/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func lessonMaterialIDs(t *testing.T, db *gorm.DB, lessonID uint) []uint {
	t.Helper()
	var ids []uint
	require.NoError(t, db.Model(&courseModels.MaterialMapper{}).
		Where("lesson_id = ?", lessonID).Order("order_index asc").
		Pluck("material_id", &ids).Error)
	return ids
}

func TestEnrollBumpsEnrolledCount(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "a@example.com")
	course, _ := buildCourseWithVideos(t, db, 2, 60)

	enrollment, err := Enroll(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.Zero(t, enrollment.ProgressCounter)
	assert.False(t, enrollment.IsFinished)

	assert.Equal(t, 1, reloadCourse(t, db, course.ID).EnrolledCount)
}

func TestEnrollTwiceRejected(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "a@example.com")
	course, _ := buildCourseWithVideos(t, db, 2, 60)

	_, err := Enroll(db, user.ID, course.ID)
	require.NoError(t, err)
	_, err = Enroll(db, user.ID, course.ID)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	// only the first enrollment counted
	assert.Equal(t, 1, reloadCourse(t, db, course.ID).EnrolledCount)
}

func TestEnrollUnknownUserOrCourse(t *testing.T) {
	db := setupTestDB(t)

	course, _ := buildCourseWithVideos(t, db, 1, 60)
	_, err := Enroll(db, 999, course.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	user := createTestUser(t, db, "a@example.com")
	_, err = Enroll(db, user.ID, 999)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestRecordProgressFinishesOnLastMaterial(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "a@example.com")
	course, lesson := buildCourseWithVideos(t, db, 4, 60)

	_, err := Enroll(db, user.ID, course.ID)
	require.NoError(t, err)

	ids := lessonMaterialIDs(t, db, lesson.ID)
	require.Len(t, ids, 4)

	for i, materialID := range ids {
		enrollment, err := RecordProgress(db, user.ID, course.ID, materialID)
		require.NoError(t, err)
		assert.Equal(t, i+1, enrollment.ProgressCounter)
		assert.Equal(t, i == 3, enrollment.IsFinished)
	}

	percent, err := ProgressPercent(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, percent)

	course = reloadCourse(t, db, course.ID)
	assert.Equal(t, 1, course.CompletionCount)

	var certificate courseModels.Certificate
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&certificate).Error)
	assert.NotEmpty(t, certificate.SerialNumber)
}

func TestRecordProgressAfterFinishIsNoop(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "a@example.com")
	course, lesson := buildCourseWithVideos(t, db, 1, 60)

	_, err := Enroll(db, user.ID, course.ID)
	require.NoError(t, err)

	ids := lessonMaterialIDs(t, db, lesson.ID)
	enrollment, err := RecordProgress(db, user.ID, course.ID, ids[0])
	require.NoError(t, err)
	require.True(t, enrollment.IsFinished)

	enrollment, err = RecordProgress(db, user.ID, course.ID, ids[0])
	require.NoError(t, err)
	assert.Equal(t, 1, enrollment.ProgressCounter)
	assert.True(t, enrollment.IsFinished)

	// completion side effects applied exactly once
	assert.Equal(t, 1, reloadCourse(t, db, course.ID).CompletionCount)
	var certificates int64
	require.NoError(t, db.Model(&courseModels.Certificate{}).
		Where("user_id = ?", user.ID).Count(&certificates).Error)
	assert.Equal(t, int64(1), certificates)
}

func TestRecordProgressCounterNeverExceedsMaterialCount(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "a@example.com")
	course, lesson := buildCourseWithVideos(t, db, 2, 60)

	_, err := Enroll(db, user.ID, course.ID)
	require.NoError(t, err)

	ids := lessonMaterialIDs(t, db, lesson.ID)
	for i := 0; i < 5; i++ {
		_, err = RecordProgress(db, user.ID, course.ID, ids[i%2])
		require.NoError(t, err)
	}

	enrollment, err := findActiveEnrollment(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, enrollment.ProgressCounter)
	assert.True(t, enrollment.IsFinished)
}

func TestRecordProgressWithoutEnrollment(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "a@example.com")
	course, lesson := buildCourseWithVideos(t, db, 1, 60)

	ids := lessonMaterialIDs(t, db, lesson.ID)
	_, err := RecordProgress(db, user.ID, course.ID, ids[0])
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)
}

func TestRecordProgressZeroMaterialCourse(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "a@example.com")
	course := createTestCourse(t, db, "Empty Course", 0)

	_, err := Enroll(db, user.ID, course.ID)
	require.NoError(t, err)

	// nothing to consume: the counter stays at zero and nothing finishes
	enrollment, err := RecordProgress(db, user.ID, course.ID, 1)
	require.NoError(t, err)
	assert.Zero(t, enrollment.ProgressCounter)

	percent, err := ProgressPercent(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.Zero(t, percent)
}

func TestCancelEnrollmentAllowsReenroll(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "a@example.com")
	course, _ := buildCourseWithVideos(t, db, 2, 60)

	_, err := Enroll(db, user.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, CancelEnrollment(db, user.ID, course.ID))

	// the cancelled row survives with its timestamp
	var cancelled courseModels.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&cancelled).Error)
	require.NotNil(t, cancelled.CancelledAt)

	_, err = RecordProgress(db, user.ID, course.ID, 1)
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)

	fresh, err := Enroll(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.Zero(t, fresh.ProgressCounter)
}

func TestCancelWithoutEnrollment(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "a@example.com")
	course, _ := buildCourseWithVideos(t, db, 1, 60)

	err := CancelEnrollment(db, user.ID, course.ID)
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)
}

func TestProgressPercentFloors(t *testing.T) {
	assert.Equal(t, 33, progressPercent(1, 3))
	assert.Equal(t, 66, progressPercent(2, 3))
	assert.Equal(t, 100, progressPercent(3, 3))
	assert.Equal(t, 0, progressPercent(0, 3))
	assert.Equal(t, 0, progressPercent(5, 0))
}
