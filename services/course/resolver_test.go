package courseService

import (
	"testing"

	courseModels "madrasa/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLessonMaterialsOrdersAcrossTypes(t *testing.T) {
	db := setupTestDB(t)

	lesson := createTestLesson(t, db, "Mixed Lesson")
	video := createTestVideo(t, db, 120)
	quiz := createTestQuiz(t, db, "Pick one")
	article := createTestArticle(t, db, "Read me", 300)

	// attach out of order; the mapper order index decides presentation
	_, err := AttachMaterial(db, lesson.ID, quiz.ID, courseModels.MaterialTypeQuiz, 2)
	require.NoError(t, err)
	_, err = AttachMaterial(db, lesson.ID, article.ID, courseModels.MaterialTypeArticle, 3)
	require.NoError(t, err)
	_, err = AttachMaterial(db, lesson.ID, video.ID, courseModels.MaterialTypeVideo, 1)
	require.NoError(t, err)

	materials, err := ResolveLessonMaterials(db, lesson.ID)
	require.NoError(t, err)
	require.Len(t, materials, 3)

	assert.Equal(t, courseModels.MaterialTypeVideo, materials[0].Type)
	assert.Equal(t, courseModels.MaterialTypeQuiz, materials[1].Type)
	assert.Equal(t, courseModels.MaterialTypeArticle, materials[2].Type)
	assert.Equal(t, video.ID, materials[0].Material.RecordID())
}

func TestResolveLessonMaterialsSkipsDeletedMaterial(t *testing.T) {
	db := setupTestDB(t)

	lesson := createTestLesson(t, db, "Lesson")
	video := createTestVideo(t, db, 120)
	article := createTestArticle(t, db, "Read me", 300)

	_, err := AttachMaterial(db, lesson.ID, video.ID, courseModels.MaterialTypeVideo, 1)
	require.NoError(t, err)
	_, err = AttachMaterial(db, lesson.ID, article.ID, courseModels.MaterialTypeArticle, 2)
	require.NoError(t, err)

	require.NoError(t, db.Model(video).Update("is_deleted", true).Error)

	materials, err := ResolveLessonMaterials(db, lesson.ID)
	require.NoError(t, err)
	require.Len(t, materials, 1)
	assert.Equal(t, article.ID, materials[0].Material.RecordID())
}

func TestResolveCourseModulesOrdered(t *testing.T) {
	db := setupTestDB(t)

	course := createTestCourse(t, db, "Go Basics", 0)
	first := createTestModule(t, db, "Intro")
	second := createTestModule(t, db, "Advanced")

	_, err := AttachModule(db, course.ID, second.ID, 2)
	require.NoError(t, err)
	_, err = AttachModule(db, course.ID, first.ID, 1)
	require.NoError(t, err)

	modules, err := ResolveCourseModules(db, course.ID)
	require.NoError(t, err)
	require.Len(t, modules, 2)
	assert.Equal(t, "Intro", modules[0].Title)
	assert.Equal(t, "Advanced", modules[1].Title)
}

func TestGetCourseDetailsNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := GetCourseDetails(db, 42, 1)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestGetCourseDetailsForEnrolledUser(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "student@example.com")
	course, lesson := buildCourseWithVideos(t, db, 4, 900)

	_, err := Enroll(db, user.ID, course.ID)
	require.NoError(t, err)

	var mapper courseModels.MaterialMapper
	require.NoError(t, db.Where("lesson_id = ?", lesson.ID).Order("order_index asc").First(&mapper).Error)
	_, err = RecordProgress(db, user.ID, course.ID, mapper.MaterialID)
	require.NoError(t, err)

	details, err := GetCourseDetails(db, course.ID, user.ID)
	require.NoError(t, err)

	assert.True(t, details.IsEnrolled)
	assert.Equal(t, 25, details.Progress)
	require.NotNil(t, details.CurrentMaterial)
	assert.Equal(t, mapper.MaterialID, *details.CurrentMaterial)
	assert.Equal(t, int64(1), details.DurationHours) // 3600 seconds stored
	require.Len(t, details.Modules, 1)
	require.Len(t, details.Modules[0].Lessons, 1)
	assert.Len(t, details.Modules[0].Lessons[0].Materials, 4)
}

func TestGetCourseDetailsForStranger(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "stranger@example.com")
	course, _ := buildCourseWithVideos(t, db, 2, 60)

	details, err := GetCourseDetails(db, course.ID, user.ID)
	require.NoError(t, err)

	assert.False(t, details.IsEnrolled)
	assert.Zero(t, details.Progress)
	assert.Nil(t, details.CurrentMaterial)
}
