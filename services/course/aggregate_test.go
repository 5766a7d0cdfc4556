package courseService

import (
	"testing"

	courseModels "madrasa/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachMaterialRecomputesModuleDuration(t *testing.T) {
	db := setupTestDB(t)

	course := createTestCourse(t, db, "Go Basics", 0)
	module := createTestModule(t, db, "Intro")
	lesson := createTestLesson(t, db, "Lesson 1")

	_, err := AttachModule(db, course.ID, module.ID, 1)
	require.NoError(t, err)
	_, err = AttachLesson(db, module.ID, lesson.ID, 1)
	require.NoError(t, err)

	video := createTestVideo(t, db, 120)
	quiz := createTestQuiz(t, db, "Check")

	_, err = AttachMaterial(db, lesson.ID, video.ID, courseModels.MaterialTypeVideo, 1)
	require.NoError(t, err)
	_, err = AttachMaterial(db, lesson.ID, quiz.ID, courseModels.MaterialTypeQuiz, 2)
	require.NoError(t, err)

	// quizzes contribute zero duration but still count as materials
	assert.Equal(t, int64(120), reloadModule(t, db, module.ID).Duration)
	assert.Equal(t, 2, reloadCourse(t, db, course.ID).MaterialCount)
}

func TestDetachMaterialRecomputes(t *testing.T) {
	db := setupTestDB(t)

	course, lesson := buildCourseWithVideos(t, db, 3, 100)
	require.Equal(t, 3, reloadCourse(t, db, course.ID).MaterialCount)

	var mapper courseModels.MaterialMapper
	require.NoError(t, db.Where("lesson_id = ?", lesson.ID).First(&mapper).Error)

	require.NoError(t, DetachMaterial(db, lesson.ID, mapper.MaterialID, courseModels.MaterialTypeVideo))

	course = reloadCourse(t, db, course.ID)
	assert.Equal(t, 2, course.MaterialCount)
}

func TestDetachLessonRecomputes(t *testing.T) {
	db := setupTestDB(t)

	course := createTestCourse(t, db, "Go Basics", 0)
	module := createTestModule(t, db, "Intro")
	lessonA := createTestLesson(t, db, "Lesson A")
	lessonB := createTestLesson(t, db, "Lesson B")

	_, err := AttachModule(db, course.ID, module.ID, 1)
	require.NoError(t, err)
	_, err = AttachLesson(db, module.ID, lessonA.ID, 1)
	require.NoError(t, err)
	_, err = AttachLesson(db, module.ID, lessonB.ID, 2)
	require.NoError(t, err)

	videoA := createTestVideo(t, db, 100)
	videoB := createTestVideo(t, db, 200)
	_, err = AttachMaterial(db, lessonA.ID, videoA.ID, courseModels.MaterialTypeVideo, 1)
	require.NoError(t, err)
	_, err = AttachMaterial(db, lessonB.ID, videoB.ID, courseModels.MaterialTypeVideo, 1)
	require.NoError(t, err)

	require.Equal(t, int64(300), reloadModule(t, db, module.ID).Duration)
	require.Equal(t, 2, reloadCourse(t, db, course.ID).MaterialCount)

	require.NoError(t, DetachLesson(db, module.ID, lessonB.ID))

	assert.Equal(t, int64(100), reloadModule(t, db, module.ID).Duration)
	assert.Equal(t, 1, reloadCourse(t, db, course.ID).MaterialCount)
}

func TestAttachModuleWithExistingContent(t *testing.T) {
	db := setupTestDB(t)

	// module already carries a lesson with materials before joining the course
	module := createTestModule(t, db, "Prebuilt")
	lesson := createTestLesson(t, db, "Lesson")
	_, err := AttachLesson(db, module.ID, lesson.ID, 1)
	require.NoError(t, err)
	video := createTestVideo(t, db, 500)
	_, err = AttachMaterial(db, lesson.ID, video.ID, courseModels.MaterialTypeVideo, 1)
	require.NoError(t, err)

	course := createTestCourse(t, db, "Late Assembly", 0)
	_, err = AttachModule(db, course.ID, module.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, reloadCourse(t, db, course.ID).MaterialCount)
}

func TestSharedLessonCountsInBothModules(t *testing.T) {
	db := setupTestDB(t)

	course := createTestCourse(t, db, "Shared", 0)
	moduleA := createTestModule(t, db, "A")
	moduleB := createTestModule(t, db, "B")
	lesson := createTestLesson(t, db, "Common Lesson")

	_, err := AttachModule(db, course.ID, moduleA.ID, 1)
	require.NoError(t, err)
	_, err = AttachModule(db, course.ID, moduleB.ID, 2)
	require.NoError(t, err)
	_, err = AttachLesson(db, moduleA.ID, lesson.ID, 1)
	require.NoError(t, err)
	_, err = AttachLesson(db, moduleB.ID, lesson.ID, 1)
	require.NoError(t, err)

	video := createTestVideo(t, db, 60)
	_, err = AttachMaterial(db, lesson.ID, video.ID, courseModels.MaterialTypeVideo, 1)
	require.NoError(t, err)

	// the lesson is reachable twice, so its mapper row counts twice
	assert.Equal(t, 2, reloadCourse(t, db, course.ID).MaterialCount)
	assert.Equal(t, int64(60), reloadModule(t, db, moduleA.ID).Duration)
	assert.Equal(t, int64(60), reloadModule(t, db, moduleB.ID).Duration)
}

func TestAttachMaterialUnknownLesson(t *testing.T) {
	db := setupTestDB(t)

	video := createTestVideo(t, db, 60)
	_, err := AttachMaterial(db, 999, video.ID, courseModels.MaterialTypeVideo, 1)
	assert.ErrorIs(t, err, ErrLessonNotFound)
}

func TestAttachMaterialUnknownType(t *testing.T) {
	db := setupTestDB(t)

	lesson := createTestLesson(t, db, "Lesson")
	_, err := AttachMaterial(db, lesson.ID, 1, courseModels.MaterialType("PODCAST"), 1)
	assert.ErrorIs(t, err, ErrInvalidMaterialType)
}

func TestAttachModuleUnknownCourse(t *testing.T) {
	db := setupTestDB(t)

	module := createTestModule(t, db, "Orphan")
	_, err := AttachModule(db, 999, module.ID, 1)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestRecomputeEmptyScopes(t *testing.T) {
	db := setupTestDB(t)

	course := createTestCourse(t, db, "Empty", 0)
	module := createTestModule(t, db, "Empty Module")

	require.NoError(t, RecomputeModuleDuration(db, module.ID))
	require.NoError(t, RecomputeCourseMaterialCount(db, course.ID))

	assert.Zero(t, reloadModule(t, db, module.ID).Duration)
	assert.Zero(t, reloadCourse(t, db, course.ID).MaterialCount)
}
