package courseService

import (
	"testing"

	courseModels "madrasa/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoadmapKeepsCourseOrder(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "a@example.com")
	first, _ := buildCourseWithVideos(t, db, 1, 60)
	second, _ := buildCourseWithVideos(t, db, 1, 60)

	roadmap, err := CreateRoadmap(db, "Backend Path", "from zero", []uint{second.ID, first.ID})
	require.NoError(t, err)

	details, err := GetRoadmapDetails(db, roadmap.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, details.Courses, 2)
	assert.Equal(t, second.ID, details.Courses[0].ID)
	assert.Equal(t, first.ID, details.Courses[1].ID)
	assert.False(t, details.IsEnrolled)
}

func TestCreateRoadmapMissingCourseAborts(t *testing.T) {
	db := setupTestDB(t)

	course, _ := buildCourseWithVideos(t, db, 1, 60)

	_, err := CreateRoadmap(db, "Broken", "", []uint{course.ID, 999})
	assert.ErrorIs(t, err, ErrCourseNotFound)

	// the transaction rolled back, nothing was written
	var count int64
	require.NoError(t, db.Model(&courseModels.RoadMap{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&courseModels.RoadmapMapper{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEnrollRoadmap(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "a@example.com")
	course, _ := buildCourseWithVideos(t, db, 1, 60)
	roadmap, err := CreateRoadmap(db, "Path", "", []uint{course.ID})
	require.NoError(t, err)

	_, err = EnrollRoadmap(db, user.ID, roadmap.ID)
	require.NoError(t, err)

	_, err = EnrollRoadmap(db, user.ID, roadmap.ID)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	details, err := GetRoadmapDetails(db, roadmap.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, details.IsEnrolled)
}

func TestEnrollRoadmapUnknown(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "a@example.com")
	_, err := EnrollRoadmap(db, user.ID, 999)
	assert.ErrorIs(t, err, ErrRoadmapNotFound)
}

func TestRoadmapDetailsSkipDeletedCourse(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "a@example.com")
	kept, _ := buildCourseWithVideos(t, db, 1, 60)
	dropped, _ := buildCourseWithVideos(t, db, 1, 60)

	roadmap, err := CreateRoadmap(db, "Path", "", []uint{kept.ID, dropped.ID})
	require.NoError(t, err)

	require.NoError(t, db.Model(&courseModels.Course{}).Where("id = ?", dropped.ID).
		Update("is_deleted", true).Error)

	details, err := GetRoadmapDetails(db, roadmap.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, details.Courses, 1)
	assert.Equal(t, kept.ID, details.Courses[0].ID)
}

func TestCareerPathResolvesRoadmaps(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "a@example.com")
	course, _ := buildCourseWithVideos(t, db, 1, 60)

	roadmapA, err := CreateRoadmap(db, "Step One", "", []uint{course.ID})
	require.NoError(t, err)
	roadmapB, err := CreateRoadmap(db, "Step Two", "", []uint{course.ID})
	require.NoError(t, err)

	careerPath, err := CreateCareerPath(db, "Backend Engineer", "", []uint{roadmapA.ID, roadmapB.ID})
	require.NoError(t, err)

	details, err := GetCareerPathDetails(db, careerPath.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, details.Roadmaps, 2)
	assert.Equal(t, "Step One", details.Roadmaps[0].Title)
	assert.Equal(t, "Step Two", details.Roadmaps[1].Title)

	_, err = EnrollCareerPath(db, user.ID, careerPath.ID)
	require.NoError(t, err)
	_, err = EnrollCareerPath(db, user.ID, careerPath.ID)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
}

func TestCreateCareerPathMissingRoadmapAborts(t *testing.T) {
	db := setupTestDB(t)

	course, _ := buildCourseWithVideos(t, db, 1, 60)
	roadmap, err := CreateRoadmap(db, "Step", "", []uint{course.ID})
	require.NoError(t, err)

	_, err = CreateCareerPath(db, "Broken", "", []uint{roadmap.ID, 999})
	assert.ErrorIs(t, err, ErrRoadmapNotFound)

	var count int64
	require.NoError(t, db.Model(&courseModels.CareerPath{}).Count(&count).Error)
	assert.Zero(t, count)
}
