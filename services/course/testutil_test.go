package courseService

import (
	"fmt"
	"testing"

	"madrasa/models"
	courseModels "madrasa/models/course"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a per-test in-memory database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.Lesson{},
		&courseModels.Video{},
		&courseModels.Quiz{},
		&courseModels.QuizGroup{},
		&courseModels.QuizGroupItem{},
		&courseModels.Article{},
		&courseModels.Resource{},
		&courseModels.CourseMapper{},
		&courseModels.LessonMapper{},
		&courseModels.MaterialMapper{},
		&courseModels.Enrollment{},
		&courseModels.Certificate{},
		&courseModels.RoadMap{},
		&courseModels.RoadmapMapper{},
		&courseModels.RoadmapEnrollment{},
		&courseModels.CareerPath{},
		&courseModels.CareerPathMapper{},
		&courseModels.CareerEnrollment{},
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{
		Name:     "Test User",
		Email:    email,
		Role:     "USER",
		Password: "hashed",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestCourse(t *testing.T, db *gorm.DB, title string, durationSeconds int64) *courseModels.Course {
	t.Helper()
	course := courseModels.Course{
		Title:       title,
		Description: "A course about " + title,
		Level:       "BEGINNER",
		Topic:       "go",
		IsPublished: true,
		CourseInfo: datatypes.NewJSONType(courseModels.CourseInfo{
			DurationHours: durationSeconds,
			Tags:          []string{"go"},
		}),
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func createTestModule(t *testing.T, db *gorm.DB, title string) *courseModels.Module {
	t.Helper()
	module := courseModels.Module{Title: title}
	require.NoError(t, db.Create(&module).Error)
	return &module
}

func createTestLesson(t *testing.T, db *gorm.DB, name string) *courseModels.Lesson {
	t.Helper()
	lesson := courseModels.Lesson{Name: name}
	require.NoError(t, db.Create(&lesson).Error)
	return &lesson
}

func createTestVideo(t *testing.T, db *gorm.DB, duration int64) *courseModels.Video {
	t.Helper()
	video := courseModels.Video{URL: "https://cdn.example.com/v.mp4", Duration: duration}
	require.NoError(t, db.Create(&video).Error)
	return &video
}

func createTestQuiz(t *testing.T, db *gorm.DB, question string) *courseModels.Quiz {
	t.Helper()
	quiz := courseModels.Quiz{
		Question:      question,
		Options:       datatypes.NewJSONSlice([]string{"a", "b", "c", "d"}),
		CorrectAnswer: "a",
	}
	require.NoError(t, db.Create(&quiz).Error)
	return &quiz
}

func createTestArticle(t *testing.T, db *gorm.DB, title string, duration int64) *courseModels.Article {
	t.Helper()
	article := courseModels.Article{
		Title:    title,
		Duration: duration,
		Segments: datatypes.NewJSONType([]courseModels.ArticleSegment{
			{Kind: "paragraph", Content: "hello"},
		}),
	}
	require.NoError(t, db.Create(&article).Error)
	return &article
}

// buildCourseWithVideos wires course -> module -> lesson -> n videos through
// the attach path, so aggregates are already recomputed
func buildCourseWithVideos(t *testing.T, db *gorm.DB, n int, videoDuration int64) (*courseModels.Course, *courseModels.Lesson) {
	t.Helper()
	course := createTestCourse(t, db, "Go Basics", int64(n)*videoDuration)
	module := createTestModule(t, db, "Getting Started")
	lesson := createTestLesson(t, db, "Introduction")

	_, err := AttachModule(db, course.ID, module.ID, 1)
	require.NoError(t, err)
	_, err = AttachLesson(db, module.ID, lesson.ID, 1)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		video := createTestVideo(t, db, videoDuration)
		_, err = AttachMaterial(db, lesson.ID, video.ID, courseModels.MaterialTypeVideo, i+1)
		require.NoError(t, err)
	}
	return course, lesson
}

func reloadCourse(t *testing.T, db *gorm.DB, id uint) *courseModels.Course {
	t.Helper()
	var course courseModels.Course
	require.NoError(t, db.First(&course, id).Error)
	return &course
}

func reloadModule(t *testing.T, db *gorm.DB, id uint) *courseModels.Module {
	t.Helper()
	var module courseModels.Module
	require.NoError(t, db.First(&module, id).Error)
	return &module
}
