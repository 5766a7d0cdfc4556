package courseService

import (
	"fmt"

	"madrasa/models"
	courseModels "madrasa/models/course"

	"gorm.io/gorm"
)

// Roadmaps group courses and career paths group roadmaps, both through the
// same ordered-mapper pattern the course tree uses one level down.

// RoadmapDetails is a roadmap with its mapper-ordered course trees
type RoadmapDetails struct {
	courseModels.RoadMap
	IsEnrolled bool             `json:"is_enrolled"`
	Courses    []*CourseDetails `json:"courses"`
}

// CareerPathDetails is a career path with its mapper-ordered roadmaps
type CareerPathDetails struct {
	courseModels.CareerPath
	IsEnrolled bool              `json:"is_enrolled"`
	Roadmaps   []*RoadmapDetails `json:"roadmaps"`
}

// CreateRoadmap creates a roadmap and links the given courses in order,
// all in one transaction. A missing course aborts the whole creation.
func CreateRoadmap(db *gorm.DB, title, description string, courseIDs []uint) (*courseModels.RoadMap, error) {
	roadmap := courseModels.RoadMap{Title: title, Description: description}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&roadmap).Error; err != nil {
			return fmt.Errorf("create roadmap: %w", err)
		}
		for i, courseID := range courseIDs {
			var course courseModels.Course
			if err := tx.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
				return fmt.Errorf("course %d: %w", courseID, ErrCourseNotFound)
			}
			mapper := courseModels.RoadmapMapper{
				RoadmapID:  roadmap.ID,
				CourseID:   courseID,
				OrderIndex: i + 1,
			}
			if err := tx.Create(&mapper).Error; err != nil {
				return fmt.Errorf("create roadmap mapper: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &roadmap, nil
}

// GetRoadmapDetails resolves the roadmap's courses in mapper order, each as a
// full course tree with the user's enrollment state
func GetRoadmapDetails(db *gorm.DB, roadmapID, userID uint) (*RoadmapDetails, error) {
	var roadmap courseModels.RoadMap
	if err := db.Where("id = ? AND is_deleted = ?", roadmapID, false).First(&roadmap).Error; err != nil {
		return nil, ErrRoadmapNotFound
	}

	var mappers []courseModels.RoadmapMapper
	if err := db.Where("roadmap_id = ?", roadmapID).Order("order_index asc, id asc").Find(&mappers).Error; err != nil {
		return nil, fmt.Errorf("fetch roadmap mappers: %w", err)
	}

	courses := make([]*CourseDetails, 0, len(mappers))
	for _, mapper := range mappers {
		details, err := GetCourseDetails(db, mapper.CourseID, userID)
		if err == ErrCourseNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		courses = append(courses, details)
	}

	return &RoadmapDetails{
		RoadMap:    roadmap,
		IsEnrolled: isEnrolledInRoadmap(db, userID, roadmapID),
		Courses:    courses,
	}, nil
}

// EnrollRoadmap binds the user to a roadmap
func EnrollRoadmap(db *gorm.DB, userID, roadmapID uint) (*courseModels.RoadmapEnrollment, error) {
	var roadmap courseModels.RoadMap
	if err := db.Where("id = ? AND is_deleted = ?", roadmapID, false).First(&roadmap).Error; err != nil {
		return nil, ErrRoadmapNotFound
	}
	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}
	if isEnrolledInRoadmap(db, userID, roadmapID) {
		return nil, ErrAlreadyEnrolled
	}

	enrollment := courseModels.RoadmapEnrollment{UserID: userID, RoadmapID: roadmapID}
	if err := db.Create(&enrollment).Error; err != nil {
		return nil, fmt.Errorf("create roadmap enrollment: %w", err)
	}
	return &enrollment, nil
}

// CreateCareerPath creates a career path and links the given roadmaps in
// order, all in one transaction
func CreateCareerPath(db *gorm.DB, title, description string, roadmapIDs []uint) (*courseModels.CareerPath, error) {
	careerPath := courseModels.CareerPath{Title: title, Description: description}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&careerPath).Error; err != nil {
			return fmt.Errorf("create career path: %w", err)
		}
		for i, roadmapID := range roadmapIDs {
			var roadmap courseModels.RoadMap
			if err := tx.Where("id = ? AND is_deleted = ?", roadmapID, false).First(&roadmap).Error; err != nil {
				return fmt.Errorf("roadmap %d: %w", roadmapID, ErrRoadmapNotFound)
			}
			mapper := courseModels.CareerPathMapper{
				CareerPathID: careerPath.ID,
				RoadmapID:    roadmapID,
				OrderIndex:   i + 1,
			}
			if err := tx.Create(&mapper).Error; err != nil {
				return fmt.Errorf("create career path mapper: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &careerPath, nil
}

// GetCareerPathDetails resolves the career path's roadmaps in mapper order
func GetCareerPathDetails(db *gorm.DB, careerPathID, userID uint) (*CareerPathDetails, error) {
	var careerPath courseModels.CareerPath
	if err := db.Where("id = ? AND is_deleted = ?", careerPathID, false).First(&careerPath).Error; err != nil {
		return nil, ErrCareerPathNotFound
	}

	var mappers []courseModels.CareerPathMapper
	if err := db.Where("career_path_id = ?", careerPathID).Order("order_index asc, id asc").Find(&mappers).Error; err != nil {
		return nil, fmt.Errorf("fetch career path mappers: %w", err)
	}

	roadmaps := make([]*RoadmapDetails, 0, len(mappers))
	for _, mapper := range mappers {
		details, err := GetRoadmapDetails(db, mapper.RoadmapID, userID)
		if err == ErrRoadmapNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		roadmaps = append(roadmaps, details)
	}

	var enrollment courseModels.CareerEnrollment
	enrolled := db.Where("user_id = ? AND career_path_id = ? AND is_deleted = ?", userID, careerPathID, false).
		First(&enrollment).Error == nil

	return &CareerPathDetails{
		CareerPath: careerPath,
		IsEnrolled: enrolled,
		Roadmaps:   roadmaps,
	}, nil
}

// EnrollCareerPath binds the user to a career path
func EnrollCareerPath(db *gorm.DB, userID, careerPathID uint) (*courseModels.CareerEnrollment, error) {
	var careerPath courseModels.CareerPath
	if err := db.Where("id = ? AND is_deleted = ?", careerPathID, false).First(&careerPath).Error; err != nil {
		return nil, ErrCareerPathNotFound
	}
	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}
	var existing courseModels.CareerEnrollment
	err := db.Where("user_id = ? AND career_path_id = ? AND is_deleted = ?", userID, careerPathID, false).
		First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyEnrolled
	}

	enrollment := courseModels.CareerEnrollment{UserID: userID, CareerPathID: careerPathID}
	if err := db.Create(&enrollment).Error; err != nil {
		return nil, fmt.Errorf("create career enrollment: %w", err)
	}
	return &enrollment, nil
}

func isEnrolledInRoadmap(db *gorm.DB, userID, roadmapID uint) bool {
	var enrollment courseModels.RoadmapEnrollment
	return db.Where("user_id = ? AND roadmap_id = ? AND is_deleted = ?", userID, roadmapID, false).
		First(&enrollment).Error == nil
}
