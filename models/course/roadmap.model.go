package course

import "gorm.io/gorm"

// RoadMap groups courses in a recommended order
type RoadMap struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	IsDeleted   bool   `gorm:"default:false"`
}

// RoadmapMapper links a course into a roadmap
type RoadmapMapper struct {
	gorm.Model
	RoadmapID  uint `json:"roadmap_id" gorm:"index;not null"`
	CourseID   uint `json:"course_id" gorm:"index;not null"`
	OrderIndex int  `json:"order_index" gorm:"default:0"`
}

// RoadmapEnrollment binds a user to a roadmap
type RoadmapEnrollment struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"index;not null"`
	RoadmapID uint `json:"roadmap_id" gorm:"index;not null"`
	IsDeleted bool `gorm:"default:false"`
}

// CareerPath groups roadmaps one level up, using the same mapper pattern
type CareerPath struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	IsDeleted   bool   `gorm:"default:false"`
}

// CareerPathMapper links a roadmap into a career path
type CareerPathMapper struct {
	gorm.Model
	CareerPathID uint `json:"career_path_id" gorm:"index;not null"`
	RoadmapID    uint `json:"roadmap_id" gorm:"index;not null"`
	OrderIndex   int  `json:"order_index" gorm:"default:0"`
}

// CareerEnrollment binds a user to a career path
type CareerEnrollment struct {
	gorm.Model
	UserID       uint `json:"user_id" gorm:"index;not null"`
	CareerPathID uint `json:"career_path_id" gorm:"index;not null"`
	IsDeleted    bool `gorm:"default:false"`
}
