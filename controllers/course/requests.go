package controllers

// Request payloads shared between the validators and the admin controllers.
// Shape constraints are enforced by the validators; the services assume
// validated input.

type CourseInfoRequest struct {
	DurationHours   int64          `json:"durationHours" validate:"gte=0"`
	Tags            []string       `json:"tags"`
	NewSkills       []string       `json:"new_skills_result"`
	LearningOutcome map[string]int `json:"learning_outcome"`
	Prerequisites   []string       `json:"prerequisites"`
}

type CreateCourseRequest struct {
	Title       string            `json:"title" validate:"required,min=3"`
	Description string            `json:"description" validate:"required,min=5"`
	Level       string            `json:"level" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	Topic       string            `json:"topic" validate:"required"`
	CourseInfo  CourseInfoRequest `json:"course_info" validate:"required"`
}

// AttachRequest links a child into a parent at a sibling order. Order
// collisions are the writer's responsibility; they are not rejected here.
type AttachRequest struct {
	ParentID uint `json:"parent_id" validate:"required"`
	ChildID  uint `json:"child_id" validate:"required"`
	Order    int  `json:"order" validate:"gte=0"`
}

type CreateVideoRequest struct {
	URL      string `json:"url" validate:"required,url"`
	Duration int64  `json:"duration" validate:"gte=0"`
}

type CreateQuizRequest struct {
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"required,len=4,dive,required"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
	Explanation   string   `json:"explanation"`
}

type CreateQuizGroupRequest struct {
	Title   string `json:"title" validate:"required"`
	QuizIDs []uint `json:"quiz_ids" validate:"required,min=1"`
}

type ArticleSegmentRequest struct {
	Kind    string `json:"kind" validate:"required,oneof=paragraph heading code image"`
	Content string `json:"content" validate:"required"`
}

type CreateArticleRequest struct {
	Title    string                  `json:"title" validate:"required"`
	Segments []ArticleSegmentRequest `json:"data" validate:"required,min=1,dive"`
	Duration int64                   `json:"duration" validate:"gte=0"`
}

type CreateResourceRequest struct {
	Title    string `json:"title" validate:"required"`
	Kind     string `json:"kind" validate:"required,oneof=video document link code"`
	URL      string `json:"url" validate:"omitempty,url"`
	Content  string `json:"content"`
	Duration int64  `json:"duration" validate:"gte=0"`
}

// AttachMaterialRequest links a material into a lesson
type AttachMaterialRequest struct {
	LessonID     uint   `json:"lesson_id" validate:"required"`
	MaterialID   uint   `json:"material_id" validate:"required"`
	MaterialType string `json:"material_type" validate:"required"`
	Order        int    `json:"order" validate:"gte=0"`
}

type CreateRoadmapRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description"`
	CourseIDs   []uint `json:"course_ids" validate:"required,min=1"`
}

type CreateCareerPathRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description"`
	RoadmapIDs  []uint `json:"roadmap_ids" validate:"required,min=1"`
}
