package courseService

import "errors"

// Typed errors surfaced to the controllers. Aggregate staleness is never
// surfaced; it self-heals on the next structural write.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrCourseNotFound      = errors.New("course not found")
	ErrModuleNotFound      = errors.New("module not found")
	ErrLessonNotFound      = errors.New("lesson not found")
	ErrMaterialNotFound    = errors.New("material not found")
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
	ErrAlreadyEnrolled     = errors.New("user is already enrolled")
	ErrInvalidMaterialType = errors.New("invalid material type")
	ErrRoadmapNotFound     = errors.New("roadmap not found")
	ErrCareerPathNotFound  = errors.New("career path not found")
)

// errProgressConflict signals a lost compare-and-swap on the progress counter
var errProgressConflict = errors.New("progress counter conflict")
