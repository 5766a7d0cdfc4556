package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MaterialType discriminates the concrete table a MaterialMapper row points at
type MaterialType string

const (
	MaterialTypeVideo     MaterialType = "VIDEO"
	MaterialTypeQuiz      MaterialType = "QUIZ"
	MaterialTypeQuizGroup MaterialType = "QUIZ_GROUP"
	MaterialTypeArticle   MaterialType = "ARTICLE"
	MaterialTypeResource  MaterialType = "RESOURCE"
)

// MaterialRecord is implemented by every concrete material variant. The set of
// implementations is closed: Video, Quiz, QuizGroup, Article and Resource.
type MaterialRecord interface {
	RecordID() uint
	RecordType() MaterialType
	RecordDuration() int64 // seconds; zero for quizzes and quiz groups
}

// Video is a video material
type Video struct {
	gorm.Model
	URL       string `json:"url"`
	Duration  int64  `json:"duration" gorm:"default:0"` // seconds
	IsDeleted bool   `gorm:"default:false"`
}

func (v *Video) RecordID() uint { return v.ID }
func (v *Video) RecordType() MaterialType { return MaterialTypeVideo }
func (v *Video) RecordDuration() int64 { return v.Duration }

// Quiz is a single multiple-choice question. Options always holds exactly
// four entries; the request validator enforces that shape.
type Quiz struct {
	gorm.Model
	Question      string                      `json:"question" gorm:"type:text"`
	Options       datatypes.JSONSlice[string] `json:"options"`
	CorrectAnswer string                      `json:"correctAnswer"`
	Explanation   string                      `json:"explanation" gorm:"type:text"`
	IsDeleted     bool                        `gorm:"default:false"`
}

func (q *Quiz) RecordID() uint { return q.ID }
func (q *Quiz) RecordType() MaterialType { return MaterialTypeQuiz }
func (q *Quiz) RecordDuration() int64 { return 0 }

// QuizGroup bundles quizzes into one material; items keep their own order
type QuizGroup struct {
	gorm.Model
	Title     string          `json:"title"`
	Items     []QuizGroupItem `json:"items" gorm:"foreignKey:QuizGroupID"`
	IsDeleted bool            `gorm:"default:false"`
}

func (g *QuizGroup) RecordID() uint { return g.ID }
func (g *QuizGroup) RecordType() MaterialType { return MaterialTypeQuizGroup }
func (g *QuizGroup) RecordDuration() int64 { return 0 }

// QuizGroupItem links a quiz into a quiz group with sibling order
type QuizGroupItem struct {
	gorm.Model
	QuizGroupID uint `json:"quiz_group_id" gorm:"index;not null"`
	QuizID      uint `json:"quiz_id" gorm:"index;not null"`
	OrderIndex  int  `json:"order_index" gorm:"default:0"`
	Quiz        Quiz `json:"quiz" gorm:"foreignKey:QuizID"`
}

// ArticleSegment is one ordered block of article content
type ArticleSegment struct {
	Kind    string `json:"kind"` // paragraph, heading, code, image
	Content string `json:"content"`
}

// Article is a text material composed of ordered segments
type Article struct {
	gorm.Model
	Title     string                               `json:"title"`
	Segments  datatypes.JSONType[[]ArticleSegment] `json:"data"`
	Duration  int64                                `json:"duration" gorm:"default:0"` // estimated reading time, seconds
	IsDeleted bool                                 `gorm:"default:false"`
}

func (a *Article) RecordID() uint { return a.ID }
func (a *Article) RecordType() MaterialType { return MaterialTypeArticle }
func (a *Article) RecordDuration() int64 { return a.Duration }

// Resource is an external link or inline document material
type Resource struct {
	gorm.Model
	Title     string `json:"title"`
	Kind      string `json:"kind" gorm:"default:'link'"` // video, document, link, code
	URL       string `json:"url"`
	Content   string `json:"content" gorm:"type:text"`
	Duration  int64  `json:"duration" gorm:"default:0"`
	IsDeleted bool   `gorm:"default:false"`
}

func (r *Resource) RecordID() uint { return r.ID }
func (r *Resource) RecordType() MaterialType { return MaterialTypeResource }
func (r *Resource) RecordDuration() int64 { return r.Duration }
