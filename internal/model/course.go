package model

// DeliveryType enumerates how a course is delivered.
type DeliveryType string

const (
	DeliveryLive     DeliveryType = "live"
	DeliveryRecorded DeliveryType = "recorded"
)

// TeacherRef is the teacher summary embedded in a course.
type TeacherRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	BioShort  string `json:"bio_short,omitempty"`
}

// Course represents a catalog course.
type Course struct {
	ID                 string       `json:"id"`
	Title              string       `json:"title"`
	Subject            string       `json:"subject"`
	AgeGroup           string       `json:"age_group"`
	Description        string       `json:"description"`
	ShortDescription   string       `json:"short_description,omitempty"`
	Schedule           string       `json:"schedule,omitempty"`
	Price              float64      `json:"price"`
	Type               DeliveryType `json:"type"`
	Duration           string       `json:"duration"`
	Teacher            TeacherRef   `json:"teacher"`
	Rating             float64      `json:"rating"`
	Reviews            int          `json:"reviews"`
	LearningObjectives []string     `json:"learning_objectives,omitempty"`
}

// CourseCriteria narrows a course listing. A nil field means "no constraint".
type CourseCriteria struct {
	Search    *string
	Subject   *string
	Teacher   *string
	MinRating *float64
	AgeGroup  *string
	MaxPrice  *float64
	Type      *DeliveryType
}

// CourseQuery is the query-string form of CourseCriteria.
type CourseQuery struct {
	Search    *string  `form:"search" binding:"omitempty,max=100"`
	Subject   *string  `form:"subject" binding:"omitempty,max=100"`
	Teacher   *string  `form:"teacher" binding:"omitempty,max=100"`
	MinRating *float64 `form:"min_rating" binding:"omitempty,min=0,max=5"`
	AgeGroup  *string  `form:"age_group" binding:"omitempty,max=20"`
	MaxPrice  *float64 `form:"max_price" binding:"omitempty,min=0"`
	Type      *string  `form:"type" binding:"omitempty,oneof=live recorded"`
}

// Criteria converts the bound query into filter criteria.
func (q CourseQuery) Criteria() CourseCriteria {
	c := CourseCriteria{
		Search:    q.Search,
		Subject:   q.Subject,
		Teacher:   q.Teacher,
		MinRating: q.MinRating,
		AgeGroup:  q.AgeGroup,
		MaxPrice:  q.MaxPrice,
	}
	if q.Type != nil {
		t := DeliveryType(*q.Type)
		c.Type = &t
	}
	return c
}

// CourseFacets lists the distinct values a course listing can be filtered by.
type CourseFacets struct {
	Subjects  []string `json:"subjects"`
	Teachers  []string `json:"teachers"`
	AgeGroups []string `json:"age_groups"`
}
