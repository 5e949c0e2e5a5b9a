package model

// Teacher is the slot-capacity teacher profile.
type Teacher struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Rating             float64             `json:"rating"`
	Experience         int                 `json:"experience"`
	MaxStudentsPerSlot int                 `json:"max_students_per_slot"`
	AvailableSlots     []string            `json:"available_slots"`
	PreferredGrades    []int               `json:"preferred_grades"`
	CurrentStudents    map[string][]string `json:"current_students,omitempty"`
}

// SlotAvailability reports the remaining capacity of one slot.
type SlotAvailability struct {
	Slot      string `json:"slot"`
	Enrolled  int    `json:"enrolled"`
	OpenSeats int    `json:"open_seats"`
}

// OpenSeats returns the number of free places left in slot, never below zero.
// Capacity is informational; nothing rejects enrolment past it.
func (t Teacher) OpenSeats(slot string) int {
	open := t.MaxStudentsPerSlot - len(t.CurrentStudents[slot])
	if open < 0 {
		return 0
	}
	return open
}

// SlotSummary lists every offered slot with its enrolment, in slot order.
func (t Teacher) SlotSummary() []SlotAvailability {
	out := make([]SlotAvailability, 0, len(t.AvailableSlots))
	for _, slot := range t.AvailableSlots {
		out = append(out, SlotAvailability{
			Slot:      slot,
			Enrolled:  len(t.CurrentStudents[slot]),
			OpenSeats: t.OpenSeats(slot),
		})
	}
	return out
}

// TeacherCriteria narrows a teacher listing. A nil field means "no constraint".
type TeacherCriteria struct {
	Search        *string
	Grade         *int
	MinRating     *float64
	MinExperience *int
}

// TeacherQuery is the query-string form of TeacherCriteria.
type TeacherQuery struct {
	Search        *string  `form:"search" binding:"omitempty,max=100"`
	Grade         *int     `form:"grade" binding:"omitempty,min=1,max=12"`
	MinRating     *float64 `form:"min_rating" binding:"omitempty,min=0,max=5"`
	MinExperience *int     `form:"min_experience" binding:"omitempty,min=0,max=60"`
}

// Criteria converts the bound query into filter criteria.
func (q TeacherQuery) Criteria() TeacherCriteria {
	return TeacherCriteria{
		Search:        q.Search,
		Grade:         q.Grade,
		MinRating:     q.MinRating,
		MinExperience: q.MinExperience,
	}
}

// TeacherFacets lists the distinct values a teacher listing can be filtered by.
type TeacherFacets struct {
	Grades []int `json:"grades"`
}

// TeacherDetail is a teacher with computed slot availability.
type TeacherDetail struct {
	Teacher
	Availability []SlotAvailability `json:"availability"`
}
