package model

import (
	"time"

	"github.com/google/uuid"
)

// DemoGradeLevels are the grades a demo can be booked for.
var DemoGradeLevels = []string{
	"Grade 1", "Grade 2", "Grade 3", "Grade 4", "Grade 5",
	"Grade 6", "Grade 7", "Grade 8", "Grade 9", "Grade 10",
}

// DemoTimeSlots are the bookable demo start times.
var DemoTimeSlots = []string{
	"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM",
}

// DemoDateLayout is the wire format of PreferredDate.
const DemoDateLayout = "2006-01-02"

// DemoBooking is a persisted demo request.
type DemoBooking struct {
	ID               uuid.UUID `json:"id"`
	StudentName      string    `json:"student_name"`
	ParentEmail      string    `json:"parent_email"`
	StudentGrade     string    `json:"student_grade"`
	PreferredSubject string    `json:"preferred_subject"`
	PreferredDate    time.Time `json:"preferred_date"`
	PreferredTime    string    `json:"preferred_time"`
	CreatedAt        time.Time `json:"created_at"`
}

// CreateDemoBookingRequest is the payload of the demo booking form.
type CreateDemoBookingRequest struct {
	StudentName      string `json:"student_name" binding:"required,min=2,max=100"`
	ParentEmail      string `json:"parent_email" binding:"required,email,max=255"`
	StudentGrade     string `json:"student_grade" binding:"required,demo_grade"`
	PreferredSubject string `json:"preferred_subject" binding:"required,min=3,max=100"`
	PreferredDate    string `json:"preferred_date" binding:"required,notpast"`
	PreferredTime    string `json:"preferred_time" binding:"required,demo_slot"`
}

// DemoBookingConfirmation is returned once a booking has been accepted.
type DemoBookingConfirmation struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
}

// DemoBookingQuery pages through persisted bookings, optionally for one date.
type DemoBookingQuery struct {
	Page    int    `form:"page" binding:"omitempty,min=1"`
	PerPage int    `form:"per_page" binding:"omitempty,min=1,max=100"`
	Date    string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}
