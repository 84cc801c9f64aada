package dto

import "time"

// RegistrationResponseDTO confirms a successful enrollment
type RegistrationResponseDTO struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	CourseID  string    `json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MyRegistrationDTO is a registration joined with its course details
type MyRegistrationDTO struct {
	ID              string    `json:"id"`
	CourseID        string    `json:"course_id"`
	CourseCode      string    `json:"course_code"`
	CourseTitle     string    `json:"course_title"`
	InstructorEmail string    `json:"instructor_email"`
	Seats           int       `json:"seats"`
	CreatedAt       time.Time `json:"created_at"`
}

// RegistrationCountDTO reports the total number of registrations
type RegistrationCountDTO struct {
	Count int `json:"count"`
}
