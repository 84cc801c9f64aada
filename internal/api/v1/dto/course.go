package dto

import "time"

// CourseCreateDTO is used for incoming course creation requests. Seats is a
// pointer so an omitted value can fall back to the default capacity while an
// explicit zero means unlimited.
type CourseCreateDTO struct {
	Code            string  `json:"code" validate:"required"`
	Title           string  `json:"title" validate:"required"`
	Description     *string `json:"description,omitempty"`
	Seats           *int    `json:"seats,omitempty" validate:"omitempty,min=0"`
	InstructorEmail *string `json:"instructor_email,omitempty"`
}

// CourseUpdateDTO is used for incoming course update requests. Updates are a
// full replace: fields left out of the payload overwrite with their zero
// values rather than being merged.
type CourseUpdateDTO struct {
	Code            string `json:"code" validate:"required"`
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description"`
	Seats           int    `json:"seats" validate:"min=0"`
	InstructorEmail string `json:"instructor_email"`
}

// CourseResponseDTO is returned in API responses for courses
type CourseResponseDTO struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Seats           int       `json:"seats"`
	InstructorEmail string    `json:"instructor_email"`
	CreatedAt       time.Time `json:"created_at"`
}
