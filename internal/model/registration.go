package model

import "time"

// Registration joins a student to a course. The (student, course) pair is
// unique at the storage layer; that constraint is the hard guard against
// double registration.
type Registration struct {
	ID        string    `db:"id" json:"id"`
	StudentID string    `db:"student_id" json:"student_id"`
	CourseID  string    `db:"course_id" json:"course_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// StudentRegistration is a registration joined with the course it refers to,
// as returned by the my-registrations listing.
type StudentRegistration struct {
	Registration
	CourseCode      string `db:"code" json:"course_code"`
	CourseTitle     string `db:"title" json:"course_title"`
	InstructorEmail string `db:"instructor_email" json:"instructor_email"`
	Seats           int    `db:"seats" json:"seats"`
}
