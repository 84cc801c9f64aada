package model

import "time"

// Course is a catalog entry. Seats is the maximum number of concurrent
// registrations; zero means unlimited.
type Course struct {
	ID              string    `db:"id" json:"id"`
	Code            string    `db:"code" json:"code"`
	Title           string    `db:"title" json:"title"`
	Description     string    `db:"description" json:"description"`
	Seats           int       `db:"seats" json:"seats"`
	InstructorEmail string    `db:"instructor_email" json:"instructor_email"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
