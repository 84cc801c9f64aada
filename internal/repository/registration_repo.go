package repository

import (
	"context"
	"fmt"
	"time"

	"app/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegistrationRepository handles persistence for registrations.
type RegistrationRepository interface {
	// Create inserts a (student, course) registration. A duplicate pair
	// yields ErrDuplicate via the storage-layer uniqueness constraint.
	Create(ctx context.Context, studentID, courseID string) (*model.Registration, error)
	CountByCourse(ctx context.Context, courseID string) (int, error)
	ListByStudent(ctx context.Context, studentID string) ([]model.StudentRegistration, error)
	Count(ctx context.Context) (int, error)
}

type registrationRepo struct {
	db *pgxpool.Pool
}

func NewRegistrationRepo(db *pgxpool.Pool) RegistrationRepository {
	return &registrationRepo{db: db}
}

func (r *registrationRepo) Create(ctx context.Context, studentID, courseID string) (*model.Registration, error) {
	reg := &model.Registration{
		ID:        uuid.New().String(),
		StudentID: studentID,
		CourseID:  courseID,
		CreatedAt: time.Now().UTC(),
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO registrations (id, student_id, course_id, created_at)
		 VALUES ($1, $2, $3, $4)`,
		reg.ID, reg.StudentID, reg.CourseID, reg.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("insert registration: %w", err)
	}
	return reg, nil
}

func (r *registrationRepo) CountByCourse(ctx context.Context, courseID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM registrations WHERE course_id = $1`,
		courseID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}
	return count, nil
}

// ListByStudent returns the student's registrations joined with course
// details, newest first.
func (r *registrationRepo) ListByStudent(ctx context.Context, studentID string) ([]model.StudentRegistration, error) {
	rows, err := r.db.Query(ctx,
		`SELECT reg.id, reg.student_id, reg.course_id, reg.created_at,
		        c.code, c.title, c.instructor_email, c.seats
		 FROM registrations reg
		 JOIN courses c ON c.id = reg.course_id
		 WHERE reg.student_id = $1
		 ORDER BY reg.created_at DESC`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	regs := []model.StudentRegistration{}
	for rows.Next() {
		var sr model.StudentRegistration
		if err := rows.Scan(
			&sr.ID, &sr.StudentID, &sr.CourseID, &sr.CreatedAt,
			&sr.CourseCode, &sr.CourseTitle, &sr.InstructorEmail, &sr.Seats,
		); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		regs = append(regs, sr)
	}
	return regs, rows.Err()
}

func (r *registrationRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count all registrations: %w", err)
	}
	return count, nil
}
