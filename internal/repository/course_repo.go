package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"app/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CourseRepository defines the interface for interacting with course data
type CourseRepository interface {
	Create(ctx context.Context, c *model.Course) error
	List(ctx context.Context) ([]model.Course, error)
	GetByID(ctx context.Context, id string) (*model.Course, error)
	// Update overwrites all mutable fields of the course. It returns
	// (nil, nil) when the id does not exist.
	Update(ctx context.Context, c *model.Course) (*model.Course, error)
	// Delete removes a course; deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
}

type courseRepo struct {
	db *pgxpool.Pool
}

// NewCourseRepo creates a new CourseRepository
func NewCourseRepo(db *pgxpool.Pool) CourseRepository {
	return &courseRepo{db: db}
}

// Create inserts a new course, assigning a generated UUID and creation time.
// A duplicate code yields ErrDuplicate.
func (r *courseRepo) Create(ctx context.Context, c *model.Course) error {
	c.ID = uuid.New().String()
	c.CreatedAt = time.Now().UTC()

	_, err := r.db.Exec(ctx,
		`INSERT INTO courses (id, code, title, description, seats, instructor_email, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Code, c.Title, c.Description, c.Seats, c.InstructorEmail, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

// List returns all courses ordered case-insensitively by title.
func (r *courseRepo) List(ctx context.Context) ([]model.Course, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, code, title, description, seats, instructor_email, created_at
		 FROM courses
		 ORDER BY lower(title) ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	courses := []model.Course{}
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Code, &c.Title, &c.Description, &c.Seats, &c.InstructorEmail, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *courseRepo) GetByID(ctx context.Context, id string) (*model.Course, error) {
	var c model.Course
	err := r.db.QueryRow(ctx,
		`SELECT id, code, title, description, seats, instructor_email, created_at
		 FROM courses WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Code, &c.Title, &c.Description, &c.Seats, &c.InstructorEmail, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get course: %w", err)
	}
	return &c, nil
}

// Update overwrites every mutable field with the supplied values. Updating
// an absent id returns (nil, nil) rather than an error.
func (r *courseRepo) Update(ctx context.Context, c *model.Course) (*model.Course, error) {
	err := r.db.QueryRow(ctx,
		`UPDATE courses
		 SET code = $1, title = $2, description = $3, seats = $4, instructor_email = $5
		 WHERE id = $6
		 RETURNING id, code, title, description, seats, instructor_email, created_at`,
		c.Code, c.Title, c.Description, c.Seats, c.InstructorEmail, c.ID,
	).Scan(&c.ID, &c.Code, &c.Title, &c.Description, &c.Seats, &c.InstructorEmail, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("update course: %w", err)
	}
	return c, nil
}

func (r *courseRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}
