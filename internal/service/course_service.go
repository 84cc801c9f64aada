package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"app/internal/apperror"
	"app/internal/model"
	"app/internal/repository"
)

// DefaultSeats is the seat capacity applied when a course is created
// without one.
const DefaultSeats = 30

// CourseService defines the interface for course catalog operations
type CourseService interface {
	List(ctx context.Context) ([]model.Course, error)
	Create(ctx context.Context, c *model.Course) (*model.Course, error)
	// Update overwrites all mutable fields (full-replace semantics).
	// Updating an absent id returns (nil, nil), not an error.
	Update(ctx context.Context, c *model.Course) (*model.Course, error)
	// Delete is idempotent; deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*model.Course, error)
}

type courseService struct {
	repo repository.CourseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) List(ctx context.Context) ([]model.Course, error) {
	return s.repo.List(ctx)
}

func (s *courseService) Create(ctx context.Context, c *model.Course) (*model.Course, error) {
	c.Code = strings.TrimSpace(c.Code)
	c.Title = strings.TrimSpace(c.Title)
	if c.Code == "" || c.Title == "" {
		return nil, apperror.Validation("Code and title are required")
	}

	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("Course code exists")
		}
		return nil, fmt.Errorf("create course: %w", err)
	}
	return c, nil
}

func (s *courseService) Update(ctx context.Context, c *model.Course) (*model.Course, error) {
	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("Course code exists")
		}
		return nil, fmt.Errorf("update course: %w", err)
	}
	return updated, nil
}

func (s *courseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

func (s *courseService) GetByID(ctx context.Context, id string) (*model.Course, error) {
	return s.repo.GetByID(ctx, id)
}
