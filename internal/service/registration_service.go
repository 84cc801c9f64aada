package service

import (
	"context"
	"errors"
	"fmt"

	"app/internal/apperror"
	"app/internal/model"
	"app/internal/repository"
)

// RegistrationService implements the capacity-checked enrollment workflow.
type RegistrationService interface {
	// Register enrolls a student in a course, subject to seat capacity.
	Register(ctx context.Context, studentID, courseID string) (*model.Registration, error)
	// MyRegistrations returns the student's registrations joined with
	// course details, newest first.
	MyRegistrations(ctx context.Context, studentID string) ([]model.StudentRegistration, error)
	// Count returns the total number of registrations across all courses.
	Count(ctx context.Context) (int, error)
}

type registrationService struct {
	courses       repository.CourseRepository
	registrations repository.RegistrationRepository
}

func NewRegistrationService(
	courses repository.CourseRepository,
	registrations repository.RegistrationRepository,
) RegistrationService {
	return &registrationService{courses: courses, registrations: registrations}
}

// Register checks capacity and inserts the registration. The capacity check
// is advisory: it spans two statements, so two concurrent requests near the
// limit can both pass it. The uniqueness constraint on (student, course) is
// the hard guard, and only against duplicates.
func (s *registrationService) Register(ctx context.Context, studentID, courseID string) (*model.Registration, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Course not found")
		}
		return nil, fmt.Errorf("get course: %w", err)
	}

	// Seats == 0 means unlimited; skip the capacity check entirely.
	if course.Seats > 0 {
		count, err := s.registrations.CountByCourse(ctx, courseID)
		if err != nil {
			return nil, fmt.Errorf("count registrations: %w", err)
		}
		if count >= course.Seats {
			return nil, apperror.Capacity("No seats left")
		}
	}

	reg, err := s.registrations.Create(ctx, studentID, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("Already registered")
		}
		return nil, fmt.Errorf("insert registration: %w", err)
	}
	return reg, nil
}

func (s *registrationService) MyRegistrations(ctx context.Context, studentID string) ([]model.StudentRegistration, error) {
	return s.registrations.ListByStudent(ctx, studentID)
}

func (s *registrationService) Count(ctx context.Context) (int, error) {
	return s.registrations.Count(ctx)
}
