package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"app/internal/model"
	"app/internal/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes mirroring the SQL implementations: uniqueness
// constraints, not-found sentinels and result ordering.

type fakeUserRepo struct {
	users map[string]*model.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *model.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.ID = uuid.New().String()
	u.CreatedAt = time.Now().UTC()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeCourseRepo struct {
	courses map[string]*model.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: map[string]*model.Course{}}
}

func (r *fakeCourseRepo) Create(ctx context.Context, c *model.Course) error {
	for _, existing := range r.courses {
		if existing.Code == c.Code {
			return repository.ErrDuplicate
		}
	}
	c.ID = uuid.New().String()
	c.CreatedAt = time.Now().UTC()
	cp := *c
	r.courses[c.ID] = &cp
	return nil
}

func (r *fakeCourseRepo) List(ctx context.Context) ([]model.Course, error) {
	out := []model.Course{}
	for _, c := range r.courses {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
	})
	return out, nil
}

func (r *fakeCourseRepo) GetByID(ctx context.Context, id string) (*model.Course, error) {
	if c, ok := r.courses[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeCourseRepo) Update(ctx context.Context, c *model.Course) (*model.Course, error) {
	existing, ok := r.courses[c.ID]
	if !ok {
		return nil, nil
	}
	for _, other := range r.courses {
		if other.ID != c.ID && other.Code == c.Code {
			return nil, repository.ErrDuplicate
		}
	}
	c.CreatedAt = existing.CreatedAt
	cp := *c
	r.courses[c.ID] = &cp
	return c, nil
}

func (r *fakeCourseRepo) Delete(ctx context.Context, id string) error {
	delete(r.courses, id)
	return nil
}

type fakeRegistrationRepo struct {
	regs []model.Registration
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{}
}

func (r *fakeRegistrationRepo) Create(ctx context.Context, studentID, courseID string) (*model.Registration, error) {
	for _, reg := range r.regs {
		if reg.StudentID == studentID && reg.CourseID == courseID {
			return nil, repository.ErrDuplicate
		}
	}
	reg := model.Registration{
		ID:        uuid.New().String(),
		StudentID: studentID,
		CourseID:  courseID,
		CreatedAt: time.Now().UTC(),
	}
	r.regs = append(r.regs, reg)
	return &reg, nil
}

func (r *fakeRegistrationRepo) CountByCourse(ctx context.Context, courseID string) (int, error) {
	count := 0
	for _, reg := range r.regs {
		if reg.CourseID == courseID {
			count++
		}
	}
	return count, nil
}

func (r *fakeRegistrationRepo) ListByStudent(ctx context.Context, studentID string) ([]model.StudentRegistration, error) {
	out := []model.StudentRegistration{}
	for _, reg := range r.regs {
		if reg.StudentID == studentID {
			out = append(out, model.StudentRegistration{Registration: reg})
		}
	}
	// Newest first, as the SQL implementation orders.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeRegistrationRepo) Count(ctx context.Context) (int, error) {
	return len(r.regs), nil
}
