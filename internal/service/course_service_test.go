package service

import (
	"context"
	"testing"

	"app/internal/apperror"
	"app/internal/model"

	"github.com/stretchr/testify/require"
)

func TestCreateCourseValidation(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())

	_, err := svc.Create(context.Background(), &model.Course{Title: "Algorithms"})
	ae, ok := apperror.As(err)
	require.True(t, ok)
	require.Equal(t, 400, ae.Status)

	_, err = svc.Create(context.Background(), &model.Course{Code: "CS101"})
	_, ok = apperror.As(err)
	require.True(t, ok)
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())

	_, err := svc.Create(context.Background(), &model.Course{Code: "CS101", Title: "Algorithms", Seats: 30})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &model.Course{Code: "CS101", Title: "Other", Seats: 30})
	ae, ok := apperror.As(err)
	require.True(t, ok)
	require.Equal(t, "Course code exists", ae.Message)
}

func TestListOrdersCaseInsensitively(t *testing.T) {
	repo := newFakeCourseRepo()
	svc := NewCourseService(repo)

	for _, title := range []string{"databases", "Algorithms", "compilers"} {
		_, err := svc.Create(context.Background(), &model.Course{Code: "C-" + title, Title: title, Seats: 30})
		require.NoError(t, err)
	}

	courses, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 3)
	require.Equal(t, "Algorithms", courses[0].Title)
	require.Equal(t, "compilers", courses[1].Title)
	require.Equal(t, "databases", courses[2].Title)
}

func TestUpdateAbsentCourseIsSilentNoOp(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())

	updated, err := svc.Update(context.Background(), &model.Course{ID: "missing", Code: "CS101", Title: "Algorithms"})
	require.NoError(t, err)
	require.Nil(t, updated)
}

func TestUpdateReplacesAllFields(t *testing.T) {
	repo := newFakeCourseRepo()
	svc := NewCourseService(repo)

	created, err := svc.Create(context.Background(), &model.Course{
		Code: "CS101", Title: "Algorithms", Description: "Old", Seats: 30, InstructorEmail: "x@example.com",
	})
	require.NoError(t, err)

	// Full-replace semantics: unsupplied fields arrive as zero values and
	// overwrite, they are not merged.
	updated, err := svc.Update(context.Background(), &model.Course{ID: created.ID, Code: "CS102", Title: "Algorithms II"})
	require.NoError(t, err)
	require.Equal(t, "CS102", updated.Code)
	require.Empty(t, updated.Description)
	require.Zero(t, updated.Seats)
	require.Empty(t, updated.InstructorEmail)
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := newFakeCourseRepo()
	svc := NewCourseService(repo)

	created, err := svc.Create(context.Background(), &model.Course{Code: "CS101", Title: "Algorithms", Seats: 30})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	require.NoError(t, svc.Delete(context.Background(), created.ID))
	require.NoError(t, svc.Delete(context.Background(), "never-existed"))
}
