package handler

import (
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/middleware"
	"app/internal/model"
	"app/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CourseHandler handles course catalog endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, v *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{courseService: courseService, validate: v, logger: logger}
}

// RegisterRoutes mounts course routes. Listing is public; mutation is
// admin only.
func (h *CourseHandler) RegisterRoutes(r chi.Router, auth *middleware.Auth) {
	r.Get("/courses", h.list)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth, auth.RequireRole(model.RoleAdmin))
		r.Post("/courses", h.create)
		r.Put("/courses/{courseID}", h.update)
		r.Delete("/courses/{courseID}", h.delete)
	})
}

func (h *CourseHandler) list(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.List(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	resp := make([]dto.CourseResponseDTO, 0, len(courses))
	for _, c := range courses {
		resp = append(resp, courseResponse(&c))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CourseHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CourseCreateDTO
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Code and title are required")
		return
	}

	course := &model.Course{
		Code:  req.Code,
		Title: req.Title,
		Seats: service.DefaultSeats,
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Seats != nil {
		course.Seats = *req.Seats
	}
	if req.InstructorEmail != nil {
		course.InstructorEmail = *req.InstructorEmail
	}

	created, err := h.courseService.Create(r.Context(), course)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, courseResponse(created))
}

// update applies full-replace semantics: every mutable field is overwritten
// with the request value, absent fields included.
func (h *CourseHandler) update(w http.ResponseWriter, r *http.Request) {
	var req dto.CourseUpdateDTO
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Code and title are required")
		return
	}

	course := &model.Course{
		ID:              chi.URLParam(r, "courseID"),
		Code:            req.Code,
		Title:           req.Title,
		Description:     req.Description,
		Seats:           req.Seats,
		InstructorEmail: req.InstructorEmail,
	}
	updated, err := h.courseService.Update(r.Context(), course)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	// Updating an absent id is a silent no-op with an empty result.
	if updated == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, courseResponse(updated))
}

func (h *CourseHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.courseService.Delete(r.Context(), chi.URLParam(r, "courseID")); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func courseResponse(c *model.Course) dto.CourseResponseDTO {
	return dto.CourseResponseDTO{
		ID:              c.ID,
		Code:            c.Code,
		Title:           c.Title,
		Description:     c.Description,
		Seats:           c.Seats,
		InstructorEmail: c.InstructorEmail,
		CreatedAt:       c.CreatedAt,
	}
}
