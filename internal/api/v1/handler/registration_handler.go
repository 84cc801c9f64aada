package handler

import (
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/middleware"
	"app/internal/model"
	"app/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// RegistrationHandler handles enrollment endpoints
type RegistrationHandler struct {
	registrationService service.RegistrationService
	logger              zerolog.Logger
}

func NewRegistrationHandler(registrationService service.RegistrationService, logger zerolog.Logger) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService, logger: logger}
}

// RegisterRoutes mounts registration routes. Enrolling and listing one's own
// registrations are student-only; the total count is public.
func (h *RegistrationHandler) RegisterRoutes(r chi.Router, auth *middleware.Auth) {
	r.Get("/registrations/count", h.count)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth, auth.RequireRole(model.RoleStudent))
		r.Post("/register/{courseID}", h.register)
		r.Get("/registration/my", h.myRegistrations)
	})
}

func (h *RegistrationHandler) register(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	reg, err := h.registrationService.Register(r.Context(), user.ID, chi.URLParam(r, "courseID"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.RegistrationResponseDTO{
		ID:        reg.ID,
		StudentID: reg.StudentID,
		CourseID:  reg.CourseID,
		CreatedAt: reg.CreatedAt,
	})
}

func (h *RegistrationHandler) myRegistrations(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	regs, err := h.registrationService.MyRegistrations(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	resp := make([]dto.MyRegistrationDTO, 0, len(regs))
	for _, reg := range regs {
		resp = append(resp, dto.MyRegistrationDTO{
			ID:              reg.ID,
			CourseID:        reg.CourseID,
			CourseCode:      reg.CourseCode,
			CourseTitle:     reg.CourseTitle,
			InstructorEmail: reg.InstructorEmail,
			Seats:           reg.Seats,
			CreatedAt:       reg.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *RegistrationHandler) count(w http.ResponseWriter, r *http.Request) {
	count, err := h.registrationService.Count(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.RegistrationCountDTO{Count: count})
}
