package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/LGuichet/CareerForge/internal/db"
)

// ProfilePatchRequest is a partial personal-data update. Each field is
// independently optional; the client patches field by field on blur.
type ProfilePatchRequest struct {
	Username           *string `json:"username,omitempty" validate:"omitempty,min=1"`
	Lastname           *string `json:"lastname,omitempty" validate:"omitempty,min=1"`
	ProfessionalTitle  *string `json:"professionalTitle,omitempty" validate:"omitempty,min=1"`
	Email              *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone              *string `json:"phone,omitempty" validate:"omitempty,e164"`
	Address            *string `json:"address,omitempty" validate:"omitempty,min=1"`
	ProfessionalResume *string `json:"professionalResume,omitempty" validate:"omitempty,min=1"`
}

// Validate validates the present fields using the validator.
func (r *ProfilePatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// wireProfile converts a stored profile row to its wire representation.
func wireProfile(p *db.Profile) map[string]string {
	return map[string]string{
		"id":                 p.ID.String(),
		"username":           p.Username,
		"lastname":           p.Lastname,
		"professionalTitle":  p.ProfessionalTitle,
		"email":              p.Email,
		"phone":              p.Phone,
		"address":            p.Address,
		"professionalResume": p.ProfessionalResume,
	}
}

// handleGetProfile retrieves the personal-data section
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	profile, err := s.db.GetProfile(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, wireProfile(profile))
}

// handlePatchProfile applies a partial personal-data update
func (s *Server) handlePatchProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	var req ProfilePatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	patch := db.ProfilePatch{
		Username:           req.Username,
		Lastname:           req.Lastname,
		ProfessionalTitle:  req.ProfessionalTitle,
		Email:              req.Email,
		Phone:              req.Phone,
		Address:            req.Address,
		ProfessionalResume: req.ProfessionalResume,
	}

	profile, err := s.db.PatchProfile(r.Context(), id, patch)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, wireProfile(profile))
}
