package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/LGuichet/CareerForge/internal/db"
	"github.com/LGuichet/CareerForge/internal/experience"
	"github.com/LGuichet/CareerForge/internal/schemas"
)

// maxBodySize caps experience payloads; a single record is tiny.
const maxBodySize = 64 << 10

// wireExperience converts a stored row to its wire representation: uuid as
// an opaque string, dates as ISO-8601 calendar dates.
func wireExperience(exp *db.Experience) experience.RawExperience {
	return experience.RawExperience{
		ID:          exp.ID.String(),
		JobTitle:    exp.JobTitle,
		CompanyName: exp.CompanyName,
		Description: exp.Description,
		StartDate:   experience.FormatDate(exp.StartDate),
		EndDate:     experience.FormatDate(exp.EndDate),
	}
}

// parseExperienceBody reads, schema-validates and semantically validates an
// experience payload. Returns the writable fields or writes the error
// response itself and returns false.
func (s *Server) parseExperienceBody(w http.ResponseWriter, r *http.Request) (db.ExperienceData, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return db.ExperienceData{}, false
	}

	// Structural contract first, in one pass over the raw payload.
	if err := schemas.ValidateExperience(body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return db.ExperienceData{}, false
	}

	var raw experience.RawExperience
	if err := json.Unmarshal(body, &raw); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return db.ExperienceData{}, false
	}

	start, err := experience.ParseDate("startDate", raw.StartDate)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return db.ExperienceData{}, false
	}
	end, err := experience.ParseDate("endDate", raw.EndDate)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return db.ExperienceData{}, false
	}

	in := experience.ExperienceInput{
		JobTitle:    raw.JobTitle,
		CompanyName: raw.CompanyName,
		Description: raw.Description,
		StartDate:   start,
		EndDate:     end,
	}
	if err := in.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return db.ExperienceData{}, false
	}

	return db.ExperienceData{
		JobTitle:    in.JobTitle,
		CompanyName: in.CompanyName,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	}, true
}

// handleListExperiences lists all experiences ordered by start date
func (s *Server) handleListExperiences(w http.ResponseWriter, r *http.Request) {
	rows, err := s.db.ListExperiences(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	out := make([]experience.RawExperience, 0, len(rows))
	for i := range rows {
		out = append(out, wireExperience(&rows[i]))
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"experiences": out,
		"count":       len(out),
	})
}

// handleCreateExperience stores a new experience; the server assigns the id
func (s *Server) handleCreateExperience(w http.ResponseWriter, r *http.Request) {
	data, ok := s.parseExperienceBody(w, r)
	if !ok {
		return
	}

	created, err := s.db.CreateExperience(r.Context(), data)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, wireExperience(created))
}

// handleUpdateExperience replaces an existing experience
func (s *Server) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid experience ID")
		return
	}

	data, ok := s.parseExperienceBody(w, r)
	if !ok {
		return
	}

	updated, err := s.db.UpdateExperience(r.Context(), id, data)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Experience not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, wireExperience(updated))
}

// handleDeleteExperience removes an experience
func (s *Server) handleDeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid experience ID")
		return
	}

	deleted, err := s.db.DeleteExperience(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Experience not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
