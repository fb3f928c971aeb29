package db

import (
	"time"

	"github.com/google/uuid"
)

// Experience represents a stored work-experience row
type Experience struct {
	ID          uuid.UUID `json:"id"`
	JobTitle    string    `json:"job_title"`
	CompanyName string    `json:"company_name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExperienceData holds the writable fields of an experience
type ExperienceData struct {
	JobTitle    string
	CompanyName string
	Description string
	StartDate   time.Time
	EndDate     time.Time
}

// Profile represents the personal-data section of a résumé
type Profile struct {
	ID                 uuid.UUID `json:"id"`
	Username           string    `json:"username"`
	Lastname           string    `json:"lastname"`
	ProfessionalTitle  string    `json:"professional_title"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Address            string    `json:"address"`
	ProfessionalResume string    `json:"professional_resume"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ProfilePatch holds a partial profile update; nil fields are left untouched
type ProfilePatch struct {
	Username           *string
	Lastname           *string
	ProfessionalTitle  *string
	Email              *string
	Phone              *string
	Address            *string
	ProfessionalResume *string
}
