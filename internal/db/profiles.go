package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const profileColumns = `id, username, lastname, professional_title, email, phone, address, professional_resume, created_at, updated_at`

// GetProfile retrieves a profile by ID, or nil if not found
func (db *DB) GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	var p Profile
	err := db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Username, &p.Lastname, &p.ProfessionalTitle, &p.Email,
		&p.Phone, &p.Address, &p.ProfessionalResume, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// patchAssignments builds the SET clause for the fields present in the
// patch. Absent fields never appear, so each field is persisted
// independently, matching the blur-by-blur edit flow of the client.
func patchAssignments(patch ProfilePatch) ([]string, []any) {
	var sets []string
	var args []any

	add := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	add("username", patch.Username)
	add("lastname", patch.Lastname)
	add("professional_title", patch.ProfessionalTitle)
	add("email", patch.Email)
	add("phone", patch.Phone)
	add("address", patch.Address)
	add("professional_resume", patch.ProfessionalResume)
	return sets, args
}

// PatchProfile applies a partial update and returns the stored row.
// Returns nil if the ID is unknown; an empty patch is a no-op read.
func (db *DB) PatchProfile(ctx context.Context, id uuid.UUID, patch ProfilePatch) (*Profile, error) {
	sets, args := patchAssignments(patch)
	if len(sets) == 0 {
		return db.GetProfile(ctx, id)
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE profiles SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), profileColumns,
	)

	var p Profile
	err := db.pool.QueryRow(ctx, query, args...).
		Scan(&p.ID, &p.Username, &p.Lastname, &p.ProfessionalTitle, &p.Email,
			&p.Phone, &p.Address, &p.ProfessionalResume, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to patch profile: %w", err)
	}
	return &p, nil
}
