// Package gateway defines the remote experience store contract consumed by
// the timeline engine, and its HTTP implementation.
package gateway

import (
	"context"

	"github.com/LGuichet/CareerForge/internal/experience"
)

// Gateway is the contract the engine requires from the backing store. All
// operations are non-blocking relative to the caller except at the await
// point itself; cancellation and timeouts flow through the context.
type Gateway interface {
	// List fetches every stored experience. No pagination is guaranteed.
	List(ctx context.Context) ([]experience.RawExperience, error)

	// Create stores a new experience; the server assigns the identifier.
	Create(ctx context.Context, in experience.ExperienceInput) (*experience.RawExperience, error)

	// Update replaces the experience with the given identifier. It fails
	// with a NotFoundError when the identifier is unknown to the store.
	Update(ctx context.Context, id string, in experience.ExperienceInput) (*experience.RawExperience, error)
}
