// Package character persists the character collection as a single JSON
// array stored under one key.
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/toon-tailor/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/toon-tailor/internal/entities"
)

// DefaultKey is the key the browser app used for its local storage
const DefaultKey = "character-creator-data"

// Repository defines the interface for character persistence
type Repository interface {
	// LoadAll returns every stored character in stored order.
	// An absent key, unparseable data or a backend read failure yields an
	// empty list; the failure is logged, not returned.
	// Returns errors.Canceled when ctx is done.
	LoadAll(ctx context.Context, input LoadAllInput) (*LoadAllOutput, error)

	// SaveAll replaces the stored collection.
	// Returns an error with reason STORAGE_WRITE_FAILURE when the backend fails.
	SaveAll(ctx context.Context, input SaveAllInput) (*SaveAllOutput, error)

	// SaveOne replaces the character with the same ID or appends it,
	// assigning an ID when it has none.
	// Returns errors.InvalidArgument for a nil character.
	// Returns an error with reason STORAGE_READ_FAILURE or STORAGE_WRITE_FAILURE
	// when the backend fails; the collection is unchanged.
	// Returns errors.Aborted when another writer changed the collection mid-update.
	SaveOne(ctx context.Context, input SaveOneInput) (*SaveOneOutput, error)

	// DeleteOne removes every character with the ID. A missing ID is a
	// successful no-op.
	// Returns errors.InvalidArgument for an empty ID.
	// Returns an error with reason STORAGE_READ_FAILURE or STORAGE_WRITE_FAILURE
	// when the backend fails.
	DeleteOne(ctx context.Context, input DeleteOneInput) (*DeleteOneOutput, error)

	// Get returns one character.
	// Returns errors.InvalidArgument for an empty ID.
	// Returns errors.NotFound if no stored character has the ID.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// LoadAllInput defines the input for loading the collection
type LoadAllInput struct{}

// LoadAllOutput defines the output for loading the collection
type LoadAllOutput struct {
	Characters []*entities.Character
}

// SaveAllInput defines the input for replacing the collection
type SaveAllInput struct {
	Characters []*entities.Character
}

// SaveAllOutput defines the output for replacing the collection
type SaveAllOutput struct{}

// SaveOneInput defines the input for saving one character
type SaveOneInput struct {
	Character *entities.Character
}

// SaveOneOutput defines the output for saving one character
type SaveOneOutput struct {
	// Character is the stored copy, with its assigned ID
	Character *entities.Character
	// Created is true when the character was appended
	Created bool
}

// DeleteOneInput defines the input for deleting a character
type DeleteOneInput struct {
	ID string
}

// DeleteOneOutput defines the output for deleting a character
type DeleteOneOutput struct {
	// Deleted is false when no character had the ID
	Deleted bool
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}
