package character

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/toon-tailor/internal/entities"
	"github.com/KirkDiggler/toon-tailor/internal/errors"
	"github.com/KirkDiggler/toon-tailor/internal/pkg/idgen"
	"github.com/KirkDiggler/toon-tailor/internal/storage"
)

const (
	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
)

type storeRepository struct {
	// mu serializes read-modify-write within the process; the store's
	// Update guards against other processes
	mu    sync.Mutex
	store storage.Store
	key   string
	idGen idgen.Generator
}

// Config contains configuration for the character repository
type Config struct {
	Store       storage.Store
	IDGenerator idgen.Generator
	// Key defaults to DefaultKey
	Key string
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Store == nil {
		vb.RequiredField("Store")
	}
	if cfg.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// New creates a character repository over a key-value store
func New(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	key := cfg.Key
	if key == "" {
		key = DefaultKey
	}

	return &storeRepository{
		store: cfg.Store,
		key:   key,
		idGen: cfg.IDGenerator,
	}, nil
}

func (r *storeRepository) LoadAll(ctx context.Context, _ LoadAllInput) (*LoadAllOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.FromContext(err, "load characters canceled")
	}

	data, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.IsNotFound(err) {
			slog.DebugContext(ctx, "no stored characters", "key", r.key)
		} else {
			slog.ErrorContext(ctx, "failed to load characters", "key", r.key, "error", err)
		}
		return &LoadAllOutput{Characters: []*entities.Character{}}, nil
	}

	characters, skipped, err := decode(data)
	if err != nil {
		slog.ErrorContext(ctx, "stored characters are unreadable", "key", r.key, "error", err)
		return &LoadAllOutput{Characters: []*entities.Character{}}, nil
	}
	if skipped > 0 {
		slog.ErrorContext(ctx, "skipped unreadable stored characters", "key", r.key, "skipped", skipped)
	}

	slog.DebugContext(ctx, "loaded characters", "key", r.key, "count", len(characters))
	return &LoadAllOutput{Characters: characters}, nil
}

func (r *storeRepository) SaveAll(ctx context.Context, input SaveAllInput) (*SaveAllOutput, error) {
	data, err := encode(input.Characters)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Set(ctx, r.key, data); err != nil {
		slog.ErrorContext(ctx, "failed to save characters", "key", r.key, "error", err)
		return nil, errors.Wrap(err, "failed to save characters")
	}
	return &SaveAllOutput{}, nil
}

func (r *storeRepository) SaveOne(ctx context.Context, input SaveOneInput) (*SaveOneOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}

	c := input.Character.Clone()
	if c.ID == "" {
		c.ID = r.idGen.Generate()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character %s", c.ID)
	}

	created := false
	err = r.store.Update(ctx, r.key, func(current []byte, found bool) ([]byte, error) {
		entries := r.entriesOf(ctx, current, found)

		created = true
		for i, raw := range entries {
			if entryID(raw) == c.ID {
				entries[i] = entry
				created = false
				break
			}
		}
		if created {
			entries = append(entries, entry)
		}
		return json.Marshal(entries)
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to save character", "key", r.key, "character_id", c.ID, "error", err)
		return nil, errors.Wrapf(err, "failed to save character %s", c.ID)
	}

	slog.DebugContext(ctx, "saved character", "character_id", c.ID, "created", created)
	return &SaveOneOutput{Character: c.Clone(), Created: created}, nil
}

func (r *storeRepository) DeleteOne(ctx context.Context, input DeleteOneInput) (*DeleteOneOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := false
	err := r.store.Update(ctx, r.key, func(current []byte, found bool) ([]byte, error) {
		entries := r.entriesOf(ctx, current, found)

		kept := make([]json.RawMessage, 0, len(entries))
		for _, raw := range entries {
			if entryID(raw) == input.ID {
				deleted = true
				continue
			}
			kept = append(kept, raw)
		}
		return json.Marshal(kept)
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete character", "key", r.key, "character_id", input.ID, "error", err)
		return nil, errors.Wrapf(err, "failed to delete character %s", input.ID)
	}

	slog.DebugContext(ctx, "deleted character", "character_id", input.ID, "deleted", deleted)
	return &DeleteOneOutput{Deleted: deleted}, nil
}

func (r *storeRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	out, err := r.LoadAll(ctx, LoadAllInput{})
	if err != nil {
		return nil, err
	}
	for _, c := range out.Characters {
		if c.ID == input.ID {
			return &GetOutput{Character: c}, nil
		}
	}
	return nil, errors.NotFoundf("character with ID %s not found", input.ID)
}

// entriesOf splits the stored collection into raw entries. Entries that do
// not decode as a character are carried through untouched; only a value
// that is not a JSON array is treated as an empty collection.
func (r *storeRepository) entriesOf(ctx context.Context, current []byte, found bool) []json.RawMessage {
	if !found {
		return []json.RawMessage{}
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(current, &entries); err != nil {
		slog.ErrorContext(ctx, "replacing unreadable stored characters", "key", r.key, "error", err)
		return []json.RawMessage{}
	}
	if entries == nil {
		return []json.RawMessage{}
	}
	return entries
}

// entryID returns the string id of a raw entry, or "" when it has none
func entryID(raw json.RawMessage) string {
	var head struct {
		ID any `json:"id"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return ""
	}
	id, _ := head.ID.(string)
	return id
}

// decode returns the entries that decode as characters, in stored order,
// and the number skipped
func decode(data []byte) ([]*entities.Character, int, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, 0, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal characters")
	}
	out := make([]*entities.Character, 0, len(entries))
	skipped := 0
	for _, raw := range entries {
		var c *entities.Character
		if err := json.Unmarshal(raw, &c); err != nil {
			skipped++
			continue
		}
		// null entries carry no character
		if c != nil {
			out = append(out, c)
		}
	}
	return out, skipped, nil
}

func encode(characters []*entities.Character) ([]byte, error) {
	if characters == nil {
		characters = []*entities.Character{}
	}
	data, err := json.Marshal(characters)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal characters")
	}
	return data, nil
}
