// Package transfer converts characters to and from the JSON files users
// download and upload.
package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/toon-tailor/internal/engine"
	"github.com/KirkDiggler/toon-tailor/internal/entities"
	"github.com/KirkDiggler/toon-tailor/internal/errors"
)

// Reasons attached to import failures
const (
	ReasonRead  = "IMPORT_READ_ERROR"
	ReasonParse = "IMPORT_PARSE_ERROR"
	ReasonShape = "IMPORT_SHAPE_ERROR"
)

// User-facing import messages
const (
	MessageRead  = "Error reading file"
	MessageParse = "Invalid character file format"
	MessageShape = "Character file does not describe a character"
)

// DefaultMaxSize bounds the bytes read from an import
const DefaultMaxSize = 1 << 20

// Mode selects how much an import is checked
type Mode string

// Import modes
const (
	// ModeStrict rejects unknown fields and validates the result
	ModeStrict Mode = "strict"
	// ModeLenient accepts any object whose known fields have the right types
	ModeLenient Mode = "lenient"
)

// ParseMode converts a configuration value to a Mode; empty means strict
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeStrict:
		return ModeStrict, nil
	case ModeLenient:
		return ModeLenient, nil
	default:
		return "", errors.InvalidArgumentf("unknown import mode %q", s)
	}
}

// Config contains the dependencies of the transfer service
type Config struct {
	Engine engine.Engine
	// Mode is the default import mode
	Mode Mode
	// MaxSize defaults to DefaultMaxSize
	MaxSize int64
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Engine == nil {
		vb.RequiredField("Engine")
	}
	if cfg.Mode != "" {
		errors.ValidateEnum("Mode", string(cfg.Mode), []string{string(ModeStrict), string(ModeLenient)}, vb)
	}
	if cfg.MaxSize < 0 {
		vb.Field("MaxSize", "must not be negative")
	}
	return vb.Build()
}

// Service imports and exports character files
type Service struct {
	engine  engine.Engine
	mode    Mode
	maxSize int64
}

// New creates a transfer service
func New(cfg *Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode := cfg.Mode
	if mode == "" {
		mode = ModeStrict
	}
	maxSize := cfg.MaxSize
	if maxSize == 0 {
		maxSize = DefaultMaxSize
	}
	return &Service{engine: cfg.Engine, mode: mode, maxSize: maxSize}, nil
}

// Mode returns the default import mode
func (s *Service) Mode() Mode {
	return s.mode
}

// ExportOutput is a file ready to be written or downloaded
type ExportOutput struct {
	Filename string
	Data     []byte
}

// Export renders c as an indented JSON document named
// "{name or character}-{id}.json"
func (s *Service) Export(c *entities.Character) (*ExportOutput, error) {
	if c == nil {
		return nil, errors.InvalidArgument("character cannot be nil")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return nil, errors.Wrap(err, "failed to encode character")
	}

	return &ExportOutput{
		Filename: Filename(c),
		Data:     bytes.TrimRight(buf.Bytes(), "\n"),
	}, nil
}

var filenameReplacer = strings.NewReplacer("/", "_", "\\", "_", "\x00", "")

// Filename returns the export file name for c. Path separators in the name
// are replaced so the result is always a single path element.
func Filename(c *entities.Character) string {
	name := c.Name
	if name == "" {
		name = "character"
	}
	return filenameReplacer.Replace(name + "-" + c.ID + ".json")
}

// ImportInput defines the input for importing a character file
type ImportInput struct {
	Reader io.Reader
	// Mode overrides the service default when set
	Mode Mode
}

// ImportOutput defines the output for importing a character file
type ImportOutput struct {
	// Character is the file overlaid on a default character, so fields the
	// file omits keep their defaults
	Character *entities.Character
}

// Import reads and decodes a character file. Reading stops when ctx is done.
func (s *Service) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if input == nil || input.Reader == nil {
		return nil, errors.InvalidArgument("reader is required")
	}
	mode := input.Mode
	if mode == "" {
		mode = s.mode
	}

	data, err := s.read(ctx, input.Reader)
	if err != nil {
		return nil, err
	}

	c := s.engine.NewCharacter("")
	if err := Overlay(c, data, mode == ModeStrict); err != nil {
		slog.DebugContext(ctx, "rejected character file", "mode", mode, "error", err)
		return nil, err
	}

	if mode == ModeStrict {
		if err := s.engine.Validate(c); err != nil {
			slog.DebugContext(ctx, "character file failed validation", "error", err)
			return nil, errors.Wrap(err, MessageShape).WithReason(ReasonShape)
		}
	}

	return &ImportOutput{Character: c}, nil
}

type readResult struct {
	data []byte
	err  error
}

func (s *Service) read(ctx context.Context, r io.Reader) ([]byte, error) {
	done := make(chan readResult, 1)
	go func() {
		data, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
		done <- readResult{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, errors.FromContext(ctx.Err(), "import canceled")
	case res := <-done:
		if res.err != nil {
			return nil, errors.WrapWithCode(res.err, errors.CodeInvalidArgument, MessageRead).WithReason(ReasonRead)
		}
		if int64(len(res.data)) > s.maxSize {
			return nil, errors.InvalidArgument(MessageRead).
				WithReason(ReasonRead).
				WithMeta("max_bytes", s.maxSize)
		}
		return res.data, nil
	}
}

// Overlay decodes a JSON object onto c. Fields absent from data keep the
// values already in c. With strict set, unknown fields are rejected.
// Invalid JSON returns ReasonParse; valid JSON that is not an object, or
// whose fields have the wrong types, returns ReasonShape. On error c may be
// partly overwritten.
func Overlay(c *entities.Character, data []byte, strict bool) error {
	if !json.Valid(data) {
		return errors.InvalidArgument(MessageParse).WithReason(ReasonParse)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return errors.InvalidArgument(MessageShape).
			WithReason(ReasonShape).
			WithMeta("detail", "top-level value must be an object")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(c); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, MessageShape).
			WithReason(ReasonShape).
			WithMeta("detail", err.Error())
	}
	return nil
}
