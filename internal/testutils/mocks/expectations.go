// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"encoding/json"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/toon-tailor/internal/clients/generator"
	generatormock "github.com/KirkDiggler/toon-tailor/internal/clients/generator/mock"
	"github.com/KirkDiggler/toon-tailor/internal/entities"
	characterrepo "github.com/KirkDiggler/toon-tailor/internal/repositories/character"
	characterrepomock "github.com/KirkDiggler/toon-tailor/internal/repositories/character/mock"
)

// ExpectCharacterGet serves c from the repository once
func ExpectCharacterGet(ctx context.Context, mockRepo *characterrepomock.MockRepository, c *entities.Character) {
	mockRepo.EXPECT().
		Get(ctx, characterrepo.GetInput{ID: c.ID}).
		Return(&characterrepo.GetOutput{Character: c}, nil)
}

// ExpectCharacterSave records the character passed to SaveOne and echoes it
// back as created. The returned pointer is filled when SaveOne runs.
func ExpectCharacterSave(ctx context.Context, mockRepo *characterrepomock.MockRepository) *entities.Character {
	saved := &entities.Character{}
	mockRepo.EXPECT().
		SaveOne(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.SaveOneInput) (*characterrepo.SaveOneOutput, error) {
			*saved = *input.Character.Clone()
			return &characterrepo.SaveOneOutput{Character: input.Character.Clone(), Created: true}, nil
		})
	return saved
}

// ExpectGeneration returns data from the generator for any prompt
func ExpectGeneration(mockClient *generatormock.MockClient, data string) {
	mockClient.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return(&generator.GenerateOutput{Data: json.RawMessage(data), Model: generator.DefaultModel}, nil)
}
