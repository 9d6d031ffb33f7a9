package v1alpha1_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/toon-tailor/internal/api/toontailor/v1alpha1"
	"github.com/KirkDiggler/toon-tailor/internal/errors"
	"github.com/KirkDiggler/toon-tailor/internal/testutils"
)

type MessagesTestSuite struct {
	suite.Suite
}

func TestMessagesSuite(t *testing.T) {
	suite.Run(t, new(MessagesTestSuite))
}

func (s *MessagesTestSuite) TestCharacterSurvivesStruct() {
	c := testutils.NewTestDwarfCleric("7")

	msg, err := v1alpha1.Encode(&v1alpha1.CharacterResponse{Character: c})
	s.Require().NoError(err)

	var decoded v1alpha1.CharacterResponse
	s.Require().NoError(v1alpha1.Decode(msg, &decoded))
	s.Equal(c, decoded.Character)
}

func (s *MessagesTestSuite) TestDecodeRejectsUnknownFields() {
	msg, err := structpb.NewStruct(map[string]any{"characterId": "1", "charId": "1"})
	s.Require().NoError(err)

	err = v1alpha1.Decode(msg, &v1alpha1.GetCharacterRequest{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *MessagesTestSuite) TestDecodeRejectsFractionalInts() {
	msg, err := structpb.NewStruct(map[string]any{"characterId": "1", "attribute": "strength", "base": 12.5})
	s.Require().NoError(err)

	err = v1alpha1.Decode(msg, &v1alpha1.UpdateAttributeRequest{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *MessagesTestSuite) TestDecodeNil() {
	var req v1alpha1.ListCharactersRequest
	s.NoError(v1alpha1.Decode(nil, &req))
}

func (s *MessagesTestSuite) TestOptionalName() {
	msg, err := v1alpha1.Encode(&v1alpha1.UpdateOriginRequest{CharacterID: "1", Race: "Elf"})
	s.Require().NoError(err)
	_, hasName := msg.GetFields()["name"]
	s.False(hasName)

	var req v1alpha1.UpdateOriginRequest
	s.Require().NoError(v1alpha1.Decode(msg, &req))
	s.Nil(req.Name)
	s.Equal("Elf", req.Race)
}
