package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/toon-tailor/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "character not found",
			expected: "NOT_FOUND: character not found",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "too many abilities",
			expected: "FAILED_PRECONDITION: too many abilities",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestIsMatchesReason() {
	parseErr := errors.InvalidArgument("Invalid character file format").WithReason("IMPORT_PARSE_ERROR")
	shapeErr := errors.InvalidArgument("bad shape").WithReason("IMPORT_SHAPE_ERROR")

	s.Run("same code and reason", func() {
		s.True(errors.Is(parseErr, errors.InvalidArgument("").WithReason("IMPORT_PARSE_ERROR")))
	})

	s.Run("same code different reason", func() {
		s.False(errors.Is(shapeErr, errors.InvalidArgument("").WithReason("IMPORT_PARSE_ERROR")))
	})

	s.Run("target without reason matches any reason", func() {
		s.True(errors.Is(shapeErr, errors.InvalidArgument("")))
	})

	s.Run("reason survives wrapping", func() {
		wrapped := errors.Wrap(parseErr, "failed to import character")
		s.Equal("IMPORT_PARSE_ERROR", wrapped.Reason)
		s.True(errors.HasReason(wrapped, "IMPORT_PARSE_ERROR"))
		s.Equal(errors.CodeInvalidArgument, errors.GetCode(wrapped))
	})
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load characters")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load characters", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
	s.Nil(errors.Wrap(nil, "nothing"))
}

func (s *ErrorsTestSuite) TestWrapWithCodeDropsReason() {
	base := errors.Internal("write failed").WithReason("STORAGE_WRITE_FAILURE").WithMeta("key", "k")
	wrapped := errors.WrapWithCode(base, errors.CodeAborted, "conflict")

	s.Equal(errors.CodeAborted, wrapped.Code)
	s.Empty(wrapped.Reason)
	s.Equal("k", wrapped.Meta["key"])
	s.True(errors.HasReason(wrapped, "STORAGE_WRITE_FAILURE"))
}

func (s *ErrorsTestSuite) TestFromContext() {
	s.True(errors.IsCanceled(errors.FromContext(context.Canceled, "import canceled")))
	s.True(errors.IsDeadlineExceeded(errors.FromContext(context.DeadlineExceeded, "too slow")))
	s.True(errors.IsInternal(errors.FromContext(fmt.Errorf("boom"), "boom")))
	s.Nil(errors.FromContext(nil, "ok"))
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	original := errors.FailedPrecondition("You can only select up to 4 abilities at once.").
		WithReason("ABILITY_LIMIT_REACHED").
		WithMeta("character_id", "c-1")

	grpcErr := errors.ToGRPCError(original)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.FailedPrecondition, st.Code())
	s.Equal("You can only select up to 4 abilities at once.", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(back))
	s.Equal("ABILITY_LIMIT_REACHED", errors.GetReason(back))
	s.Equal("c-1", errors.GetMeta(back)["character_id"])
}

func (s *ErrorsTestSuite) TestToGRPCErrorPlainError() {
	grpcErr := errors.ToGRPCError(fmt.Errorf("plain"))
	s.Equal(codes.Internal, status.Code(grpcErr))
	s.Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder().WithReason("IMPORT_SHAPE_ERROR")
	errors.ValidateRange("appearance.height", 300, 120, 220, vb)
	errors.ValidateEnum("race", "Gnome", []string{"Human", "Elf"}, vb)
	errors.ValidateOptionalKey("equipment.hat", "", map[string]string{"elf_hat": "Elf Hat"}, vb)
	errors.ValidateOptionalKey("equipment.bag", "crate", map[string]string{"b_bag": "Black Backpack"}, vb)
	errors.ValidateMin("experience", -1, 0, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal("IMPORT_SHAPE_ERROR", errors.GetReason(err))

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Contains(fields, "appearance.height")
	s.Contains(fields, "race")
	s.Contains(fields, "equipment.bag")
	s.Contains(fields, "experience")
	s.NotContains(fields, "equipment.hat")
	s.Equal(
		"INVALID_ARGUMENT: validation failed: appearance.height: must be between 120 and 220; "+
			"equipment.bag: unknown option \"crate\"; experience: must be at least 0; "+
			"race: must be one of: Human, Elf",
		err.Error(),
	)
}

func (s *ErrorsTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "Bob", vb)
	s.NoError(vb.Build())
	s.False(vb.HasErrors())
}
