package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/s3-model/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

// codedError stands in for a service error: it has a category and a wire code
type codedError struct {
	code string
}

func (e *codedError) Error() string         { return e.code + ": service failure" }
func (e *codedError) ErrorCode() string     { return e.code }
func (e *codedError) Category() errors.Code { return errors.CodeNotFound }

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
			message:  "snapshot not found",
			expected: "NOT_FOUND: snapshot not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid input",
			expected: "INVALID_ARGUMENT: invalid input",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("snapshot not found").
		WithMeta("bucket", "logs").
		WithMeta("key", "2024/01/01.gz")

	s.Assert().Equal("logs", err.Meta["bucket"])
	s.Assert().Equal("2024/01/01.gz", err.Meta["key"])

	err2 := errors.Unavailable("cache failure").
		WithMetaMap(map[string]interface{}{
			"backend": "redis",
			"attempt": 2,
		})

	s.Assert().Equal("redis", err2.Meta["backend"])
	s.Assert().Equal(2, err2.Meta["attempt"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to read snapshot")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to read snapshot", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("record not found")
	wrapped := errors.Wrap(baseErr, "snapshot not found")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("snapshot not found", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCategory() {
	wrapped := errors.Wrap(&codedError{code: "NoSuchKey"}, "head object")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.NotFound("missing").WithMeta("key", "a")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "cache unavailable")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().Equal("cache unavailable", wrapped.Message)
	s.Assert().Equal("a", wrapped.Meta["key"])
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFound", func() *errors.Error { return errors.NotFound("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"Unavailable", func() *errors.Error { return errors.Unavailable("test") }, errors.CodeUnavailable},
		{"FailedPreconditionf", func() *errors.Error { return errors.FailedPreconditionf("%s", "test") }, errors.CodeFailedPrecondition},
		{"Unknown", func() *errors.Error { return errors.Unknown("test") }, errors.CodeUnknown},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("test")
	err2 := errors.NotFound("other")
	err3 := errors.InvalidArgument("test")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(fmt.Errorf("ctx: %w", &codedError{code: "NoSuchBucket"})))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.NotFound("user friendly message")
	wrapped := errors.Wrap(err, "wrapped message")
	stdErr := fmt.Errorf("standard error")

	s.Assert().Equal("user friendly message", errors.GetMessage(err))
	s.Assert().Equal("wrapped message", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(stdErr))
	s.Assert().Empty(errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 200},
		{errors.CodeNotFound, 404},
		{errors.CodeInvalidArgument, 400},
		{errors.CodeAlreadyExists, 409},
		{errors.CodePermissionDenied, 403},
		{errors.CodeFailedPrecondition, 412},
		{errors.CodeInternal, 500},
		{errors.CodeUnknown, 500},
		{errors.CodeUnavailable, 503},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.HTTPStatus())
		})
	}
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.NotFound("snapshot not found").
		WithMeta("bucket", "logs")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.NotFound, st.Code())
	s.Assert().Equal("snapshot not found", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(back))
	s.Assert().Equal("logs", errors.GetMeta(back)["bucket"])
}

func (s *ErrorsTestSuite) TestGRPCCarriesServiceErrorCode() {
	grpcErr := errors.ToGRPCError(&codedError{code: "NoSuchBucket"})

	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.NotFound, st.Code())

	back := errors.FromGRPCError(grpcErr)
	s.Assert().Equal("NoSuchBucket", errors.GetMeta(back)[errors.MetaErrorCode])
}

func (s *ErrorsTestSuite) TestGRPCValidationMeta() {
	err := errors.NewValidationBuilder().RequiredField("redis.endpoint").Build()

	back := errors.FromGRPCError(errors.ToGRPCError(err))
	s.Assert().True(errors.IsInvalidArgument(back))
	s.Assert().NotNil(errors.GetMeta(back)["validation_errors"])
}

func (s *ErrorsTestSuite) TestFromPlainStatus() {
	err := errors.FromGRPCError(status.Error(codes.Unknown, "odd"))
	s.Assert().True(errors.IsUnknown(err))
	s.Assert().Equal("odd", errors.GetMessage(err))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeAlreadyExists, codes.AlreadyExists},
		{errors.CodePermissionDenied, codes.PermissionDenied},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnknown, codes.Unknown},
		{errors.CodeUnavailable, codes.Unavailable},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
