package serviceerrors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/s3-model/internal/errors"
	"github.com/KirkDiggler/s3-model/internal/serviceerrors"
	"github.com/KirkDiggler/s3-model/internal/testutils"
	"github.com/KirkDiggler/s3-model/internal/types"
)

type ServiceErrorsTestSuite struct {
	suite.Suite
}

func TestServiceErrorsSuite(t *testing.T) {
	suite.Run(t, new(ServiceErrorsTestSuite))
}

func (s *ServiceErrorsTestSuite) TearDownTest() {
	serviceerrors.SetObserver(nil)
}

func (s *ServiceErrorsTestSuite) TestFromCodeChoosesVariantByCode() {
	testCases := []struct {
		code     string
		category errors.Code
		check    func(error) bool
	}{
		{serviceerrors.CodeBucketAlreadyExists, errors.CodeAlreadyExists, func(err error) bool {
			var target *serviceerrors.BucketAlreadyExists
			return stderrors.As(err, &target)
		}},
		{serviceerrors.CodeBucketAlreadyOwnedByYou, errors.CodeAlreadyExists, func(err error) bool {
			var target *serviceerrors.BucketAlreadyOwnedByYou
			return stderrors.As(err, &target)
		}},
		{serviceerrors.CodeNoSuchBucket, errors.CodeNotFound, func(err error) bool {
			var target *serviceerrors.NoSuchBucket
			return stderrors.As(err, &target)
		}},
		{serviceerrors.CodeNoSuchKey, errors.CodeNotFound, func(err error) bool {
			var target *serviceerrors.NoSuchKey
			return stderrors.As(err, &target)
		}},
		{serviceerrors.CodeNoSuchUpload, errors.CodeNotFound, func(err error) bool {
			var target *serviceerrors.NoSuchUpload
			return stderrors.As(err, &target)
		}},
		{serviceerrors.CodeNoSuchTagSet, errors.CodeNotFound, func(err error) bool {
			var target *serviceerrors.NoSuchTagSet
			return stderrors.As(err, &target)
		}},
		{serviceerrors.CodeInvalidObjectState, errors.CodeFailedPrecondition, func(err error) bool {
			var target *serviceerrors.InvalidObjectState
			return stderrors.As(err, &target)
		}},
		{serviceerrors.CodeObjectAlreadyInActiveTierError, errors.CodeFailedPrecondition, func(err error) bool {
			var target *serviceerrors.ObjectAlreadyInActiveTierError
			return stderrors.As(err, &target)
		}},
		{serviceerrors.CodeObjectNotInActiveTierError, errors.CodeFailedPrecondition, func(err error) bool {
			var target *serviceerrors.ObjectNotInActiveTierError
			return stderrors.As(err, &target)
		}},
		{serviceerrors.CodeAccessDenied, errors.CodePermissionDenied, func(err error) bool {
			var target *serviceerrors.AccessDenied
			return stderrors.As(err, &target)
		}},
	}

	s.Len(testCases, len(serviceerrors.KnownCodes()))

	for _, tc := range testCases {
		s.Run(tc.code, func() {
			err := serviceerrors.FromCode(tc.code, serviceerrors.Diagnostics{})
			s.Require().NotNil(err)
			s.True(tc.check(err))
			s.Equal(tc.code, err.ErrorCode())
			s.Equal(tc.category, err.Category())
			s.Equal(tc.category, errors.GetCode(err))
			s.Equal(smithy.FaultClient, err.ErrorFault())
			s.True(serviceerrors.IsKnownCode(tc.code))
		})
	}
}

func (s *ServiceErrorsTestSuite) TestNoSuchBucketIgnoresPayload() {
	payloads := []serviceerrors.Diagnostics{
		{},
		{Message: aws.String("The specified bucket does not exist")},
		{RequestID: aws.String("4442587FB7D0A2F9"), HostID: aws.String("host-1")},
		{Fields: map[string]string{"BucketName": "missing", "StorageClass": "GLACIER"}},
	}

	for i, payload := range payloads {
		s.Run(fmt.Sprintf("payload %d", i), func() {
			err := serviceerrors.FromCode("NoSuchBucket", payload)

			var noSuchBucket *serviceerrors.NoSuchBucket
			s.True(stderrors.As(err, &noSuchBucket))
			s.True(serviceerrors.IsCode(err, serviceerrors.CodeNoSuchBucket))
		})
	}
}

func (s *ServiceErrorsTestSuite) TestUnrecognizedCodeKeepsRawCode() {
	err := serviceerrors.FromCode("SlowDownPlease", serviceerrors.Diagnostics{
		Message:   aws.String("reduce your request rate"),
		RequestID: aws.String("req-9"),
	})

	var unrecognized *serviceerrors.UnrecognizedServiceError
	s.Require().True(stderrors.As(err, &unrecognized))
	s.Equal("SlowDownPlease", unrecognized.ErrorCode())
	s.Equal("reduce your request rate", unrecognized.ErrorMessage())
	s.Equal(errors.CodeUnknown, unrecognized.Category())
	s.Equal(smithy.FaultUnknown, unrecognized.ErrorFault())
	s.Equal("api error SlowDownPlease: reduce your request rate", err.Error())
	s.False(serviceerrors.IsKnownCode("SlowDownPlease"))
	s.True(errors.IsUnknown(err))

	requestID, ok := unrecognized.RequestID()
	s.True(ok)
	s.Equal("req-9", requestID)
}

func (s *ServiceErrorsTestSuite) TestEmptyCodeIsUnrecognized() {
	err := serviceerrors.FromCode("", serviceerrors.Diagnostics{})
	s.Require().NotNil(err)
	s.Equal("", err.ErrorCode())
	s.Equal(errors.CodeUnknown, err.Category())
	s.Equal("api error ", err.Error())
}

func (s *ServiceErrorsTestSuite) TestSatisfiesSmithyAPIError() {
	var err error = serviceerrors.FromCode(serviceerrors.CodeNoSuchKey, serviceerrors.Diagnostics{
		Message: aws.String("The specified key does not exist."),
	})
	wrapped := fmt.Errorf("get object: %w", err)

	var apiErr smithy.APIError
	s.Require().True(stderrors.As(wrapped, &apiErr))
	s.Equal("NoSuchKey", apiErr.ErrorCode())
	s.Equal("The specified key does not exist.", apiErr.ErrorMessage())

	svcErr, ok := serviceerrors.AsServiceError(wrapped)
	s.Require().True(ok)
	s.Equal("NoSuchKey", svcErr.ErrorCode())
	s.True(serviceerrors.IsCode(wrapped, "NoSuchKey"))
	s.False(serviceerrors.IsCode(wrapped, "NoSuchBucket"))

	_, ok = serviceerrors.AsServiceError(stderrors.New("plain"))
	s.False(ok)
}

func (s *ServiceErrorsTestSuite) TestInvalidObjectStateDecodesFields() {
	err := serviceerrors.FromCode(serviceerrors.CodeInvalidObjectState, serviceerrors.Diagnostics{
		Fields: map[string]string{"StorageClass": "GLACIER", "AccessTier": "FROZEN_ACCESS"},
	})

	var invalid *serviceerrors.InvalidObjectState
	s.Require().True(stderrors.As(err, &invalid))

	class, ok := invalid.StorageClass()
	s.True(ok)
	s.Equal(types.StorageClassGlacier, class)

	tier, ok := invalid.AccessTier()
	s.True(ok)
	s.Equal(types.IntelligentTieringAccessTierUnknownToSDKVersion, tier)
}

func (s *ServiceErrorsTestSuite) TestBuildersAndEquality() {
	a := serviceerrors.NewNoSuchKeyBuilder().
		WithMessage(aws.String("gone")).
		WithRequestID(aws.String("r1")).
		Build()
	b := a.ToBuilder().Build()
	c := a.ToBuilder().WithRequestID(aws.String("r2")).Build()

	s.True(a.Equal(b))
	s.Equal(a.Hash(), b.Hash())
	s.False(a.Equal(c))
	s.NotEqual(a.Hash(), c.Hash())

	rid, _ := a.RequestID()
	s.Equal("r1", rid)
	_, ok := a.HostID()
	s.False(ok)

	s.Equal("NoSuchKey(Message=gone, RequestID=r1)", a.String())
	s.Equal("api error NoSuchKey: gone", a.Error())
}

func (s *ServiceErrorsTestSuite) TestInvalidObjectStateEquality() {
	glacier := types.StorageClassGlacier
	deep := types.StorageClassDeepArchive

	a := serviceerrors.NewInvalidObjectStateBuilder().WithStorageClass(&glacier).Build()
	b := serviceerrors.NewInvalidObjectStateBuilder().WithStorageClass(&deep).Build()

	s.False(a.Equal(b))
	s.True(a.Equal(a.ToBuilder().Build()))
	s.Equal("InvalidObjectState(StorageClass=GLACIER)", a.String())
}

func (s *ServiceErrorsTestSuite) TestObserverSeesEveryCode() {
	type seen struct {
		code  string
		known bool
	}
	var got []seen
	serviceerrors.SetObserver(func(code string, known bool) {
		got = append(got, seen{code, known})
	})

	serviceerrors.FromCode("NoSuchBucket", serviceerrors.Diagnostics{})
	serviceerrors.FromCode("TooManyBuckets", serviceerrors.Diagnostics{})

	s.Equal([]seen{{"NoSuchBucket", true}, {"TooManyBuckets", false}}, got)
}

func (s *ServiceErrorsTestSuite) TestConvertsToGRPCStatus() {
	err := serviceerrors.FromCode(serviceerrors.CodeAccessDenied, serviceerrors.Diagnostics{
		Message: aws.String("Access Denied"),
	})

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.PermissionDenied, st.Code())

	back := errors.FromGRPCError(grpcErr)
	s.True(errors.IsPermissionDenied(back))
	s.Equal("AccessDenied", errors.GetMeta(back)[errors.MetaErrorCode])
}

func (s *ServiceErrorsTestSuite) TestKnownCodesSorted() {
	known := serviceerrors.KnownCodes()
	s.Equal("AccessDenied", known[0])
	s.Contains(known, "NoSuchTagSet")
}

func (s *ServiceErrorsTestSuite) TestDiagnosticsAreCarried() {
	d := testutils.ServiceDiagnostics("Access Denied")

	err := serviceerrors.FromCode(serviceerrors.CodeAccessDenied, d)

	requestID, ok := err.RequestID()
	s.True(ok)
	s.Equal(*d.RequestID, requestID)
	s.Len(requestID, 16)

	hostID, ok := err.HostID()
	s.True(ok)
	s.Equal(*d.HostID, hostID)

	s.Equal("api error AccessDenied: Access Denied", err.Error())
}
