package conditional_test

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/s3-model/internal/errors"
	"github.com/KirkDiggler/s3-model/internal/orchestrators/conditional"
	mockclock "github.com/KirkDiggler/s3-model/internal/pkg/clock/mock"
	"github.com/KirkDiggler/s3-model/internal/pkg/idgen"
	"github.com/KirkDiggler/s3-model/internal/repositories/objectmeta"
	objectmetamock "github.com/KirkDiggler/s3-model/internal/repositories/objectmeta/mock"
	"github.com/KirkDiggler/s3-model/internal/testutils"
	"github.com/KirkDiggler/s3-model/internal/testutils/builders"
	"github.com/KirkDiggler/s3-model/internal/testutils/mocks"
	"github.com/KirkDiggler/s3-model/internal/types"
)

type ConditionalOrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *objectmetamock.MockRepository
	mockClk  *mockclock.MockClock
	logHook  *logtest.Hook
	service  conditional.Service
	ctx      context.Context
}

func TestConditionalOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(ConditionalOrchestratorTestSuite))
}

func (s *ConditionalOrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = objectmetamock.NewMockRepository(s.ctrl)
	s.mockClk = mockclock.NewMockClock(s.ctrl)
	s.ctx = context.Background()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s.logHook = hook

	service, err := conditional.NewOrchestrator(&conditional.Config{
		Repository:  s.mockRepo,
		Clock:       s.mockClk,
		MaxAge:      time.Hour,
		Logger:      logger,
		IDGenerator: idgen.NewSequential("prep"),
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *ConditionalOrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ConditionalOrchestratorTestSuite) request() *types.GetObjectRequest {
	return types.NewGetObjectRequestBuilder().
		WithBucket(aws.String(testutils.TestBucket)).
		WithKey(aws.String(testutils.TestKey)).
		Build()
}

func (s *ConditionalOrchestratorTestSuite) TestNewOrchestrator() {
	testCases := []struct {
		name    string
		config  *conditional.Config
		wantErr bool
		errMsg  string
	}{
		{name: "success with repository", config: &conditional.Config{Repository: s.mockRepo}},
		{name: "error with nil config", wantErr: true, errMsg: "config cannot be nil"},
		{name: "error without repository", config: &conditional.Config{}, wantErr: true, errMsg: "Repository"},
		{
			name:    "error with negative max age",
			config:  &conditional.Config{Repository: s.mockRepo, MaxAge: -time.Second},
			wantErr: true,
			errMsg:  "MaxAge",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			service, err := conditional.NewOrchestrator(tc.config)
			if tc.wantErr {
				s.Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.Nil(service)
			} else {
				s.NoError(err)
				s.NotNil(service)
			}
		})
	}
}

func (s *ConditionalOrchestratorTestSuite) TestPrepareGetSeedsIfNoneMatch() {
	head := builders.NewHeadObjectBuilder().Build()
	mocks.ExpectSnapshot(s.ctx, s.mockRepo, testutils.TestBucket, testutils.TestKey, head, testutils.TestTime)
	s.mockClk.EXPECT().Now().Return(testutils.TestTime.Add(10 * time.Minute))

	original := s.request()
	out, err := s.service.PrepareGet(s.ctx, &conditional.PrepareGetInput{Request: original})
	s.Require().NoError(err)

	s.True(out.Seeded)
	s.Equal(testutils.TestETag, out.ETag)
	s.Equal("prep-1", out.PrepareID)

	entry := s.logHook.LastEntry()
	s.Require().NotNil(entry)
	s.Equal("get made conditional", entry.Message)
	s.Equal("prep-1", entry.Data["prepare_id"])
	s.Equal(testutils.TestETag, entry.Data["etag"])
	got, ok := out.Request.IfNoneMatch()
	s.True(ok)
	s.Equal(testutils.TestETag, got)

	_, ok = original.IfNoneMatch()
	s.False(ok, "input request must not change")
	s.False(original.Equal(out.Request))
	s.True(original.Equal(out.Request.ToBuilder().WithIfNoneMatch(nil).Build()))
}

func (s *ConditionalOrchestratorTestSuite) TestPrepareGetSkips() {
	fresh := testutils.TestTime.Add(time.Minute)

	testCases := []struct {
		name      string
		request   *types.GetObjectRequest
		setupMock func()
		reason    string
	}{
		{
			name:    "request already conditional",
			request: s.request().ToBuilder().WithIfNoneMatch(aws.String(`"mine"`)).Build(),
			reason:  conditional.SkipAlreadyConditional,
		},
		{
			name:    "nothing remembered",
			request: s.request(),
			setupMock: func() {
				mocks.ExpectNoSnapshot(s.ctx, s.mockRepo, testutils.TestBucket, testutils.TestKey)
			},
			reason: conditional.SkipNoSnapshot,
		},
		{
			name:    "snapshot too old",
			request: s.request(),
			setupMock: func() {
				mocks.ExpectSnapshot(s.ctx, s.mockRepo, testutils.TestBucket, testutils.TestKey,
					builders.NewHeadObjectBuilder().Build(), testutils.TestTime)
				s.mockClk.EXPECT().Now().Return(testutils.TestTime.Add(2 * time.Hour))
			},
			reason: conditional.SkipStale,
		},
		{
			name:    "delete marker",
			request: s.request(),
			setupMock: func() {
				head := builders.NewHeadObjectBuilder().Build().ToBuilder().WithDeleteMarker(aws.Bool(true)).Build()
				mocks.ExpectSnapshot(s.ctx, s.mockRepo, testutils.TestBucket, testutils.TestKey, head, testutils.TestTime)
				s.mockClk.EXPECT().Now().Return(fresh)
			},
			reason: conditional.SkipDeleteMarker,
		},
		{
			name:    "different version",
			request: s.request().ToBuilder().WithVersionID(aws.String("older")).Build(),
			setupMock: func() {
				mocks.ExpectSnapshot(s.ctx, s.mockRepo, testutils.TestBucket, testutils.TestKey,
					builders.NewHeadObjectBuilder().Build(), testutils.TestTime)
				s.mockClk.EXPECT().Now().Return(fresh)
			},
			reason: conditional.SkipVersionMismatch,
		},
		{
			name:    "no etag",
			request: s.request(),
			setupMock: func() {
				mocks.ExpectSnapshot(s.ctx, s.mockRepo, testutils.TestBucket, testutils.TestKey,
					builders.NewHeadObjectBuilder().WithoutETag().Build(), testutils.TestTime)
				s.mockClk.EXPECT().Now().Return(fresh)
			},
			reason: conditional.SkipNoETag,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			if tc.setupMock != nil {
				tc.setupMock()
			}

			out, err := s.service.PrepareGet(s.ctx, &conditional.PrepareGetInput{Request: tc.request})
			s.Require().NoError(err)
			s.False(out.Seeded)
			s.Equal(tc.reason, out.SkipReason)
			s.Same(tc.request, out.Request)

			entry := s.logHook.LastEntry()
			s.Require().NotNil(entry)
			s.Equal(tc.reason, entry.Data["reason"])
			s.NotEmpty(out.PrepareID)
			s.Equal(out.PrepareID, entry.Data["prepare_id"])
		})
	}
}

func (s *ConditionalOrchestratorTestSuite) TestPrepareGetUnreadableSnapshot() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	repo, err := objectmeta.NewRedis(&objectmeta.RedisConfig{Client: client, TTL: time.Hour})
	s.Require().NoError(err)
	s.Require().NoError(mr.Set(objectmeta.Key(testutils.TestBucket, testutils.TestKey), "not json"))

	service, err := conditional.NewOrchestrator(&conditional.Config{Repository: repo})
	s.Require().NoError(err)

	out, err := service.PrepareGet(s.ctx, &conditional.PrepareGetInput{Request: s.request()})
	s.Require().NoError(err)
	s.False(out.Seeded)
	s.Equal(conditional.SkipNoSnapshot, out.SkipReason)
	s.Len(out.PrepareID, 16)
}

func (s *ConditionalOrchestratorTestSuite) TestPrepareGetMatchingVersion() {
	head := builders.NewHeadObjectBuilder().Build()
	version, _ := head.VersionID()
	mocks.ExpectSnapshot(s.ctx, s.mockRepo, testutils.TestBucket, testutils.TestKey, head, testutils.TestTime)
	s.mockClk.EXPECT().Now().Return(testutils.TestTime)

	out, err := s.service.PrepareGet(s.ctx, &conditional.PrepareGetInput{
		Request: s.request().ToBuilder().WithVersionID(aws.String(version)).Build(),
	})
	s.Require().NoError(err)
	s.True(out.Seeded)
}

func (s *ConditionalOrchestratorTestSuite) TestPrepareGetValidation() {
	_, err := s.service.PrepareGet(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.PrepareGet(s.ctx, &conditional.PrepareGetInput{
		Request: types.NewGetObjectRequestBuilder().WithKey(aws.String("k")).Build(),
	})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "bucket")
}

func (s *ConditionalOrchestratorTestSuite) TestPrepareGetRepositoryFailure() {
	s.mockRepo.EXPECT().
		Get(s.ctx, objectmeta.GetInput{Bucket: testutils.TestBucket, Key: testutils.TestKey}).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.service.PrepareGet(s.ctx, &conditional.PrepareGetInput{Request: s.request()})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *ConditionalOrchestratorTestSuite) TestRemember() {
	head := builders.NewHeadObjectBuilder().Build()
	s.mockRepo.EXPECT().
		Put(s.ctx, objectmeta.PutInput{Bucket: testutils.TestBucket, Key: testutils.TestKey, Head: head}).
		Return(&objectmeta.PutOutput{StoredAt: testutils.TestTime}, nil)

	out, err := s.service.Remember(s.ctx, &conditional.RememberInput{
		Bucket: testutils.TestBucket,
		Key:    testutils.TestKey,
		Head:   head,
	})
	s.Require().NoError(err)
	s.Equal(testutils.TestTime, out.StoredAt)
}

func (s *ConditionalOrchestratorTestSuite) TestForget() {
	s.mockRepo.EXPECT().
		Delete(s.ctx, objectmeta.DeleteInput{Bucket: testutils.TestBucket, Key: testutils.TestKey}).
		Return(&objectmeta.DeleteOutput{}, nil)

	_, err := s.service.Forget(s.ctx, &conditional.ForgetInput{Bucket: testutils.TestBucket, Key: testutils.TestKey})
	s.NoError(err)

	_, err = s.service.Forget(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}
