package objectmeta_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/s3-model/internal/errors"
	"github.com/KirkDiggler/s3-model/internal/pkg/clock"
	"github.com/KirkDiggler/s3-model/internal/redis"
	"github.com/KirkDiggler/s3-model/internal/repositories/objectmeta"
	"github.com/KirkDiggler/s3-model/internal/testutils"
	"github.com/KirkDiggler/s3-model/internal/testutils/builders"
	"github.com/KirkDiggler/s3-model/internal/types"
)

type lookup struct {
	backend string
	result  string
}

type fakeRecorder struct {
	lookups []lookup
}

func (r *fakeRecorder) CacheLookup(backend, result string) {
	r.lookups = append(r.lookups, lookup{backend, result})
}

type RedisObjectMetaTestSuite struct {
	suite.Suite
	client   redis.Client
	mr       *miniredis.Miniredis
	clock    *clock.Fixed
	recorder *fakeRecorder
	repo     objectmeta.Repository
	ctx      context.Context
}

func TestRedisObjectMetaSuite(t *testing.T) {
	suite.Run(t, new(RedisObjectMetaTestSuite))
}

func (s *RedisObjectMetaTestSuite) SetupTest() {
	s.client, s.mr = testutils.CreateTestRedisClient(s.T())
	s.clock = clock.NewFixed(testutils.TestTime)
	s.recorder = &fakeRecorder{}
	s.ctx = context.Background()

	repo, err := objectmeta.NewRedis(&objectmeta.RedisConfig{
		Client:   s.client,
		TTL:      time.Hour,
		Clock:    s.clock,
		Recorder: s.recorder,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisObjectMetaTestSuite) TestNewRedis() {
	testCases := []struct {
		name    string
		config  *objectmeta.RedisConfig
		wantErr bool
		errMsg  string
	}{
		{
			name:   "success with valid config",
			config: &objectmeta.RedisConfig{Client: s.client},
		},
		{
			name:    "error with nil config",
			wantErr: true,
			errMsg:  "config cannot be nil",
		},
		{
			name:    "error with nil client",
			config:  &objectmeta.RedisConfig{},
			wantErr: true,
			errMsg:  "client cannot be nil",
		},
		{
			name:    "error with negative ttl",
			config:  &objectmeta.RedisConfig{Client: s.client, TTL: -time.Second},
			wantErr: true,
			errMsg:  "ttl cannot be negative",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := objectmeta.NewRedis(tc.config)

			if tc.wantErr {
				s.Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.True(errors.IsInvalidArgument(err))
				s.Nil(repo)
			} else {
				s.NoError(err)
				s.NotNil(repo)
			}
		})
	}
}

func (s *RedisObjectMetaTestSuite) TestPutThenGet() {
	head := builders.NewHeadObjectBuilder().Build()

	put, err := s.repo.Put(s.ctx, objectmeta.PutInput{
		Bucket: testutils.TestBucket,
		Key:    testutils.TestKey,
		Head:   head,
	})
	s.Require().NoError(err)
	s.Equal(testutils.TestTime, put.StoredAt)
	s.True(s.mr.Exists(objectmeta.Key(testutils.TestBucket, testutils.TestKey)))
	s.Equal(time.Hour, s.mr.TTL(objectmeta.Key(testutils.TestBucket, testutils.TestKey)))

	got, err := s.repo.Get(s.ctx, objectmeta.GetInput{Bucket: testutils.TestBucket, Key: testutils.TestKey})
	s.Require().NoError(err)
	s.True(head.Equal(got.Head), got.Head.String())
	s.True(testutils.TestTime.Equal(got.StoredAt))
	s.Equal([]lookup{{objectmeta.BackendRedis, objectmeta.ResultHit}}, s.recorder.lookups)
}

func (s *RedisObjectMetaTestSuite) TestPutReplacesSnapshot() {
	first := builders.NewHeadObjectBuilder().WithETag(`"first"`).Build()
	second := builders.NewHeadObjectBuilder().WithETag(`"second"`).Build()

	for _, head := range []*types.HeadObjectResponse{first, second} {
		_, err := s.repo.Put(s.ctx, objectmeta.PutInput{Bucket: testutils.TestBucket, Key: testutils.TestKey, Head: head})
		s.Require().NoError(err)
	}

	got, err := s.repo.Get(s.ctx, objectmeta.GetInput{Bucket: testutils.TestBucket, Key: testutils.TestKey})
	s.Require().NoError(err)
	etag, _ := got.Head.ETag()
	s.Equal(`"second"`, etag)
}

func (s *RedisObjectMetaTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, objectmeta.GetInput{Bucket: testutils.TestBucket, Key: "absent"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal([]lookup{{objectmeta.BackendRedis, objectmeta.ResultMiss}}, s.recorder.lookups)
}

func (s *RedisObjectMetaTestSuite) TestSnapshotExpires() {
	_, err := s.repo.Put(s.ctx, objectmeta.PutInput{
		Bucket: testutils.TestBucket,
		Key:    testutils.TestKey,
		Head:   builders.NewHeadObjectBuilder().Build(),
	})
	s.Require().NoError(err)

	s.mr.FastForward(time.Hour + time.Second)

	_, err = s.repo.Get(s.ctx, objectmeta.GetInput{Bucket: testutils.TestBucket, Key: testutils.TestKey})
	s.True(errors.IsNotFound(err))
}

func (s *RedisObjectMetaTestSuite) TestDelete() {
	_, err := s.repo.Put(s.ctx, objectmeta.PutInput{
		Bucket: testutils.TestBucket,
		Key:    testutils.TestKey,
		Head:   builders.NewHeadObjectBuilder().Build(),
	})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, objectmeta.DeleteInput{Bucket: testutils.TestBucket, Key: testutils.TestKey})
	s.Require().NoError(err)
	s.False(s.mr.Exists(objectmeta.Key(testutils.TestBucket, testutils.TestKey)))

	_, err = s.repo.Delete(s.ctx, objectmeta.DeleteInput{Bucket: testutils.TestBucket, Key: testutils.TestKey})
	s.NoError(err)
}

func (s *RedisObjectMetaTestSuite) TestValidation() {
	_, err := s.repo.Put(s.ctx, objectmeta.PutInput{Key: testutils.TestKey, Head: builders.NewHeadObjectBuilder().Build()})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, objectmeta.PutInput{Bucket: testutils.TestBucket, Key: testutils.TestKey})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, objectmeta.GetInput{Bucket: testutils.TestBucket})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, objectmeta.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisObjectMetaTestSuite) TestUnknownStorageClassIsPreserved() {
	head := builders.NewHeadObjectBuilder().WithStorageClass("GLACIER_PLUS").Build()

	_, err := s.repo.Put(s.ctx, objectmeta.PutInput{Bucket: testutils.TestBucket, Key: testutils.TestKey, Head: head})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, objectmeta.GetInput{Bucket: testutils.TestBucket, Key: testutils.TestKey})
	s.Require().NoError(err)
	class, ok := got.Head.StorageClass()
	s.True(ok)
	s.Equal(types.StorageClassUnknownToSDKVersion, class)
}

func (s *RedisObjectMetaTestSuite) TestUnreadableSnapshotIsMiss() {
	testCases := []struct {
		name  string
		raw   string
		cause string
	}{
		{name: "corrupt json", raw: "not json", cause: "failed to unmarshal"},
		{name: "unsupported version", raw: `{"v":99}`, cause: "unsupported snapshot version 99"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.recorder.lookups = nil
			location := objectmeta.Key(testutils.TestBucket, testutils.TestKey)
			s.Require().NoError(s.mr.Set(location, tc.raw))

			_, err := s.repo.Get(s.ctx, objectmeta.GetInput{Bucket: testutils.TestBucket, Key: testutils.TestKey})
			s.Require().Error(err)
			s.True(errors.IsNotFound(err))
			s.Contains(err.Error(), tc.cause)
			s.Equal(true, errors.GetMeta(err)["unreadable"])
			s.Equal([]lookup{{objectmeta.BackendRedis, objectmeta.ResultMiss}}, s.recorder.lookups)
			s.True(s.mr.Exists(location))
		})
	}
}

func (s *RedisObjectMetaTestSuite) TestEmptyMetadataSurvives() {
	head := types.NewHeadObjectResponseBuilder().
		WithETag(aws.String(`"e"`)).
		WithMetadata(map[string]string{}).
		Build()
	absent := types.NewHeadObjectResponseBuilder().WithETag(aws.String(`"e"`)).Build()

	_, err := s.repo.Put(s.ctx, objectmeta.PutInput{Bucket: testutils.TestBucket, Key: "empty", Head: head})
	s.Require().NoError(err)
	_, err = s.repo.Put(s.ctx, objectmeta.PutInput{Bucket: testutils.TestBucket, Key: "absent", Head: absent})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, objectmeta.GetInput{Bucket: testutils.TestBucket, Key: "empty"})
	s.Require().NoError(err)
	metadata, ok := got.Head.Metadata()
	s.True(ok)
	s.Empty(metadata)
	s.True(head.Equal(got.Head))

	got, err = s.repo.Get(s.ctx, objectmeta.GetInput{Bucket: testutils.TestBucket, Key: "absent"})
	s.Require().NoError(err)
	_, ok = got.Head.Metadata()
	s.False(ok)
	s.True(absent.Equal(got.Head))
}
