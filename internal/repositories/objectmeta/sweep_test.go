package objectmeta_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/s3-model/internal/errors"
	"github.com/KirkDiggler/s3-model/internal/repositories/objectmeta"
	"github.com/KirkDiggler/s3-model/internal/testutils"
	"github.com/KirkDiggler/s3-model/internal/testutils/builders"
)

type SweepTestSuite struct {
	suite.Suite
}

func TestSweepSuite(t *testing.T) {
	suite.Run(t, new(SweepTestSuite))
}

func (s *SweepTestSuite) TestRemovesUnreadableSnapshots() {
	ctx := context.Background()
	client, mr := testutils.CreateTestRedisClient(s.T())

	repo, err := objectmeta.NewRedis(&objectmeta.RedisConfig{Client: client})
	s.Require().NoError(err)
	_, err = repo.Put(ctx, objectmeta.PutInput{
		Bucket: testutils.TestBucket,
		Key:    "good",
		Head:   builders.NewHeadObjectBuilder().Build(),
	})
	s.Require().NoError(err)

	s.Require().NoError(mr.Set(objectmeta.Key(testutils.TestBucket, "old"), `{"v":0}`))
	s.Require().NoError(mr.Set(objectmeta.Key(testutils.TestBucket, "broken"), `{`))
	s.Require().NoError(mr.Set("unrelated", `{`))

	out, err := objectmeta.Sweep(ctx, objectmeta.SweepInput{Client: client, DryRun: true})
	s.Require().NoError(err)
	s.Equal(3, out.Checked)
	s.ElementsMatch([]string{
		objectmeta.Key(testutils.TestBucket, "old"),
		objectmeta.Key(testutils.TestBucket, "broken"),
	}, out.Unreadable)
	s.Equal(0, out.Deleted)
	s.True(mr.Exists(objectmeta.Key(testutils.TestBucket, "old")))

	out, err = objectmeta.Sweep(ctx, objectmeta.SweepInput{Client: client})
	s.Require().NoError(err)
	s.Equal(2, out.Deleted)
	s.False(mr.Exists(objectmeta.Key(testutils.TestBucket, "old")))
	s.True(mr.Exists(objectmeta.Key(testutils.TestBucket, "good")))
	s.True(mr.Exists("unrelated"))
}

func (s *SweepTestSuite) TestRequiresClient() {
	_, err := objectmeta.Sweep(context.Background(), objectmeta.SweepInput{})
	s.True(errors.IsInvalidArgument(err))
}
