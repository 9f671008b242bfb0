package objectmeta

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/s3-model/internal/errors"
	"github.com/KirkDiggler/s3-model/internal/types"
)

type CodecTestSuite struct {
	suite.Suite
	storedAt time.Time
}

func TestCodecSuite(t *testing.T) {
	suite.Run(t, new(CodecTestSuite))
}

func (s *CodecTestSuite) SetupTest() {
	s.storedAt = time.Date(2024, time.March, 9, 14, 30, 0, 0, time.UTC)
}

func (s *CodecTestSuite) fullHead() *types.HeadObjectResponse {
	modified := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
	expires := modified.Add(30 * 24 * time.Hour)

	return types.NewHeadObjectResponseBuilder().
		WithAcceptRanges(aws.String("bytes")).
		WithArchiveStatus(types.ArchiveStatusFromValue(aws.String("ARCHIVE_ACCESS"))).
		WithContentLength(aws.Int64(1024)).
		WithContentType(aws.String("text/csv")).
		WithContentEncoding(aws.String("gzip")).
		WithCacheControl(aws.String("no-cache")).
		WithETag(aws.String(`"abc"`)).
		WithLastModified(&modified).
		WithExpires(&expires).
		WithDeleteMarker(aws.Bool(false)).
		WithVersionID(aws.String("3HL4kqtJlcpXroDTDmJ")).
		WithMetadata(map[string]string{"team": "billing"}).
		WithMissingMeta(aws.Int32(1)).
		WithServerSideEncryption(types.ServerSideEncryptionFromValue(aws.String("aws:kms"))).
		WithSSEKMSKeyID(aws.String("arn:aws:kms:us-east-1:111122223333:key/k")).
		WithBucketKeyEnabled(aws.Bool(true)).
		WithStorageClass(types.StorageClassFromValue(aws.String("STANDARD_IA"))).
		WithRequestCharged(types.RequestChargedFromValue(aws.String("requester"))).
		WithReplicationStatus(types.ReplicationStatusFromValue(aws.String("REPLICA"))).
		WithPartsCount(aws.Int32(3)).
		WithChecksumCRC32(aws.String("AAAAAA==")).
		WithChecksumSHA256(aws.String("47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU=")).
		Build()
}

func (s *CodecTestSuite) TestRoundTripKeepsEveryField() {
	head := s.fullHead()

	raw, err := marshalSnapshot(head, s.storedAt)
	s.Require().NoError(err)

	got, storedAt, err := unmarshalSnapshot(raw)
	s.Require().NoError(err)
	s.True(head.Equal(got), "want %s\ngot  %s", head, got)
	s.Equal(head.Hash(), got.Hash())
	s.True(s.storedAt.Equal(storedAt))
}

func (s *CodecTestSuite) TestEnumsStoredByWireString() {
	raw, err := marshalSnapshot(s.fullHead(), s.storedAt)
	s.Require().NoError(err)

	var data snapshotData
	s.Require().NoError(json.Unmarshal(raw, &data))
	s.Equal("STANDARD_IA", *data.StorageClass)
	s.Equal("aws:kms", *data.ServerSideEncryption)
	s.Equal(snapshotVersion, data.Version)
}

func (s *CodecTestSuite) TestUnknownSymbolRoundTrips() {
	head := types.NewHeadObjectResponseBuilder().
		WithStorageClass(types.StorageClassFromValue(aws.String("GLACIER_PLUS"))).
		Build()

	raw, err := marshalSnapshot(head, s.storedAt)
	s.Require().NoError(err)

	var data snapshotData
	s.Require().NoError(json.Unmarshal(raw, &data))
	s.Equal(types.UnknownSymbol, *data.StorageClass)

	got, _, err := unmarshalSnapshot(raw)
	s.Require().NoError(err)
	s.True(head.Equal(got))
}

func (s *CodecTestSuite) TestAbsentFieldsAreOmitted() {
	raw, err := marshalSnapshot(types.NewHeadObjectResponseBuilder().Build(), s.storedAt)
	s.Require().NoError(err)
	s.JSONEq(`{"v":1,"stored_at":"2024-03-09T14:30:00Z"}`, string(raw))

	got, _, err := unmarshalSnapshot(raw)
	s.Require().NoError(err)
	s.Equal("HeadObjectResponse()", got.String())
}

func (s *CodecTestSuite) TestRejectsOtherVersions() {
	_, _, err := unmarshalSnapshot([]byte(`{"v":2}`))
	s.Require().Error(err)
	s.Contains(err.Error(), "unsupported snapshot version 2")
	s.True(errors.IsFailedPrecondition(err))
}
