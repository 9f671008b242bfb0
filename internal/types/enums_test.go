package types_test

import (
	"sort"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/s3-model/internal/errors"
	"github.com/KirkDiggler/s3-model/internal/types"
)

type EnumsTestSuite struct {
	suite.Suite
}

func TestEnumsSuite(t *testing.T) {
	suite.Run(t, new(EnumsTestSuite))
}

type wireEnum interface {
	comparable
	WireString() (string, bool)
	Encode() (string, error)
	String() string
}

func assertVocabulary[S wireEnum](s *EnumsTestSuite, known []S, fromValue func(*string) *S, unknown S) {
	s.Require().NotEmpty(known)

	seen := make(map[S]bool, len(known))
	for _, sym := range known {
		s.False(seen[sym], "duplicate symbol %v", sym)
		seen[sym] = true
		s.NotEqual(unknown, sym)

		wire, ok := sym.WireString()
		s.Require().True(ok)
		s.Equal(wire, sym.String())

		got := fromValue(&wire)
		s.Require().NotNil(got)
		s.Equal(sym, *got)

		encoded, err := sym.Encode()
		s.Require().NoError(err)
		s.Equal(wire, encoded)
	}

	s.Nil(fromValue(nil))

	got := fromValue(aws.String("some-unmapped-string"))
	s.Require().NotNil(got)
	s.Equal(unknown, *got)

	_, ok := unknown.WireString()
	s.False(ok)
	s.Equal(types.UnknownSymbol, unknown.String())

	_, err := unknown.Encode()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *EnumsTestSuite) TestEveryVocabulary() {
	testCases := []struct {
		name  string
		check func()
	}{
		{"BucketVersioningStatus", func() {
			assertVocabulary(s, types.BucketVersioningStatusKnownValues(), types.BucketVersioningStatusFromValue, types.BucketVersioningStatusUnknownToSDKVersion)
		}},
		{"MFADeleteStatus", func() {
			assertVocabulary(s, types.MFADeleteStatusKnownValues(), types.MFADeleteStatusFromValue, types.MFADeleteStatusUnknownToSDKVersion)
		}},
		{"MFADelete", func() {
			assertVocabulary(s, types.MFADeleteKnownValues(), types.MFADeleteFromValue, types.MFADeleteUnknownToSDKVersion)
		}},
		{"StorageClass", func() {
			assertVocabulary(s, types.StorageClassKnownValues(), types.StorageClassFromValue, types.StorageClassUnknownToSDKVersion)
		}},
		{"ObjectStorageClass", func() {
			assertVocabulary(s, types.ObjectStorageClassKnownValues(), types.ObjectStorageClassFromValue, types.ObjectStorageClassUnknownToSDKVersion)
		}},
		{"BucketCannedACL", func() {
			assertVocabulary(s, types.BucketCannedACLKnownValues(), types.BucketCannedACLFromValue, types.BucketCannedACLUnknownToSDKVersion)
		}},
		{"ObjectCannedACL", func() {
			assertVocabulary(s, types.ObjectCannedACLKnownValues(), types.ObjectCannedACLFromValue, types.ObjectCannedACLUnknownToSDKVersion)
		}},
		{"EncodingType", func() {
			assertVocabulary(s, types.EncodingTypeKnownValues(), types.EncodingTypeFromValue, types.EncodingTypeUnknownToSDKVersion)
		}},
		{"ServerSideEncryption", func() {
			assertVocabulary(s, types.ServerSideEncryptionKnownValues(), types.ServerSideEncryptionFromValue, types.ServerSideEncryptionUnknownToSDKVersion)
		}},
		{"RequestCharged", func() {
			assertVocabulary(s, types.RequestChargedKnownValues(), types.RequestChargedFromValue, types.RequestChargedUnknownToSDKVersion)
		}},
		{"RequestPayer", func() {
			assertVocabulary(s, types.RequestPayerKnownValues(), types.RequestPayerFromValue, types.RequestPayerUnknownToSDKVersion)
		}},
		{"BucketLocationConstraint", func() {
			assertVocabulary(s, types.BucketLocationConstraintKnownValues(), types.BucketLocationConstraintFromValue, types.BucketLocationConstraintUnknownToSDKVersion)
		}},
		{"ChecksumAlgorithm", func() {
			assertVocabulary(s, types.ChecksumAlgorithmKnownValues(), types.ChecksumAlgorithmFromValue, types.ChecksumAlgorithmUnknownToSDKVersion)
		}},
		{"TaggingDirective", func() {
			assertVocabulary(s, types.TaggingDirectiveKnownValues(), types.TaggingDirectiveFromValue, types.TaggingDirectiveUnknownToSDKVersion)
		}},
		{"MetadataDirective", func() {
			assertVocabulary(s, types.MetadataDirectiveKnownValues(), types.MetadataDirectiveFromValue, types.MetadataDirectiveUnknownToSDKVersion)
		}},
		{"ArchiveStatus", func() {
			assertVocabulary(s, types.ArchiveStatusKnownValues(), types.ArchiveStatusFromValue, types.ArchiveStatusUnknownToSDKVersion)
		}},
		{"IntelligentTieringAccessTier", func() {
			assertVocabulary(s, types.IntelligentTieringAccessTierKnownValues(), types.IntelligentTieringAccessTierFromValue, types.IntelligentTieringAccessTierUnknownToSDKVersion)
		}},
		{"ReplicationStatus", func() {
			assertVocabulary(s, types.ReplicationStatusKnownValues(), types.ReplicationStatusFromValue, types.ReplicationStatusUnknownToSDKVersion)
		}},
		{"ObjectOwnership", func() {
			assertVocabulary(s, types.ObjectOwnershipKnownValues(), types.ObjectOwnershipFromValue, types.ObjectOwnershipUnknownToSDKVersion)
		}},
	}

	s.Len(testCases, len(types.Vocabularies()))

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, ok := types.LookupVocabulary(tc.name)
			s.True(ok)
			tc.check()
		})
	}
}

func (s *EnumsTestSuite) TestVersioningStatusFromValue() {
	enabled := types.BucketVersioningStatusFromValue(aws.String("Enabled"))
	s.Require().NotNil(enabled)
	s.Equal(types.BucketVersioningStatusEnabled, *enabled)

	paused := types.BucketVersioningStatusFromValue(aws.String("Paused"))
	s.Require().NotNil(paused)
	s.Equal(types.BucketVersioningStatusUnknownToSDKVersion, *paused)

	s.Nil(types.BucketVersioningStatusFromValue(nil))
}

func (s *EnumsTestSuite) TestWireStringsAreCaseSensitive() {
	s.Equal(types.BucketVersioningStatusUnknownToSDKVersion, types.ParseBucketVersioningStatus("enabled"))
	s.Equal(types.StorageClassUnknownToSDKVersion, types.ParseStorageClass("standard"))
	s.Equal(types.StorageClassStandardIa, types.ParseStorageClass("STANDARD_IA"))
	s.Equal(types.ServerSideEncryptionAwsKmsDsse, types.ParseServerSideEncryption("aws:kms:dsse"))
	s.Equal(types.BucketLocationConstraintEu, types.ParseBucketLocationConstraint("EU"))
}

func (s *EnumsTestSuite) TestZeroValueIsUnknown() {
	var class types.StorageClass
	s.Equal(types.StorageClassUnknownToSDKVersion, class)
	s.Equal(types.UnknownSymbol, class.String())
}

func (s *EnumsTestSuite) TestSwitchNeedsDefaultArm() {
	describe := func(status types.BucketVersioningStatus) string {
		switch status {
		case types.BucketVersioningStatusEnabled:
			return "on"
		case types.BucketVersioningStatusSuspended:
			return "off"
		default:
			return "unknown"
		}
	}

	s.Equal("on", describe(types.ParseBucketVersioningStatus("Enabled")))
	s.Equal("unknown", describe(types.ParseBucketVersioningStatus("Archived")))
}

func (s *EnumsTestSuite) TestVocabulariesRegistry() {
	vocabs := types.Vocabularies()

	names := make([]string, len(vocabs))
	for i, v := range vocabs {
		names[i] = v.Name()
		s.NotEmpty(v.KnownWireStrings(), v.Name())
	}
	s.True(sort.StringsAreSorted(names))

	d, ok := types.LookupVocabulary("ObjectCannedACL")
	s.Require().True(ok)
	symbol, known := d.Describe("bucket-owner-full-control")
	s.True(known)
	s.Equal("bucket-owner-full-control", symbol)

	symbol, known = d.Describe("bucket-owner-only")
	s.False(known)
	s.Equal(types.UnknownSymbol, symbol)

	_, ok = types.LookupVocabulary("Nope")
	s.False(ok)
}

func (s *EnumsTestSuite) TestKnownValuesAreCopies() {
	values := types.ChecksumAlgorithmKnownValues()
	values[0] = types.ChecksumAlgorithmUnknownToSDKVersion
	s.NotContains(types.ChecksumAlgorithmKnownValues(), types.ChecksumAlgorithmUnknownToSDKVersion)
}
