package types_test

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/KirkDiggler/s3-model/internal/types"
)

var populatedTime = time.Date(2024, time.March, 9, 14, 30, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

func populatedTag() *types.Tag {
	return types.NewTagBuilder().
		WithKey(aws.String("tag-key")).
		WithValue(aws.String("tag-value")).
		Build()
}

func populatedTagging() *types.Tagging {
	return types.NewTaggingBuilder().
		WithTagSet([]*types.Tag{populatedTag(), populatedTag()}).
		Build()
}

func populatedOwner() *types.Owner {
	return types.NewOwnerBuilder().
		WithDisplayName(aws.String("owner-displayname")).
		WithID(aws.String("owner-id")).
		Build()
}

func populatedBucket() *types.Bucket {
	return types.NewBucketBuilder().
		WithName(aws.String("bucket-name")).
		WithCreationDate(aws.Time(populatedTime)).
		WithBucketRegion(aws.String("bucket-bucketregion")).
		Build()
}

func populatedObject() *types.Object {
	return types.NewObjectBuilder().
		WithKey(aws.String("object-key")).
		WithLastModified(aws.Time(populatedTime)).
		WithETag(aws.String("object-etag")).
		WithChecksumAlgorithm(types.ChecksumAlgorithmKnownValues()).
		WithSize(aws.Int64(42)).
		WithStorageClass(ptr(types.ObjectStorageClassKnownValues()[0])).
		WithOwner(populatedOwner()).
		Build()
}

func populatedCommonPrefix() *types.CommonPrefix {
	return types.NewCommonPrefixBuilder().
		WithPrefix(aws.String("commonprefix-prefix")).
		Build()
}

func populatedVersioningConfiguration() *types.VersioningConfiguration {
	return types.NewVersioningConfigurationBuilder().
		WithStatus(ptr(types.BucketVersioningStatusKnownValues()[0])).
		WithMFADelete(ptr(types.MFADeleteKnownValues()[0])).
		Build()
}

func populatedCreateBucketConfiguration() *types.CreateBucketConfiguration {
	return types.NewCreateBucketConfigurationBuilder().
		WithLocationConstraint(ptr(types.BucketLocationConstraintKnownValues()[0])).
		Build()
}

func populatedCopyObjectResult() *types.CopyObjectResult {
	return types.NewCopyObjectResultBuilder().
		WithETag(aws.String("copyobjectresult-etag")).
		WithLastModified(aws.Time(populatedTime)).
		WithChecksumCRC32(aws.String("copyobjectresult-checksumcrc32")).
		WithChecksumSHA256(aws.String("copyobjectresult-checksumsha256")).
		Build()
}

func populatedCreateBucketRequest() *types.CreateBucketRequest {
	return types.NewCreateBucketRequestBuilder().
		WithBucket(aws.String("createbucketrequest-bucket")).
		WithACL(ptr(types.BucketCannedACLKnownValues()[0])).
		WithCreateBucketConfiguration(populatedCreateBucketConfiguration()).
		WithGrantFullControl(aws.String("createbucketrequest-grantfullcontrol")).
		WithGrantRead(aws.String("createbucketrequest-grantread")).
		WithGrantWrite(aws.String("createbucketrequest-grantwrite")).
		WithObjectLockEnabledForBucket(aws.Bool(true)).
		WithObjectOwnership(ptr(types.ObjectOwnershipKnownValues()[0])).
		Build()
}

func populatedCreateBucketResponse() *types.CreateBucketResponse {
	return types.NewCreateBucketResponseBuilder().
		WithLocation(aws.String("createbucketresponse-location")).
		Build()
}

func populatedDeleteBucketRequest() *types.DeleteBucketRequest {
	return types.NewDeleteBucketRequestBuilder().
		WithBucket(aws.String("deletebucketrequest-bucket")).
		WithExpectedBucketOwner(aws.String("deletebucketrequest-expectedbucketowner")).
		Build()
}

func populatedHeadBucketRequest() *types.HeadBucketRequest {
	return types.NewHeadBucketRequestBuilder().
		WithBucket(aws.String("headbucketrequest-bucket")).
		WithExpectedBucketOwner(aws.String("headbucketrequest-expectedbucketowner")).
		Build()
}

func populatedHeadBucketResponse() *types.HeadBucketResponse {
	return types.NewHeadBucketResponseBuilder().
		WithBucketRegion(aws.String("headbucketresponse-bucketregion")).
		WithAccessPointAlias(aws.Bool(true)).
		Build()
}

func populatedListBucketsRequest() *types.ListBucketsRequest {
	return types.NewListBucketsRequestBuilder().
		WithMaxBuckets(aws.Int32(7)).
		WithContinuationToken(aws.String("listbucketsrequest-continuationtoken")).
		WithPrefix(aws.String("listbucketsrequest-prefix")).
		WithBucketRegion(aws.String("listbucketsrequest-bucketregion")).
		Build()
}

func populatedListBucketsResponse() *types.ListBucketsResponse {
	return types.NewListBucketsResponseBuilder().
		WithBuckets([]*types.Bucket{populatedBucket(), populatedBucket()}).
		WithOwner(populatedOwner()).
		WithContinuationToken(aws.String("listbucketsresponse-continuationtoken")).
		WithPrefix(aws.String("listbucketsresponse-prefix")).
		Build()
}

func populatedGetBucketVersioningRequest() *types.GetBucketVersioningRequest {
	return types.NewGetBucketVersioningRequestBuilder().
		WithBucket(aws.String("getbucketversioningrequest-bucket")).
		WithExpectedBucketOwner(aws.String("getbucketversioningrequest-expectedbucketowner")).
		Build()
}

func populatedGetBucketVersioningResponse() *types.GetBucketVersioningResponse {
	return types.NewGetBucketVersioningResponseBuilder().
		WithStatus(ptr(types.BucketVersioningStatusKnownValues()[0])).
		WithMFADelete(ptr(types.MFADeleteStatusKnownValues()[0])).
		Build()
}

func populatedPutBucketVersioningRequest() *types.PutBucketVersioningRequest {
	return types.NewPutBucketVersioningRequestBuilder().
		WithBucket(aws.String("putbucketversioningrequest-bucket")).
		WithChecksumAlgorithm(ptr(types.ChecksumAlgorithmKnownValues()[0])).
		WithContentMD5(aws.String("putbucketversioningrequest-contentmd5")).
		WithMFA(aws.String("putbucketversioningrequest-mfa")).
		WithVersioningConfiguration(populatedVersioningConfiguration()).
		WithExpectedBucketOwner(aws.String("putbucketversioningrequest-expectedbucketowner")).
		Build()
}

func populatedGetObjectTaggingRequest() *types.GetObjectTaggingRequest {
	return types.NewGetObjectTaggingRequestBuilder().
		WithBucket(aws.String("getobjecttaggingrequest-bucket")).
		WithKey(aws.String("getobjecttaggingrequest-key")).
		WithVersionID(aws.String("getobjecttaggingrequest-versionid")).
		WithExpectedBucketOwner(aws.String("getobjecttaggingrequest-expectedbucketowner")).
		WithRequestPayer(ptr(types.RequestPayerKnownValues()[0])).
		Build()
}

func populatedGetObjectTaggingResponse() *types.GetObjectTaggingResponse {
	return types.NewGetObjectTaggingResponseBuilder().
		WithVersionID(aws.String("getobjecttaggingresponse-versionid")).
		WithTagSet([]*types.Tag{populatedTag(), populatedTag()}).
		Build()
}

func populatedPutObjectTaggingRequest() *types.PutObjectTaggingRequest {
	return types.NewPutObjectTaggingRequestBuilder().
		WithBucket(aws.String("putobjecttaggingrequest-bucket")).
		WithKey(aws.String("putobjecttaggingrequest-key")).
		WithVersionID(aws.String("putobjecttaggingrequest-versionid")).
		WithContentMD5(aws.String("putobjecttaggingrequest-contentmd5")).
		WithChecksumAlgorithm(ptr(types.ChecksumAlgorithmKnownValues()[0])).
		WithTagging(populatedTagging()).
		WithExpectedBucketOwner(aws.String("putobjecttaggingrequest-expectedbucketowner")).
		WithRequestPayer(ptr(types.RequestPayerKnownValues()[0])).
		Build()
}

func populatedPutObjectTaggingResponse() *types.PutObjectTaggingResponse {
	return types.NewPutObjectTaggingResponseBuilder().
		WithVersionID(aws.String("putobjecttaggingresponse-versionid")).
		Build()
}

func populatedPutBucketTaggingRequest() *types.PutBucketTaggingRequest {
	return types.NewPutBucketTaggingRequestBuilder().
		WithBucket(aws.String("putbuckettaggingrequest-bucket")).
		WithContentMD5(aws.String("putbuckettaggingrequest-contentmd5")).
		WithChecksumAlgorithm(ptr(types.ChecksumAlgorithmKnownValues()[0])).
		WithTagging(populatedTagging()).
		WithExpectedBucketOwner(aws.String("putbuckettaggingrequest-expectedbucketowner")).
		Build()
}

func populatedDeleteBucketTaggingRequest() *types.DeleteBucketTaggingRequest {
	return types.NewDeleteBucketTaggingRequestBuilder().
		WithBucket(aws.String("deletebuckettaggingrequest-bucket")).
		WithExpectedBucketOwner(aws.String("deletebuckettaggingrequest-expectedbucketowner")).
		Build()
}

func populatedHeadObjectRequest() *types.HeadObjectRequest {
	return types.NewHeadObjectRequestBuilder().
		WithBucket(aws.String("headobjectrequest-bucket")).
		WithKey(aws.String("headobjectrequest-key")).
		WithVersionID(aws.String("headobjectrequest-versionid")).
		WithIfMatch(aws.String("headobjectrequest-ifmatch")).
		WithIfNoneMatch(aws.String("headobjectrequest-ifnonematch")).
		WithIfModifiedSince(aws.Time(populatedTime)).
		WithIfUnmodifiedSince(aws.Time(populatedTime)).
		WithRange(aws.String("headobjectrequest-range")).
		WithPartNumber(aws.Int32(7)).
		WithSSECustomerAlgorithm(aws.String("headobjectrequest-ssecustomeralgorithm")).
		WithSSECustomerKey(aws.String("headobjectrequest-ssecustomerkey")).
		WithSSECustomerKeyMD5(aws.String("headobjectrequest-ssecustomerkeymd5")).
		WithRequestPayer(ptr(types.RequestPayerKnownValues()[0])).
		WithExpectedBucketOwner(aws.String("headobjectrequest-expectedbucketowner")).
		Build()
}

func populatedHeadObjectResponse() *types.HeadObjectResponse {
	return types.NewHeadObjectResponseBuilder().
		WithAcceptRanges(aws.String("headobjectresponse-acceptranges")).
		WithArchiveStatus(ptr(types.ArchiveStatusKnownValues()[0])).
		WithContentLength(aws.Int64(42)).
		WithContentType(aws.String("headobjectresponse-contenttype")).
		WithContentEncoding(aws.String("headobjectresponse-contentencoding")).
		WithCacheControl(aws.String("headobjectresponse-cachecontrol")).
		WithETag(aws.String("headobjectresponse-etag")).
		WithLastModified(aws.Time(populatedTime)).
		WithExpires(aws.Time(populatedTime)).
		WithDeleteMarker(aws.Bool(true)).
		WithVersionID(aws.String("headobjectresponse-versionid")).
		WithMetadata(map[string]string{"color": "blue", "owner": "ops"}).
		WithMissingMeta(aws.Int32(7)).
		WithServerSideEncryption(ptr(types.ServerSideEncryptionKnownValues()[0])).
		WithSSEKMSKeyID(aws.String("headobjectresponse-ssekmskeyid")).
		WithBucketKeyEnabled(aws.Bool(true)).
		WithStorageClass(ptr(types.StorageClassKnownValues()[0])).
		WithRequestCharged(ptr(types.RequestChargedKnownValues()[0])).
		WithReplicationStatus(ptr(types.ReplicationStatusKnownValues()[0])).
		WithPartsCount(aws.Int32(7)).
		WithChecksumCRC32(aws.String("headobjectresponse-checksumcrc32")).
		WithChecksumSHA256(aws.String("headobjectresponse-checksumsha256")).
		Build()
}

func populatedGetObjectRequest() *types.GetObjectRequest {
	return types.NewGetObjectRequestBuilder().
		WithBucket(aws.String("getobjectrequest-bucket")).
		WithKey(aws.String("getobjectrequest-key")).
		WithVersionID(aws.String("getobjectrequest-versionid")).
		WithIfMatch(aws.String("getobjectrequest-ifmatch")).
		WithIfNoneMatch(aws.String("getobjectrequest-ifnonematch")).
		WithIfModifiedSince(aws.Time(populatedTime)).
		WithIfUnmodifiedSince(aws.Time(populatedTime)).
		WithRange(aws.String("getobjectrequest-range")).
		WithPartNumber(aws.Int32(7)).
		WithResponseContentType(aws.String("getobjectrequest-responsecontenttype")).
		WithResponseCacheControl(aws.String("getobjectrequest-responsecachecontrol")).
		WithSSECustomerAlgorithm(aws.String("getobjectrequest-ssecustomeralgorithm")).
		WithSSECustomerKey(aws.String("getobjectrequest-ssecustomerkey")).
		WithSSECustomerKeyMD5(aws.String("getobjectrequest-ssecustomerkeymd5")).
		WithRequestPayer(ptr(types.RequestPayerKnownValues()[0])).
		WithExpectedBucketOwner(aws.String("getobjectrequest-expectedbucketowner")).
		Build()
}

func populatedDeleteObjectRequest() *types.DeleteObjectRequest {
	return types.NewDeleteObjectRequestBuilder().
		WithBucket(aws.String("deleteobjectrequest-bucket")).
		WithKey(aws.String("deleteobjectrequest-key")).
		WithVersionID(aws.String("deleteobjectrequest-versionid")).
		WithMFA(aws.String("deleteobjectrequest-mfa")).
		WithBypassGovernanceRetention(aws.Bool(true)).
		WithRequestPayer(ptr(types.RequestPayerKnownValues()[0])).
		WithExpectedBucketOwner(aws.String("deleteobjectrequest-expectedbucketowner")).
		WithIfMatch(aws.String("deleteobjectrequest-ifmatch")).
		Build()
}

func populatedDeleteObjectResponse() *types.DeleteObjectResponse {
	return types.NewDeleteObjectResponseBuilder().
		WithDeleteMarker(aws.Bool(true)).
		WithVersionID(aws.String("deleteobjectresponse-versionid")).
		WithRequestCharged(ptr(types.RequestChargedKnownValues()[0])).
		Build()
}

func populatedCopyObjectRequest() *types.CopyObjectRequest {
	return types.NewCopyObjectRequestBuilder().
		WithBucket(aws.String("copyobjectrequest-bucket")).
		WithKey(aws.String("copyobjectrequest-key")).
		WithCopySource(aws.String("copyobjectrequest-copysource")).
		WithCopySourceIfMatch(aws.String("copyobjectrequest-copysourceifmatch")).
		WithCopySourceIfNoneMatch(aws.String("copyobjectrequest-copysourceifnonematch")).
		WithCopySourceIfModifiedSince(aws.Time(populatedTime)).
		WithCopySourceIfUnmodifiedSince(aws.Time(populatedTime)).
		WithACL(ptr(types.ObjectCannedACLKnownValues()[0])).
		WithStorageClass(ptr(types.StorageClassKnownValues()[0])).
		WithMetadataDirective(ptr(types.MetadataDirectiveKnownValues()[0])).
		WithMetadata(map[string]string{"color": "blue", "owner": "ops"}).
		WithTaggingDirective(ptr(types.TaggingDirectiveKnownValues()[0])).
		WithTagging(aws.String("copyobjectrequest-tagging")).
		WithServerSideEncryption(ptr(types.ServerSideEncryptionKnownValues()[0])).
		WithSSEKMSKeyID(aws.String("copyobjectrequest-ssekmskeyid")).
		WithChecksumAlgorithm(ptr(types.ChecksumAlgorithmKnownValues()[0])).
		WithRequestPayer(ptr(types.RequestPayerKnownValues()[0])).
		WithExpectedBucketOwner(aws.String("copyobjectrequest-expectedbucketowner")).
		WithExpectedSourceBucketOwner(aws.String("copyobjectrequest-expectedsourcebucketowner")).
		Build()
}

func populatedCopyObjectResponse() *types.CopyObjectResponse {
	return types.NewCopyObjectResponseBuilder().
		WithCopyObjectResult(populatedCopyObjectResult()).
		WithVersionID(aws.String("copyobjectresponse-versionid")).
		WithCopySourceVersionID(aws.String("copyobjectresponse-copysourceversionid")).
		WithExpiration(aws.String("copyobjectresponse-expiration")).
		WithServerSideEncryption(ptr(types.ServerSideEncryptionKnownValues()[0])).
		WithBucketKeyEnabled(aws.Bool(true)).
		WithRequestCharged(ptr(types.RequestChargedKnownValues()[0])).
		Build()
}

func populatedListObjectsV2Request() *types.ListObjectsV2Request {
	return types.NewListObjectsV2RequestBuilder().
		WithBucket(aws.String("listobjectsv2request-bucket")).
		WithDelimiter(aws.String("listobjectsv2request-delimiter")).
		WithEncodingType(ptr(types.EncodingTypeKnownValues()[0])).
		WithMaxKeys(aws.Int32(7)).
		WithPrefix(aws.String("listobjectsv2request-prefix")).
		WithContinuationToken(aws.String("listobjectsv2request-continuationtoken")).
		WithFetchOwner(aws.Bool(true)).
		WithStartAfter(aws.String("listobjectsv2request-startafter")).
		WithRequestPayer(ptr(types.RequestPayerKnownValues()[0])).
		WithExpectedBucketOwner(aws.String("listobjectsv2request-expectedbucketowner")).
		Build()
}

func populatedListObjectsV2Response() *types.ListObjectsV2Response {
	return types.NewListObjectsV2ResponseBuilder().
		WithIsTruncated(aws.Bool(true)).
		WithContents([]*types.Object{populatedObject(), populatedObject()}).
		WithName(aws.String("listobjectsv2response-name")).
		WithPrefix(aws.String("listobjectsv2response-prefix")).
		WithDelimiter(aws.String("listobjectsv2response-delimiter")).
		WithMaxKeys(aws.Int32(7)).
		WithCommonPrefixes([]*types.CommonPrefix{populatedCommonPrefix(), populatedCommonPrefix()}).
		WithEncodingType(ptr(types.EncodingTypeKnownValues()[0])).
		WithKeyCount(aws.Int32(7)).
		WithContinuationToken(aws.String("listobjectsv2response-continuationtoken")).
		WithNextContinuationToken(aws.String("listobjectsv2response-nextcontinuationtoken")).
		WithStartAfter(aws.String("listobjectsv2response-startafter")).
		WithRequestCharged(ptr(types.RequestChargedKnownValues()[0])).
		Build()
}

// roundTripCases covers every value type with all fields present
func roundTripCases() []roundTripCase {
	return []roundTripCase{
		{"Tag", checkRoundTrip(populatedTag(), (*types.Tag).ToBuilder, (*types.TagBuilder).Build, types.NewTagBuilder().Build())},
		{"Tagging", checkRoundTrip(populatedTagging(), (*types.Tagging).ToBuilder, (*types.TaggingBuilder).Build, types.NewTaggingBuilder().Build())},
		{"Owner", checkRoundTrip(populatedOwner(), (*types.Owner).ToBuilder, (*types.OwnerBuilder).Build, types.NewOwnerBuilder().Build())},
		{"Bucket", checkRoundTrip(populatedBucket(), (*types.Bucket).ToBuilder, (*types.BucketBuilder).Build, types.NewBucketBuilder().Build())},
		{"Object", checkRoundTrip(populatedObject(), (*types.Object).ToBuilder, (*types.ObjectBuilder).Build, types.NewObjectBuilder().Build())},
		{"CommonPrefix", checkRoundTrip(populatedCommonPrefix(), (*types.CommonPrefix).ToBuilder, (*types.CommonPrefixBuilder).Build, types.NewCommonPrefixBuilder().Build())},
		{"VersioningConfiguration", checkRoundTrip(populatedVersioningConfiguration(), (*types.VersioningConfiguration).ToBuilder, (*types.VersioningConfigurationBuilder).Build, types.NewVersioningConfigurationBuilder().Build())},
		{"CreateBucketConfiguration", checkRoundTrip(populatedCreateBucketConfiguration(), (*types.CreateBucketConfiguration).ToBuilder, (*types.CreateBucketConfigurationBuilder).Build, types.NewCreateBucketConfigurationBuilder().Build())},
		{"CopyObjectResult", checkRoundTrip(populatedCopyObjectResult(), (*types.CopyObjectResult).ToBuilder, (*types.CopyObjectResultBuilder).Build, types.NewCopyObjectResultBuilder().Build())},
		{"CreateBucketRequest", checkRoundTrip(populatedCreateBucketRequest(), (*types.CreateBucketRequest).ToBuilder, (*types.CreateBucketRequestBuilder).Build, types.NewCreateBucketRequestBuilder().Build())},
		{"CreateBucketResponse", checkRoundTrip(populatedCreateBucketResponse(), (*types.CreateBucketResponse).ToBuilder, (*types.CreateBucketResponseBuilder).Build, types.NewCreateBucketResponseBuilder().Build())},
		{"DeleteBucketRequest", checkRoundTrip(populatedDeleteBucketRequest(), (*types.DeleteBucketRequest).ToBuilder, (*types.DeleteBucketRequestBuilder).Build, types.NewDeleteBucketRequestBuilder().Build())},
		{"HeadBucketRequest", checkRoundTrip(populatedHeadBucketRequest(), (*types.HeadBucketRequest).ToBuilder, (*types.HeadBucketRequestBuilder).Build, types.NewHeadBucketRequestBuilder().Build())},
		{"HeadBucketResponse", checkRoundTrip(populatedHeadBucketResponse(), (*types.HeadBucketResponse).ToBuilder, (*types.HeadBucketResponseBuilder).Build, types.NewHeadBucketResponseBuilder().Build())},
		{"ListBucketsRequest", checkRoundTrip(populatedListBucketsRequest(), (*types.ListBucketsRequest).ToBuilder, (*types.ListBucketsRequestBuilder).Build, types.NewListBucketsRequestBuilder().Build())},
		{"ListBucketsResponse", checkRoundTrip(populatedListBucketsResponse(), (*types.ListBucketsResponse).ToBuilder, (*types.ListBucketsResponseBuilder).Build, types.NewListBucketsResponseBuilder().Build())},
		{"GetBucketVersioningRequest", checkRoundTrip(populatedGetBucketVersioningRequest(), (*types.GetBucketVersioningRequest).ToBuilder, (*types.GetBucketVersioningRequestBuilder).Build, types.NewGetBucketVersioningRequestBuilder().Build())},
		{"GetBucketVersioningResponse", checkRoundTrip(populatedGetBucketVersioningResponse(), (*types.GetBucketVersioningResponse).ToBuilder, (*types.GetBucketVersioningResponseBuilder).Build, types.NewGetBucketVersioningResponseBuilder().Build())},
		{"PutBucketVersioningRequest", checkRoundTrip(populatedPutBucketVersioningRequest(), (*types.PutBucketVersioningRequest).ToBuilder, (*types.PutBucketVersioningRequestBuilder).Build, types.NewPutBucketVersioningRequestBuilder().Build())},
		{"GetObjectTaggingRequest", checkRoundTrip(populatedGetObjectTaggingRequest(), (*types.GetObjectTaggingRequest).ToBuilder, (*types.GetObjectTaggingRequestBuilder).Build, types.NewGetObjectTaggingRequestBuilder().Build())},
		{"GetObjectTaggingResponse", checkRoundTrip(populatedGetObjectTaggingResponse(), (*types.GetObjectTaggingResponse).ToBuilder, (*types.GetObjectTaggingResponseBuilder).Build, types.NewGetObjectTaggingResponseBuilder().Build())},
		{"PutObjectTaggingRequest", checkRoundTrip(populatedPutObjectTaggingRequest(), (*types.PutObjectTaggingRequest).ToBuilder, (*types.PutObjectTaggingRequestBuilder).Build, types.NewPutObjectTaggingRequestBuilder().Build())},
		{"PutObjectTaggingResponse", checkRoundTrip(populatedPutObjectTaggingResponse(), (*types.PutObjectTaggingResponse).ToBuilder, (*types.PutObjectTaggingResponseBuilder).Build, types.NewPutObjectTaggingResponseBuilder().Build())},
		{"PutBucketTaggingRequest", checkRoundTrip(populatedPutBucketTaggingRequest(), (*types.PutBucketTaggingRequest).ToBuilder, (*types.PutBucketTaggingRequestBuilder).Build, types.NewPutBucketTaggingRequestBuilder().Build())},
		{"DeleteBucketTaggingRequest", checkRoundTrip(populatedDeleteBucketTaggingRequest(), (*types.DeleteBucketTaggingRequest).ToBuilder, (*types.DeleteBucketTaggingRequestBuilder).Build, types.NewDeleteBucketTaggingRequestBuilder().Build())},
		{"HeadObjectRequest", checkRoundTrip(populatedHeadObjectRequest(), (*types.HeadObjectRequest).ToBuilder, (*types.HeadObjectRequestBuilder).Build, types.NewHeadObjectRequestBuilder().Build())},
		{"HeadObjectResponse", checkRoundTrip(populatedHeadObjectResponse(), (*types.HeadObjectResponse).ToBuilder, (*types.HeadObjectResponseBuilder).Build, types.NewHeadObjectResponseBuilder().Build())},
		{"GetObjectRequest", checkRoundTrip(populatedGetObjectRequest(), (*types.GetObjectRequest).ToBuilder, (*types.GetObjectRequestBuilder).Build, types.NewGetObjectRequestBuilder().Build())},
		{"DeleteObjectRequest", checkRoundTrip(populatedDeleteObjectRequest(), (*types.DeleteObjectRequest).ToBuilder, (*types.DeleteObjectRequestBuilder).Build, types.NewDeleteObjectRequestBuilder().Build())},
		{"DeleteObjectResponse", checkRoundTrip(populatedDeleteObjectResponse(), (*types.DeleteObjectResponse).ToBuilder, (*types.DeleteObjectResponseBuilder).Build, types.NewDeleteObjectResponseBuilder().Build())},
		{"CopyObjectRequest", checkRoundTrip(populatedCopyObjectRequest(), (*types.CopyObjectRequest).ToBuilder, (*types.CopyObjectRequestBuilder).Build, types.NewCopyObjectRequestBuilder().Build())},
		{"CopyObjectResponse", checkRoundTrip(populatedCopyObjectResponse(), (*types.CopyObjectResponse).ToBuilder, (*types.CopyObjectResponseBuilder).Build, types.NewCopyObjectResponseBuilder().Build())},
		{"ListObjectsV2Request", checkRoundTrip(populatedListObjectsV2Request(), (*types.ListObjectsV2Request).ToBuilder, (*types.ListObjectsV2RequestBuilder).Build, types.NewListObjectsV2RequestBuilder().Build())},
		{"ListObjectsV2Response", checkRoundTrip(populatedListObjectsV2Response(), (*types.ListObjectsV2Response).ToBuilder, (*types.ListObjectsV2ResponseBuilder).Build, types.NewListObjectsV2ResponseBuilder().Build())},
	}
}
