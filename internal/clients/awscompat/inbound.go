// Package awscompat converts between the model types and the shapes of
// the AWS SDK for Go v2 S3 client
package awscompat

import (
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/KirkDiggler/s3-model/internal/types"
)

// fromSDKEnum decodes an SDK enum string. The SDK uses "" for absent.
func fromSDKEnum[S any, T ~string](v T, parse func(string) S) *S {
	if v == "" {
		return nil
	}
	sym := parse(string(v))
	return &sym
}

func fromSDKEnums[S any, T ~string](vs []T, parse func(string) S) []S {
	if vs == nil {
		return nil
	}
	out := make([]S, len(vs))
	for i, v := range vs {
		out[i] = parse(string(v))
	}
	return out
}

// TagFromSDK converts an SDK tag
func TagFromSDK(tag s3types.Tag) *types.Tag {
	return types.NewTagBuilder().
		WithKey(tag.Key).
		WithValue(tag.Value).
		Build()
}

// TagsFromSDK converts a tag set. A nil set stays absent and an empty one
// stays empty.
func TagsFromSDK(tags []s3types.Tag) []*types.Tag {
	if tags == nil {
		return nil
	}
	out := make([]*types.Tag, len(tags))
	for i, tag := range tags {
		out[i] = TagFromSDK(tag)
	}
	return out
}

func OwnerFromSDK(owner *s3types.Owner) *types.Owner {
	if owner == nil {
		return nil
	}
	return types.NewOwnerBuilder().
		WithDisplayName(owner.DisplayName).
		WithID(owner.ID).
		Build()
}

func ObjectFromSDK(object s3types.Object) *types.Object {
	return types.NewObjectBuilder().
		WithKey(object.Key).
		WithLastModified(object.LastModified).
		WithETag(object.ETag).
		WithChecksumAlgorithm(fromSDKEnums(object.ChecksumAlgorithm, types.ParseChecksumAlgorithm)).
		WithSize(object.Size).
		WithStorageClass(fromSDKEnum(object.StorageClass, types.ParseObjectStorageClass)).
		WithOwner(OwnerFromSDK(object.Owner)).
		Build()
}

// HeadObjectFromSDK converts a HeadObject result
func HeadObjectFromSDK(out *s3.HeadObjectOutput) *types.HeadObjectResponse {
	if out == nil {
		return nil
	}
	return types.NewHeadObjectResponseBuilder().
		WithAcceptRanges(out.AcceptRanges).
		WithArchiveStatus(fromSDKEnum(out.ArchiveStatus, types.ParseArchiveStatus)).
		WithContentLength(out.ContentLength).
		WithContentType(out.ContentType).
		WithContentEncoding(out.ContentEncoding).
		WithCacheControl(out.CacheControl).
		WithETag(out.ETag).
		WithLastModified(out.LastModified).
		WithExpires(out.Expires).
		WithDeleteMarker(out.DeleteMarker).
		WithVersionID(out.VersionId).
		WithMetadata(out.Metadata).
		WithMissingMeta(out.MissingMeta).
		WithServerSideEncryption(fromSDKEnum(out.ServerSideEncryption, types.ParseServerSideEncryption)).
		WithSSEKMSKeyID(out.SSEKMSKeyId).
		WithBucketKeyEnabled(out.BucketKeyEnabled).
		WithStorageClass(fromSDKEnum(out.StorageClass, types.ParseStorageClass)).
		WithRequestCharged(fromSDKEnum(out.RequestCharged, types.ParseRequestCharged)).
		WithReplicationStatus(fromSDKEnum(out.ReplicationStatus, types.ParseReplicationStatus)).
		WithPartsCount(out.PartsCount).
		WithChecksumCRC32(out.ChecksumCRC32).
		WithChecksumSHA256(out.ChecksumSHA256).
		Build()
}

// ListObjectsV2FromSDK converts one page of a ListObjectsV2 result
func ListObjectsV2FromSDK(out *s3.ListObjectsV2Output) *types.ListObjectsV2Response {
	if out == nil {
		return nil
	}

	var contents []*types.Object
	if out.Contents != nil {
		contents = make([]*types.Object, len(out.Contents))
		for i, object := range out.Contents {
			contents[i] = ObjectFromSDK(object)
		}
	}

	var prefixes []*types.CommonPrefix
	if out.CommonPrefixes != nil {
		prefixes = make([]*types.CommonPrefix, len(out.CommonPrefixes))
		for i, prefix := range out.CommonPrefixes {
			prefixes[i] = types.NewCommonPrefixBuilder().WithPrefix(prefix.Prefix).Build()
		}
	}

	return types.NewListObjectsV2ResponseBuilder().
		WithIsTruncated(out.IsTruncated).
		WithContents(contents).
		WithName(out.Name).
		WithPrefix(out.Prefix).
		WithDelimiter(out.Delimiter).
		WithMaxKeys(out.MaxKeys).
		WithCommonPrefixes(prefixes).
		WithEncodingType(fromSDKEnum(out.EncodingType, types.ParseEncodingType)).
		WithKeyCount(out.KeyCount).
		WithContinuationToken(out.ContinuationToken).
		WithNextContinuationToken(out.NextContinuationToken).
		WithStartAfter(out.StartAfter).
		WithRequestCharged(fromSDKEnum(out.RequestCharged, types.ParseRequestCharged)).
		Build()
}

func GetObjectTaggingFromSDK(out *s3.GetObjectTaggingOutput) *types.GetObjectTaggingResponse {
	if out == nil {
		return nil
	}
	return types.NewGetObjectTaggingResponseBuilder().
		WithVersionID(out.VersionId).
		WithTagSet(TagsFromSDK(out.TagSet)).
		Build()
}
