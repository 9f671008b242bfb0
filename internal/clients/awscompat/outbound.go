package awscompat

import (
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/KirkDiggler/s3-model/internal/errors"
	"github.com/KirkDiggler/s3-model/internal/types"
)

type encoder interface {
	Encode() (string, error)
}

// toSDKEnum encodes a present symbol. The reserved symbol has no wire
// form and is rejected.
func toSDKEnum[T ~string, S encoder](sym S, ok bool) (T, error) {
	if !ok {
		return "", nil
	}
	wire, err := sym.Encode()
	if err != nil {
		return "", err
	}
	return T(wire), nil
}

func tagToSDK(tag *types.Tag) s3types.Tag {
	key, _ := tag.Key()
	value, _ := tag.Value()
	return s3types.Tag{Key: &key, Value: &value}
}

// TaggingToSDK converts a tag set. Absent keys and values are sent empty.
func TaggingToSDK(tagging *types.Tagging) *s3types.Tagging {
	if tagging == nil {
		return nil
	}
	set, ok := tagging.TagSet()
	if !ok {
		return &s3types.Tagging{}
	}
	out := &s3types.Tagging{TagSet: make([]s3types.Tag, 0, len(set))}
	for _, tag := range set {
		if tag == nil {
			continue
		}
		out.TagSet = append(out.TagSet, tagToSDK(tag))
	}
	return out
}

func optional[T any](v T, ok bool) *T {
	if !ok {
		return nil
	}
	return &v
}

// PutObjectTaggingInput builds the SDK input for req
func PutObjectTaggingInput(req *types.PutObjectTaggingRequest) (*s3.PutObjectTaggingInput, error) {
	if req == nil {
		return nil, errors.InvalidArgument("request is required")
	}

	algorithm, err := toSDKEnum[s3types.ChecksumAlgorithm](req.ChecksumAlgorithm())
	if err != nil {
		return nil, errors.Wrap(err, "cannot send ChecksumAlgorithm")
	}
	payer, err := toSDKEnum[s3types.RequestPayer](req.RequestPayer())
	if err != nil {
		return nil, errors.Wrap(err, "cannot send RequestPayer")
	}

	var tagging *s3types.Tagging
	if t, ok := req.Tagging(); ok {
		tagging = TaggingToSDK(t)
	}

	return &s3.PutObjectTaggingInput{
		Bucket:              optional(req.Bucket()),
		Key:                 optional(req.Key()),
		VersionId:           optional(req.VersionID()),
		ContentMD5:          optional(req.ContentMD5()),
		ChecksumAlgorithm:   algorithm,
		Tagging:             tagging,
		ExpectedBucketOwner: optional(req.ExpectedBucketOwner()),
		RequestPayer:        payer,
	}, nil
}

// GetObjectInput builds the SDK input for req
func GetObjectInput(req *types.GetObjectRequest) (*s3.GetObjectInput, error) {
	if req == nil {
		return nil, errors.InvalidArgument("request is required")
	}

	payer, err := toSDKEnum[s3types.RequestPayer](req.RequestPayer())
	if err != nil {
		return nil, errors.Wrap(err, "cannot send RequestPayer")
	}

	return &s3.GetObjectInput{
		Bucket:               optional(req.Bucket()),
		Key:                  optional(req.Key()),
		VersionId:            optional(req.VersionID()),
		IfMatch:              optional(req.IfMatch()),
		IfNoneMatch:          optional(req.IfNoneMatch()),
		IfModifiedSince:      optional(req.IfModifiedSince()),
		IfUnmodifiedSince:    optional(req.IfUnmodifiedSince()),
		Range:                optional(req.Range()),
		PartNumber:           optional(req.PartNumber()),
		ResponseContentType:  optional(req.ResponseContentType()),
		ResponseCacheControl: optional(req.ResponseCacheControl()),
		SSECustomerAlgorithm: optional(req.SSECustomerAlgorithm()),
		SSECustomerKey:       optional(req.SSECustomerKey()),
		SSECustomerKeyMD5:    optional(req.SSECustomerKeyMD5()),
		RequestPayer:         payer,
		ExpectedBucketOwner:  optional(req.ExpectedBucketOwner()),
	}, nil
}
