// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/KirkDiggler/s3-model/internal/pkg/idgen"
	"github.com/KirkDiggler/s3-model/internal/types"
)

// HeadObjectBuilder produces head responses with realistic defaults
type HeadObjectBuilder struct {
	b *types.HeadObjectResponseBuilder
}

// NewHeadObjectBuilder starts from a small PNG in STANDARD storage with a
// fresh version id
func NewHeadObjectBuilder() *HeadObjectBuilder {
	standard := types.StorageClassStandard
	modified := time.Date(2024, time.March, 9, 14, 30, 0, 0, time.UTC)

	return &HeadObjectBuilder{
		b: types.NewHeadObjectResponseBuilder().
			WithAcceptRanges(aws.String("bytes")).
			WithContentLength(aws.Int64(48213)).
			WithContentType(aws.String("image/png")).
			WithETag(aws.String(`"9b2cf535f27731c974343645a3985328"`)).
			WithLastModified(&modified).
			WithVersionID(aws.String((&idgen.VersionIDGenerator{}).Generate())).
			WithStorageClass(&standard).
			WithMetadata(map[string]string{"uploaded-by": "ingest"}),
	}
}

// WithETag sets the entity tag
func (h *HeadObjectBuilder) WithETag(etag string) *HeadObjectBuilder {
	h.b.WithETag(aws.String(etag))
	return h
}

// WithoutETag removes the entity tag
func (h *HeadObjectBuilder) WithoutETag() *HeadObjectBuilder {
	h.b.WithETag(nil)
	return h
}

// WithStorageClass sets the storage class from its wire string; unknown
// strings decode to the reserved symbol
func (h *HeadObjectBuilder) WithStorageClass(wire string) *HeadObjectBuilder {
	h.b.WithStorageClass(types.StorageClassFromValue(aws.String(wire)))
	return h
}

// WithMetadata replaces the user metadata
func (h *HeadObjectBuilder) WithMetadata(metadata map[string]string) *HeadObjectBuilder {
	h.b.WithMetadata(metadata)
	return h
}

// WithLastModified sets the modification time
func (h *HeadObjectBuilder) WithLastModified(t time.Time) *HeadObjectBuilder {
	h.b.WithLastModified(&t)
	return h
}

// Build returns the response
func (h *HeadObjectBuilder) Build() *types.HeadObjectResponse {
	return h.b.Build()
}
