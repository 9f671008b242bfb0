// Package objectmeta stores the last HeadObject response seen for each
// bucket and key, so later requests can be made conditional on it
package objectmeta

//go:generate mockgen -destination=mock/mock_repository.go -package=objectmetamock github.com/KirkDiggler/s3-model/internal/repositories/objectmeta Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/s3-model/internal/errors"
	"github.com/KirkDiggler/s3-model/internal/types"
)

// Repository stores object metadata snapshots
type Repository interface {
	// Put stores the head response for a bucket and key, replacing any
	// earlier snapshot
	// Returns errors.InvalidArgument for a missing bucket, key or head
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get returns the stored snapshot
	// Returns errors.NotFound when nothing is stored or the snapshot expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the snapshot. Deleting a missing snapshot is not an error.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// Recorder counts cache lookups. Result is "hit" or "miss".
type Recorder interface {
	CacheLookup(backend, result string)
}

var _ Repository = (*MemoryRepository)(nil)

// Lookup results passed to Recorder
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

type PutInput struct {
	Bucket string
	Key    string
	Head   *types.HeadObjectResponse
}

type PutOutput struct {
	StoredAt time.Time
}

type GetInput struct {
	Bucket string
	Key    string
}

type GetOutput struct {
	Head     *types.HeadObjectResponse
	StoredAt time.Time
}

type DeleteInput struct {
	Bucket string
	Key    string
}

type DeleteOutput struct{}

func validateLocation(bucket, key string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("bucket", bucket, vb)
	errors.ValidateRequired("key", key, vb)
	return vb.Build()
}

type noopRecorder struct{}

func (noopRecorder) CacheLookup(string, string) {}
