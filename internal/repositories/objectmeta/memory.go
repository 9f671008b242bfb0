package objectmeta

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/KirkDiggler/s3-model/internal/errors"
	"github.com/KirkDiggler/s3-model/internal/pkg/clock"
	"github.com/KirkDiggler/s3-model/internal/types"
)

// BackendMemory labels lookups served by the in-memory repository
const BackendMemory = "memory"

// DefaultMemorySize is used when MemoryConfig.Size is zero
const DefaultMemorySize = 1024

type memoryEntry struct {
	head     *types.HeadObjectResponse
	storedAt time.Time
}

// MemoryRepository keeps snapshots in a size-bounded LRU. Entries hold the
// immutable head response itself, so nothing is copied on the way in or out.
type MemoryRepository struct {
	cache    *lru.LRU[string, memoryEntry]
	clock    clock.Clock
	recorder Recorder
}

// MemoryConfig contains configuration for the in-memory repository
type MemoryConfig struct {
	Size int
	// TTL expires snapshots; zero disables expiry
	TTL      time.Duration
	Clock    clock.Clock
	Recorder Recorder
}

// Validate validates the MemoryConfig
func (cfg *MemoryConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Size < 0 {
		vb.Fieldf("size", "cannot be negative, got %d", cfg.Size)
	}
	if cfg.TTL < 0 {
		vb.Fieldf("ttl", "cannot be negative, got %s", cfg.TTL)
	}
	return vb.Build()
}

// NewMemory creates an in-memory repository
func NewMemory(cfg *MemoryConfig) (*MemoryRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	size := cfg.Size
	if size == 0 {
		size = DefaultMemorySize
	}

	repo := &MemoryRepository{
		cache:    lru.NewLRU[string, memoryEntry](size, nil, cfg.TTL),
		clock:    cfg.Clock,
		recorder: cfg.Recorder,
	}
	if repo.clock == nil {
		repo.clock = clock.New()
	}
	if repo.recorder == nil {
		repo.recorder = noopRecorder{}
	}
	return repo, nil
}

// Put stores a snapshot
func (r *MemoryRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	if err := validateLocation(input.Bucket, input.Key); err != nil {
		return nil, err
	}
	if input.Head == nil {
		return nil, errors.InvalidArgument("head cannot be nil")
	}

	storedAt := r.clock.Now()
	r.cache.Add(Key(input.Bucket, input.Key), memoryEntry{head: input.Head, storedAt: storedAt})

	return &PutOutput{StoredAt: storedAt}, nil
}

// Get returns a snapshot
func (r *MemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := validateLocation(input.Bucket, input.Key); err != nil {
		return nil, err
	}

	entry, ok := r.cache.Get(Key(input.Bucket, input.Key))
	if !ok {
		r.recorder.CacheLookup(BackendMemory, ResultMiss)
		return nil, errors.NotFoundf("no metadata for %s/%s", input.Bucket, input.Key)
	}

	r.recorder.CacheLookup(BackendMemory, ResultHit)
	return &GetOutput{Head: entry.head, StoredAt: entry.storedAt}, nil
}

// Delete removes a snapshot
func (r *MemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateLocation(input.Bucket, input.Key); err != nil {
		return nil, err
	}

	r.cache.Remove(Key(input.Bucket, input.Key))
	return &DeleteOutput{}, nil
}

// Len returns the number of stored snapshots, including expired ones not
// yet purged
func (r *MemoryRepository) Len() int {
	return r.cache.Len()
}
