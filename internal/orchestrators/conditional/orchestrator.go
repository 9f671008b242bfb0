// Package conditional turns remembered HeadObject responses into
// conditional GetObject requests
package conditional

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/s3-model/internal/errors"
	"github.com/KirkDiggler/s3-model/internal/pkg/clock"
	"github.com/KirkDiggler/s3-model/internal/pkg/idgen"
	"github.com/KirkDiggler/s3-model/internal/repositories/objectmeta"
	"github.com/KirkDiggler/s3-model/internal/types"
)

// Reasons a request was left unconditional
const (
	SkipAlreadyConditional = "already_conditional"
	SkipNoSnapshot         = "no_snapshot"
	SkipStale              = "stale"
	SkipDeleteMarker       = "delete_marker"
	SkipNoETag             = "no_etag"
	SkipVersionMismatch    = "version_mismatch"
)

// Service defines the conditional request operations
type Service interface {
	Remember(ctx context.Context, input *RememberInput) (*RememberOutput, error)
	PrepareGet(ctx context.Context, input *PrepareGetInput) (*PrepareGetOutput, error)
	Forget(ctx context.Context, input *ForgetInput) (*ForgetOutput, error)
}

type RememberInput struct {
	Bucket string
	Key    string
	Head   *types.HeadObjectResponse
}

type RememberOutput struct {
	StoredAt time.Time
}

type PrepareGetInput struct {
	Request *types.GetObjectRequest
}

// PrepareGetOutput holds the request to send. When Seeded is false the
// request is the input unchanged and SkipReason says why. PrepareID tags
// the log entries written for this call.
type PrepareGetOutput struct {
	Request    *types.GetObjectRequest
	Seeded     bool
	ETag       string
	SkipReason string
	PrepareID  string
}

type ForgetInput struct {
	Bucket string
	Key    string
}

type ForgetOutput struct{}

// Config holds the dependencies for the conditional orchestrator
type Config struct {
	Repository objectmeta.Repository
	Clock      clock.Clock
	// MaxAge ignores snapshots older than this; zero accepts any age
	MaxAge      time.Duration
	Logger      logrus.FieldLogger
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.MaxAge < 0 {
		vb.Fieldf("MaxAge", "cannot be negative, got %s", c.MaxAge)
	}
	return vb.Build()
}

type orchestrator struct {
	repo   objectmeta.Repository
	clock  clock.Clock
	maxAge time.Duration
	logger logrus.FieldLogger
	idGen  idgen.Generator
}

// NewOrchestrator creates a conditional orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		repo:   cfg.Repository,
		clock:  cfg.Clock,
		maxAge: cfg.MaxAge,
		logger: cfg.Logger,
		idGen:  cfg.IDGenerator,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.logger == nil {
		o.logger = logrus.StandardLogger()
	}
	if o.idGen == nil {
		o.idGen = &idgen.RequestIDGenerator{}
	}
	return o, nil
}

// Remember stores the head response for later requests
func (o *orchestrator) Remember(ctx context.Context, input *RememberInput) (*RememberOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.repo.Put(ctx, objectmeta.PutInput{
		Bucket: input.Bucket,
		Key:    input.Key,
		Head:   input.Head,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to remember %s/%s", input.Bucket, input.Key)
	}

	return &RememberOutput{StoredAt: out.StoredAt}, nil
}

// PrepareGet adds If-None-Match from the remembered ETag. A request that
// already carries If-None-Match is returned as is.
func (o *orchestrator) PrepareGet(ctx context.Context, input *PrepareGetInput) (*PrepareGetOutput, error) {
	if input == nil || input.Request == nil {
		return nil, errors.InvalidArgument("request is required")
	}
	req := input.Request

	bucket, _ := req.Bucket()
	key, _ := req.Key()
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("bucket", bucket, vb)
	errors.ValidateRequired("key", key, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	prepareID := o.idGen.Generate()
	log := o.logger.WithFields(logrus.Fields{
		"bucket":     bucket,
		"key":        key,
		"prepare_id": prepareID,
	})

	skip := func(reason string) (*PrepareGetOutput, error) {
		log.WithField("reason", reason).Debug("get left unconditional")
		return &PrepareGetOutput{Request: req, SkipReason: reason, PrepareID: prepareID}, nil
	}

	if _, ok := req.IfNoneMatch(); ok {
		return skip(SkipAlreadyConditional)
	}

	snapshot, err := o.repo.Get(ctx, objectmeta.GetInput{Bucket: bucket, Key: key})
	if err != nil {
		if errors.IsNotFound(err) {
			return skip(SkipNoSnapshot)
		}
		return nil, errors.Wrapf(err, "failed to read metadata for %s/%s", bucket, key)
	}
	head := snapshot.Head

	if o.maxAge > 0 && o.clock.Now().Sub(snapshot.StoredAt) > o.maxAge {
		return skip(SkipStale)
	}
	if deleted, ok := head.DeleteMarker(); ok && deleted {
		return skip(SkipDeleteMarker)
	}
	if want, ok := req.VersionID(); ok {
		if have, _ := head.VersionID(); have != want {
			return skip(SkipVersionMismatch)
		}
	}
	etag, ok := head.ETag()
	if !ok || etag == "" {
		return skip(SkipNoETag)
	}

	log.WithField("etag", etag).Debug("get made conditional")
	return &PrepareGetOutput{
		Request:   req.ToBuilder().WithIfNoneMatch(aws.String(etag)).Build(),
		Seeded:    true,
		ETag:      etag,
		PrepareID: prepareID,
	}, nil
}

// Forget drops the remembered head response
func (o *orchestrator) Forget(ctx context.Context, input *ForgetInput) (*ForgetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.repo.Delete(ctx, objectmeta.DeleteInput{Bucket: input.Bucket, Key: input.Key}); err != nil {
		return nil, errors.Wrapf(err, "failed to forget %s/%s", input.Bucket, input.Key)
	}
	return &ForgetOutput{}, nil
}
