package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/s3-model/internal/clients/awscompat"
	"github.com/KirkDiggler/s3-model/internal/config"
	"github.com/KirkDiggler/s3-model/internal/errors"
	"github.com/KirkDiggler/s3-model/internal/orchestrators/conditional"
	"github.com/KirkDiggler/s3-model/internal/redis"
	"github.com/KirkDiggler/s3-model/internal/repositories/objectmeta"
	"github.com/KirkDiggler/s3-model/internal/types"
)

type cacheFlags struct {
	bucket       string
	key          string
	etag         string
	versionID    string
	storageClass string
	fromFile     string
	timeout      time.Duration
	dryRun       bool
}

type rememberView struct {
	Bucket   string    `json:"bucket" yaml:"bucket"`
	Key      string    `json:"key" yaml:"key"`
	StoredAt time.Time `json:"stored_at" yaml:"stored_at"`
	Head     string    `json:"head" yaml:"head"`
}

type prepareView struct {
	Seeded      bool   `json:"seeded" yaml:"seeded"`
	ETag        string `json:"etag,omitempty" yaml:"etag,omitempty"`
	SkipReason  string `json:"skip_reason,omitempty" yaml:"skip_reason,omitempty"`
	IfNoneMatch string `json:"if_none_match,omitempty" yaml:"if_none_match,omitempty"`
	Request     string `json:"request" yaml:"request"`
	PrepareID   string `json:"prepare_id" yaml:"prepare_id"`
}

func newCacheCmd(a *app) *cobra.Command {
	f := &cacheFlags{}

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the object metadata cache",
	}
	cmd.PersistentFlags().StringVar(&f.bucket, "bucket", "", "Bucket name")
	cmd.PersistentFlags().StringVar(&f.key, "key", "", "Object key")
	cmd.PersistentFlags().DurationVar(&f.timeout, "timeout", 5*time.Second, "Timeout for cache operations")

	remember := &cobra.Command{
		Use:   "remember",
		Short: "Store a HeadObject response for a bucket and key",
		Long: `Store a HeadObject response. Either pass --from-file with a HeadObject
result as JSON in the AWS SDK shape, or describe it with --etag,
--version-id and --storage-class.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRemember(cmd.Context(), cmd.OutOrStdout(), f)
		},
	}
	remember.Flags().StringVar(&f.etag, "etag", "", "Entity tag")
	remember.Flags().StringVar(&f.versionID, "version-id", "", "Version id")
	remember.Flags().StringVar(&f.storageClass, "storage-class", "", "Storage class wire string")
	remember.Flags().StringVar(&f.fromFile, "from-file", "", "Read a HeadObject result from this JSON file")

	prepare := &cobra.Command{
		Use:   "prepare-get",
		Short: "Build a GetObject request conditional on the remembered ETag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPrepareGet(cmd.Context(), cmd.OutOrStdout(), f)
		},
	}
	prepare.Flags().StringVar(&f.versionID, "version-id", "", "Version id to request")

	sweep := &cobra.Command{
		Use:   "sweep",
		Short: "Delete redis snapshots that no longer decode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSweep(cmd.Context(), cmd.OutOrStdout(), f)
		},
	}
	sweep.Flags().BoolVar(&f.dryRun, "dry-run", false, "Report unreadable snapshots without deleting them")

	cmd.AddCommand(remember, prepare, sweep,
		&cobra.Command{
			Use:   "forget",
			Short: "Drop the remembered response for a bucket and key",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.runForget(cmd.Context(), f)
			},
		},
		&cobra.Command{
			Use:   "ping",
			Short: "Check that the configured cache backend is reachable",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.runPing(cmd.Context(), cmd.OutOrStdout(), f)
			},
		},
	)

	return cmd
}

// openRepository builds the repository the config selects. The returned
// func releases it.
func (a *app) openRepository() (objectmeta.Repository, func(), error) {
	switch a.cfg.Cache.Backend {
	case config.BackendRedis:
		client, release, err := a.redisClient()
		if err != nil {
			return nil, nil, err
		}
		repo, err := objectmeta.NewRedis(&objectmeta.RedisConfig{
			Client:   client,
			TTL:      a.cfg.Cache.TTL,
			Recorder: a.metrics,
		})
		if err != nil {
			release()
			return nil, nil, err
		}
		return repo, release, nil
	default:
		repo, err := objectmeta.NewMemory(&objectmeta.MemoryConfig{
			Size:     a.cfg.Cache.Size,
			TTL:      a.cfg.Cache.TTL,
			Recorder: a.metrics,
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}

func (a *app) openService() (conditional.Service, func(), error) {
	repo, closeRepo, err := a.openRepository()
	if err != nil {
		return nil, nil, err
	}
	svc, err := conditional.NewOrchestrator(&conditional.Config{
		Repository: repo,
		MaxAge:     a.cfg.Cache.MaxAge,
		Logger:     a.logger,
	})
	if err != nil {
		closeRepo()
		return nil, nil, err
	}
	return svc, closeRepo, nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, d)
}

func readHead(path string) (*types.HeadObjectResponse, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	var out s3.HeadObjectOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.InvalidArgumentf("%s is not a HeadObject result: %v", path, err)
	}
	return awscompat.HeadObjectFromSDK(&out), nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}

func (a *app) runRemember(ctx context.Context, w io.Writer, f *cacheFlags) error {
	var head *types.HeadObjectResponse
	if f.fromFile != "" {
		var err error
		if head, err = readHead(f.fromFile); err != nil {
			return err
		}
	} else {
		head = types.NewHeadObjectResponseBuilder().
			WithETag(optionalString(f.etag)).
			WithVersionID(optionalString(f.versionID)).
			WithStorageClass(types.StorageClassFromValue(optionalString(f.storageClass))).
			Build()
	}

	svc, release, err := a.openService()
	if err != nil {
		return err
	}
	defer release()

	ctx, cancel := withTimeout(ctx, f.timeout)
	defer cancel()

	out, err := svc.Remember(ctx, &conditional.RememberInput{Bucket: f.bucket, Key: f.key, Head: head})
	if err != nil {
		return err
	}

	view := rememberView{Bucket: f.bucket, Key: f.key, StoredAt: out.StoredAt, Head: head.String()}
	return render(w, a.output, view, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "stored %s/%s: %s\n", view.Bucket, view.Key, view.Head)
		return err
	})
}

func (a *app) runPrepareGet(ctx context.Context, w io.Writer, f *cacheFlags) error {
	svc, release, err := a.openService()
	if err != nil {
		return err
	}
	defer release()

	ctx, cancel := withTimeout(ctx, f.timeout)
	defer cancel()

	req := types.NewGetObjectRequestBuilder().
		WithBucket(optionalString(f.bucket)).
		WithKey(optionalString(f.key)).
		WithVersionID(optionalString(f.versionID)).
		Build()

	out, err := svc.PrepareGet(ctx, &conditional.PrepareGetInput{Request: req})
	if err != nil {
		return err
	}
	input, err := awscompat.GetObjectInput(out.Request)
	if err != nil {
		return err
	}

	view := prepareView{
		Seeded:      out.Seeded,
		ETag:        out.ETag,
		SkipReason:  out.SkipReason,
		IfNoneMatch: aws.ToString(input.IfNoneMatch),
		Request:     out.Request.String(),
		PrepareID:   out.PrepareID,
	}
	return render(w, a.output, view, func(w io.Writer) error {
		if !view.Seeded {
			_, err := fmt.Fprintf(w, "unconditional (%s): %s\n", view.SkipReason, view.Request)
			return err
		}
		_, err := fmt.Fprintf(w, "If-None-Match %s: %s\n", view.IfNoneMatch, view.Request)
		return err
	})
}

func (a *app) runForget(ctx context.Context, f *cacheFlags) error {
	svc, release, err := a.openService()
	if err != nil {
		return err
	}
	defer release()

	ctx, cancel := withTimeout(ctx, f.timeout)
	defer cancel()

	_, err = svc.Forget(ctx, &conditional.ForgetInput{Bucket: f.bucket, Key: f.key})
	return err
}

func (a *app) redisClient() (redis.Client, func(), error) {
	if a.cfg.Cache.Backend != config.BackendRedis {
		return nil, nil, errors.FailedPreconditionf("cache backend is %s, not redis", a.cfg.Cache.Backend)
	}
	client, err := redis.NewClient(a.cfg.Redis.Endpoint, &redis.Options{
		PoolSize: a.cfg.Redis.PoolSize,
		UseTLS:   a.cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, nil, err
	}
	return client, func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}, nil
}

func (a *app) runPing(ctx context.Context, w io.Writer, f *cacheFlags) error {
	if a.cfg.Cache.Backend != config.BackendRedis {
		_, err := fmt.Fprintf(w, "%s backend needs no connection\n", a.cfg.Cache.Backend)
		return err
	}

	client, release, err := a.redisClient()
	if err != nil {
		return err
	}
	defer release()

	ctx, cancel := withTimeout(ctx, f.timeout)
	defer cancel()

	if err := redis.Ping(ctx, client); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "redis at %s is reachable\n", a.cfg.Redis.Endpoint)
	return err
}

type sweepView struct {
	Checked    int      `json:"checked" yaml:"checked"`
	Unreadable []string `json:"unreadable" yaml:"unreadable"`
	Deleted    int      `json:"deleted" yaml:"deleted"`
}

func (a *app) runSweep(ctx context.Context, w io.Writer, f *cacheFlags) error {
	client, release, err := a.redisClient()
	if err != nil {
		return err
	}
	defer release()

	ctx, cancel := withTimeout(ctx, f.timeout)
	defer cancel()

	out, err := objectmeta.Sweep(ctx, objectmeta.SweepInput{Client: client, DryRun: f.dryRun})
	if err != nil {
		return err
	}
	a.logger.WithField("checked", out.Checked).WithField("deleted", out.Deleted).Info("sweep finished")

	view := sweepView{Checked: out.Checked, Unreadable: out.Unreadable, Deleted: out.Deleted}
	return render(w, a.output, view, func(w io.Writer) error {
		for _, key := range view.Unreadable {
			if _, err := fmt.Fprintf(w, "unreadable %s\n", key); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "checked %d, deleted %d\n", view.Checked, view.Deleted)
		return err
	})
}
