package objectmeta

import (
	"context"

	"github.com/KirkDiggler/s3-model/internal/errors"
	redisclient "github.com/KirkDiggler/s3-model/internal/redis"
)

// SweepInput selects what Sweep removes
type SweepInput struct {
	Client redisclient.Client
	// DryRun reports unreadable snapshots without deleting them
	DryRun bool
}

// SweepOutput reports what Sweep found
type SweepOutput struct {
	Checked    int
	Unreadable []string
	Deleted    int
}

// Sweep scans every snapshot key in redis and removes the ones that no
// longer decode, such as snapshots written with another format version.
func Sweep(ctx context.Context, input SweepInput) (*SweepOutput, error) {
	if input.Client == nil {
		return nil, errors.InvalidArgument("client cannot be nil")
	}

	out := &SweepOutput{}
	iter := input.Client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		out.Checked++

		raw, err := input.Client.Get(ctx, key).Bytes()
		if err != nil {
			if err == redisclient.Nil {
				// expired between scan and get
				continue
			}
			return out, errors.Wrapf(err, "failed to read %s", key)
		}
		if _, _, err := unmarshalSnapshot(raw); err != nil {
			out.Unreadable = append(out.Unreadable, key)
		}
	}
	if err := iter.Err(); err != nil {
		return out, errors.Wrap(err, "failed to scan snapshots")
	}

	if input.DryRun || len(out.Unreadable) == 0 {
		return out, nil
	}

	deleted, err := input.Client.Del(ctx, out.Unreadable...).Result()
	if err != nil {
		return out, errors.Wrap(err, "failed to delete unreadable snapshots")
	}
	out.Deleted = int(deleted)
	return out, nil
}
