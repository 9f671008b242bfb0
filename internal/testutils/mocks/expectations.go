// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/s3-model/internal/errors"
	"github.com/KirkDiggler/s3-model/internal/repositories/objectmeta"
	objectmetamock "github.com/KirkDiggler/s3-model/internal/repositories/objectmeta/mock"
	"github.com/KirkDiggler/s3-model/internal/types"
)

// ExpectSnapshot makes the repository return head for bucket and key
func ExpectSnapshot(ctx context.Context, repo *objectmetamock.MockRepository, bucket, key string, head *types.HeadObjectResponse, storedAt time.Time) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, objectmeta.GetInput{Bucket: bucket, Key: key}).
		Return(&objectmeta.GetOutput{Head: head, StoredAt: storedAt}, nil)
}

// ExpectNoSnapshot makes the repository report that nothing is stored
func ExpectNoSnapshot(ctx context.Context, repo *objectmetamock.MockRepository, bucket, key string) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, objectmeta.GetInput{Bucket: bucket, Key: key}).
		Return(nil, errors.NotFoundf("no metadata for %s/%s", bucket, key))
}
