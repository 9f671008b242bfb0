// Package errors provides the client-side structured error type for s3-model.
//
// Service-reported failures (NoSuchBucket, NoSuchKey, ...) live in the
// serviceerrors package. This package covers everything the client itself
// rejects: invalid configuration, outbound values that cannot be encoded,
// repository and cache failures. Both kinds share one vocabulary of
// categories (Code) so callers can branch on either with GetCode.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("object metadata not cached")
//	err := errors.InvalidArgumentf("storage class %s has no wire form", sc)
//
// Adding metadata:
//
//	err := errors.NotFound("object metadata not cached").
//	    WithMeta("bucket", bucket).
//	    WithMeta("key", key)
//
// Wrapping errors:
//
//	if err := r.client.Get(ctx, key).Err(); err != nil {
//	    return errors.Wrap(err, "failed to read snapshot")
//	}
//
// # Categorized Errors
//
// Any error implementing Categorized reports its own Code. Service errors
// do this, so errors.IsNotFound(err) is true for a NoSuchBucket returned
// from the error boundary.
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("redis.endpoint", cfg.Redis.Endpoint, vb)
//	errors.ValidateEnum("cache.backend", cfg.Cache.Backend, backends, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC Integration
//
// ToGRPCError converts any error (ours, categorized, or plain) to a gRPC
// status. Metadata and service error codes travel as a structpb.Struct
// detail and are restored by FromGRPCError.
package errors
