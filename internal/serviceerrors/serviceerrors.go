// Package serviceerrors models the failures an object-storage service
// reports by error code.
//
// Every known code has its own error type, built like any value type and
// matchable with errors.As. A code without a dedicated type still surfaces,
// as *UnrecognizedServiceError carrying the raw code. All of them satisfy
// smithy.APIError, so callers written against the AWS SDK error shape work
// unchanged.
package serviceerrors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/aws/smithy-go"

	"github.com/KirkDiggler/s3-model/internal/errors"
	"github.com/KirkDiggler/s3-model/internal/model"
	"github.com/KirkDiggler/s3-model/internal/types"
)

// ServiceError is a terminal failure reported by the service
type ServiceError interface {
	smithy.APIError
	// Category maps the service code onto the client error categories
	Category() errors.Code
	RequestID() (string, bool)
	HostID() (string, bool)
}

var (
	_ ServiceError = (*BucketAlreadyExists)(nil)
	_ ServiceError = (*BucketAlreadyOwnedByYou)(nil)
	_ ServiceError = (*NoSuchBucket)(nil)
	_ ServiceError = (*NoSuchKey)(nil)
	_ ServiceError = (*NoSuchUpload)(nil)
	_ ServiceError = (*NoSuchTagSet)(nil)
	_ ServiceError = (*InvalidObjectState)(nil)
	_ ServiceError = (*ObjectAlreadyInActiveTierError)(nil)
	_ ServiceError = (*ObjectNotInActiveTierError)(nil)
	_ ServiceError = (*AccessDenied)(nil)
	_ ServiceError = (*UnrecognizedServiceError)(nil)
)

// Service error codes with a dedicated variant
const (
	CodeBucketAlreadyExists            = "BucketAlreadyExists"
	CodeBucketAlreadyOwnedByYou        = "BucketAlreadyOwnedByYou"
	CodeNoSuchBucket                   = "NoSuchBucket"
	CodeNoSuchKey                      = "NoSuchKey"
	CodeNoSuchUpload                   = "NoSuchUpload"
	CodeNoSuchTagSet                   = "NoSuchTagSet"
	CodeInvalidObjectState             = "InvalidObjectState"
	CodeObjectAlreadyInActiveTierError = "ObjectAlreadyInActiveTierError"
	CodeObjectNotInActiveTierError     = "ObjectNotInActiveTierError"
	CodeAccessDenied                   = "AccessDenied"
)

var registry = map[string]func(Diagnostics) ServiceError{
	CodeBucketAlreadyExists: func(d Diagnostics) ServiceError {
		return &BucketAlreadyExists{f: bucketAlreadyExistsFields{diagnostics: d.fields()}}
	},
	CodeBucketAlreadyOwnedByYou: func(d Diagnostics) ServiceError {
		return &BucketAlreadyOwnedByYou{f: bucketAlreadyOwnedByYouFields{diagnostics: d.fields()}}
	},
	CodeNoSuchBucket: func(d Diagnostics) ServiceError {
		return &NoSuchBucket{f: noSuchBucketFields{diagnostics: d.fields()}}
	},
	CodeNoSuchKey: func(d Diagnostics) ServiceError {
		return &NoSuchKey{f: noSuchKeyFields{diagnostics: d.fields()}}
	},
	CodeNoSuchUpload: func(d Diagnostics) ServiceError {
		return &NoSuchUpload{f: noSuchUploadFields{diagnostics: d.fields()}}
	},
	CodeNoSuchTagSet: func(d Diagnostics) ServiceError {
		return &NoSuchTagSet{f: noSuchTagSetFields{diagnostics: d.fields()}}
	},
	CodeInvalidObjectState: func(d Diagnostics) ServiceError {
		b := NewInvalidObjectStateBuilder().
			WithMessage(d.Message).
			WithRequestID(d.RequestID).
			WithHostID(d.HostID)
		if raw, ok := d.Fields["StorageClass"]; ok {
			storageClass := types.ParseStorageClass(raw)
			b.WithStorageClass(&storageClass)
		}
		if raw, ok := d.Fields["AccessTier"]; ok {
			accessTier := types.ParseIntelligentTieringAccessTier(raw)
			b.WithAccessTier(&accessTier)
		}
		return b.Build()
	},
	CodeObjectAlreadyInActiveTierError: func(d Diagnostics) ServiceError {
		return &ObjectAlreadyInActiveTierError{f: objectAlreadyInActiveTierErrorFields{diagnostics: d.fields()}}
	},
	CodeObjectNotInActiveTierError: func(d Diagnostics) ServiceError {
		return &ObjectNotInActiveTierError{f: objectNotInActiveTierErrorFields{diagnostics: d.fields()}}
	},
	CodeAccessDenied: func(d Diagnostics) ServiceError {
		return &AccessDenied{f: accessDeniedFields{diagnostics: d.fields()}}
	},
}

// Diagnostics is the payload a wire decoder collected next to an error code
type Diagnostics struct {
	Message   *string
	RequestID *string
	HostID    *string
	// Fields holds variant specific members by wire name
	Fields map[string]string
}

func (d Diagnostics) fields() diagnostics {
	return diagnostics{
		message:   model.ClonePtr(d.Message),
		requestID: model.ClonePtr(d.RequestID),
		hostID:    model.ClonePtr(d.HostID),
	}
}

// Observer is told about every code FromCode maps
type Observer func(code string, known bool)

var observer atomic.Pointer[Observer]

// SetObserver installs o. A nil o removes it.
func SetObserver(o Observer) {
	if o == nil {
		observer.Store(nil)
		return
	}
	observer.Store(&o)
}

// FromCode maps a service error code to its error type. The payload never
// changes which type is chosen. Unknown codes produce an
// *UnrecognizedServiceError; the result is never nil.
func FromCode(code string, d Diagnostics) ServiceError {
	ctor, known := registry[code]
	if o := observer.Load(); o != nil {
		(*o)(code, known)
	}
	if !known {
		return &UnrecognizedServiceError{f: unrecognizedServiceErrorFields{
			code:        model.ClonePtr(&code),
			diagnostics: d.fields(),
		}}
	}
	return ctor(d)
}

// KnownCodes returns every code with a dedicated type, sorted
func KnownCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// IsKnownCode reports whether code has a dedicated type
func IsKnownCode(code string) bool {
	_, ok := registry[code]
	return ok
}

// AsServiceError finds the first ServiceError in err's chain
func AsServiceError(err error) (ServiceError, bool) {
	var svcErr ServiceError
	if stderrors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// IsCode reports whether err's chain holds a service error with code
func IsCode(err error, code string) bool {
	svcErr, ok := AsServiceError(err)
	return ok && svcErr.ErrorCode() == code
}

// diagnostics are the members every service error carries
type diagnostics struct {
	message   *string
	requestID *string
	hostID    *string
}

func (d diagnostics) clone() diagnostics {
	return diagnostics{
		message:   model.ClonePtr(d.message),
		requestID: model.ClonePtr(d.requestID),
		hostID:    model.ClonePtr(d.hostID),
	}
}

func (d diagnostics) format(code string) string {
	if d.message == nil {
		return fmt.Sprintf("api error %s", code)
	}
	return fmt.Sprintf("api error %s: %s", code, *d.message)
}

func (d diagnostics) equal(other diagnostics) bool {
	return model.EqualPtr(d.message, other.message) &&
		model.EqualPtr(d.requestID, other.requestID) &&
		model.EqualPtr(d.hostID, other.hostID)
}

func (d diagnostics) hash(code string) *model.Hasher {
	return model.NewHasher(code).
		String(d.message).
		String(d.requestID).
		String(d.hostID)
}

func (d diagnostics) print(name string) *model.Printer {
	return model.NewPrinter(name).
		Field("Message", d.message).
		Field("RequestID", d.requestID).
		Field("HostID", d.hostID)
}
