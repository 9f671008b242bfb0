package serviceerrors

import (
	"github.com/aws/smithy-go"

	"github.com/KirkDiggler/s3-model/internal/errors"
	"github.com/KirkDiggler/s3-model/internal/model"
)

// UnrecognizedServiceError is a failure whose code has no dedicated type.
// It keeps the raw code so callers can still match on it.
type UnrecognizedServiceError struct {
	f unrecognizedServiceErrorFields
}

type unrecognizedServiceErrorFields struct {
	code        *string
	diagnostics diagnostics
}

func (f unrecognizedServiceErrorFields) clone() unrecognizedServiceErrorFields {
	return unrecognizedServiceErrorFields{
		code:        model.ClonePtr(f.code),
		diagnostics: f.diagnostics.clone(),
	}
}

type UnrecognizedServiceErrorBuilder struct {
	f unrecognizedServiceErrorFields
}

func NewUnrecognizedServiceErrorBuilder() *UnrecognizedServiceErrorBuilder {
	return &UnrecognizedServiceErrorBuilder{}
}

// WithCode sets the raw service code
func (b *UnrecognizedServiceErrorBuilder) WithCode(v *string) *UnrecognizedServiceErrorBuilder {
	b.f.code = model.ClonePtr(v)
	return b
}

func (b *UnrecognizedServiceErrorBuilder) WithMessage(v *string) *UnrecognizedServiceErrorBuilder {
	b.f.diagnostics.message = model.ClonePtr(v)
	return b
}

func (b *UnrecognizedServiceErrorBuilder) WithRequestID(v *string) *UnrecognizedServiceErrorBuilder {
	b.f.diagnostics.requestID = model.ClonePtr(v)
	return b
}

func (b *UnrecognizedServiceErrorBuilder) WithHostID(v *string) *UnrecognizedServiceErrorBuilder {
	b.f.diagnostics.hostID = model.ClonePtr(v)
	return b
}

func (b *UnrecognizedServiceErrorBuilder) Build() *UnrecognizedServiceError {
	return &UnrecognizedServiceError{f: b.f.clone()}
}

func (e *UnrecognizedServiceError) ToBuilder() *UnrecognizedServiceErrorBuilder {
	return &UnrecognizedServiceErrorBuilder{f: e.f.clone()}
}

func (e *UnrecognizedServiceError) Error() string {
	return e.f.diagnostics.format(e.ErrorCode())
}

// ErrorCode returns the raw code the service sent
func (e *UnrecognizedServiceError) ErrorCode() string {
	return model.Deref(e.f.code)
}

func (e *UnrecognizedServiceError) ErrorMessage() string {
	return model.Deref(e.f.diagnostics.message)
}

func (e *UnrecognizedServiceError) ErrorFault() smithy.ErrorFault {
	return smithy.FaultUnknown
}

func (e *UnrecognizedServiceError) Category() errors.Code {
	return errors.CodeUnknown
}

func (e *UnrecognizedServiceError) RequestID() (string, bool) {
	return model.Get(e.f.diagnostics.requestID)
}

func (e *UnrecognizedServiceError) HostID() (string, bool) {
	return model.Get(e.f.diagnostics.hostID)
}

func (e *UnrecognizedServiceError) Equal(other *UnrecognizedServiceError) bool {
	if e == nil || other == nil {
		return e == other
	}
	return model.EqualPtr(e.f.code, other.f.code) &&
		e.f.diagnostics.equal(other.f.diagnostics)
}

func (e *UnrecognizedServiceError) Hash() uint64 {
	if e == nil {
		return 0
	}
	return e.f.diagnostics.hash("UnrecognizedServiceError").
		String(e.f.code).
		Sum64()
}

func (e *UnrecognizedServiceError) String() string {
	return e.f.diagnostics.print("UnrecognizedServiceError").
		Field("Code", e.f.code).
		String()
}
