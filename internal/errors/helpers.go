package errors

import (
	"errors"
)

// Categorized is implemented by errors that know their own category.
// *Error and every service error satisfy it.
type Categorized interface {
	error
	Category() Code
}

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the category from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var categorized Categorized
	if errors.As(err, &categorized) {
		return categorized.Category()
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsPermissionDenied checks if an error is a permission denied error
func IsPermissionDenied(err error) bool {
	return GetCode(err) == CodePermissionDenied
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsUnknown checks if an error could not be categorized by the service
func IsUnknown(err error) bool {
	return GetCode(err) == CodeUnknown
}

// IsUnavailable checks if an error reports a backend that could not be reached
func IsUnavailable(err error) bool {
	return GetCode(err) == CodeUnavailable
}
