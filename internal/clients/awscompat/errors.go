package awscompat

import (
	stderrors "errors"

	"github.com/aws/smithy-go"

	"github.com/KirkDiggler/s3-model/internal/serviceerrors"
)

type requestIDer interface {
	ServiceRequestID() string
}

type hostIDer interface {
	ServiceHostID() string
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// FromAPIError classifies a failure returned by the SDK. Errors without a
// service error code are returned unchanged. Request and host ids are taken
// from the SDK's response error when it carries them.
func FromAPIError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if !stderrors.As(err, &apiErr) {
		return err
	}

	d := serviceerrors.Diagnostics{
		Message: nonEmpty(apiErr.ErrorMessage()),
	}
	var rid requestIDer
	if stderrors.As(err, &rid) {
		d.RequestID = nonEmpty(rid.ServiceRequestID())
	}
	var hid hostIDer
	if stderrors.As(err, &hid) {
		d.HostID = nonEmpty(hid.ServiceHostID())
	}

	return serviceerrors.FromCode(apiErr.ErrorCode(), d)
}
