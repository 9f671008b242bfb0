package telemetry

import (
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/s3-model/internal/enum"
	"github.com/KirkDiggler/s3-model/internal/serviceerrors"
)

// Install routes unrecognized enum values and service error codes to
// logger and metrics. Either may be nil. The returned func removes both
// hooks.
func Install(logger logrus.FieldLogger, metrics *Metrics) func() {
	enum.SetUnrecognizedHook(func(vocabulary, value string) {
		if logger != nil {
			logger.WithFields(logrus.Fields{
				"vocabulary": vocabulary,
				"value":      value,
			}).Debug("unrecognized enum value")
		}
		if metrics != nil {
			metrics.UnrecognizedEnumValue(vocabulary)
		}
	})

	serviceerrors.SetObserver(func(code string, known bool) {
		if !known && logger != nil {
			logger.WithField("error_code", code).Warn("unrecognized service error code")
		}
		if metrics != nil {
			metrics.ServiceError(code, known)
		}
	})

	return func() {
		enum.SetUnrecognizedHook(nil)
		serviceerrors.SetObserver(nil)
	}
}
