// Package telemetry wires logging and metrics to the decode paths that meet
// values this client does not know
package telemetry

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/s3-model/internal/errors"
)

// Log formats accepted by NewLogger
const (
	FormatText = "text"
	FormatJSON = "json"
)

// NewLogger creates a logger writing to out at the given level and format
func NewLogger(out io.Writer, level, format string) (*logrus.Logger, error) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid log level %q", level)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(parsed)

	switch strings.ToLower(format) {
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	case FormatText, "":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	default:
		return nil, errors.InvalidArgumentf("invalid log format %q", format)
	}

	return logger, nil
}
