package testutils

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/KirkDiggler/s3-model/internal/pkg/idgen"
	"github.com/KirkDiggler/s3-model/internal/serviceerrors"
)

// Default locations for fixtures
const (
	TestBucket = "media-archive"
	TestKey    = "2024/03/cat.png"
	TestETag   = `"9b2cf535f27731c974343645a3985328"`
)

// TestTime is the instant fixtures use for timestamps
var TestTime = time.Date(2024, time.March, 9, 14, 30, 0, 0, time.UTC)

// ServiceDiagnostics returns diagnostics with fresh request and host ids,
// as a decoder would collect them from an error response
func ServiceDiagnostics(message string) serviceerrors.Diagnostics {
	return serviceerrors.Diagnostics{
		Message:   aws.String(message),
		RequestID: aws.String((&idgen.RequestIDGenerator{}).Generate()),
		HostID:    aws.String((&idgen.HostIDGenerator{}).Generate()),
	}
}
