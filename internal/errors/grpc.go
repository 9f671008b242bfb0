package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	detailCode      = "code"
	detailErrorCode = "error_code"
	detailMeta      = "meta"

	// MetaErrorCode is the meta key FromGRPCError uses for a service error code
	MetaErrorCode = "error_code"
)

// serviceCoded matches errors that carry a service-reported error code
type serviceCoded interface {
	ErrorCode() string
}

// ToGRPCError converts an error to a gRPC status error
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Already a status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	st := GRPCStatus(err)

	details := map[string]*structpb.Value{
		detailCode: structpb.NewStringValue(string(GetCode(err))),
	}
	var coded serviceCoded
	if errors.As(err, &coded) {
		details[detailErrorCode] = structpb.NewStringValue(coded.ErrorCode())
	}
	if meta := GetMeta(err); len(meta) > 0 {
		details[detailMeta] = structpb.NewStructValue(metaToStruct(meta))
	}

	if withDetails, detailErr := st.WithDetails(&structpb.Struct{Fields: details}); detailErr == nil {
		st = withDetails
	}

	return st.Err()
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		fields, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		if code := fields.GetFields()[detailCode].GetStringValue(); code != "" {
			customErr.Code = Code(code)
		}
		if meta := fields.GetFields()[detailMeta].GetStructValue(); meta != nil {
			customErr.WithMetaMap(meta.AsMap())
		}
		if errorCode := fields.GetFields()[detailErrorCode].GetStringValue(); errorCode != "" {
			customErr.WithMeta(MetaErrorCode, errorCode)
		}
		break
	}

	return customErr
}

// GRPCStatus returns the gRPC status for any error
func GRPCStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}

	if st, ok := status.FromError(err); ok {
		return st
	}

	var categorized Categorized
	if errors.As(err, &categorized) {
		return status.New(categorized.Category().GRPCCode(), GetMessage(err))
	}

	return status.New(codes.Internal, err.Error())
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeCanceled:
		return codes.Canceled
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeDeadlineExceeded:
		return codes.DeadlineExceeded
	case CodeNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodePermissionDenied:
		return codes.PermissionDenied
	case CodeResourceExhausted:
		return codes.ResourceExhausted
	case CodeFailedPrecondition:
		return codes.FailedPrecondition
	case CodeAborted:
		return codes.Aborted
	case CodeOutOfRange:
		return codes.OutOfRange
	case CodeUnimplemented:
		return codes.Unimplemented
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable:
		return codes.Unavailable
	case CodeDataLoss:
		return codes.DataLoss
	case CodeUnauthenticated:
		return codes.Unauthenticated
	default:
		return codes.Unknown
	}
}

// grpcCodeToCode converts a gRPC code to our error code
func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.Canceled:
		return CodeCanceled
	case codes.Unknown:
		return CodeUnknown
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.DeadlineExceeded:
		return CodeDeadlineExceeded
	case codes.NotFound:
		return CodeNotFound
	case codes.AlreadyExists:
		return CodeAlreadyExists
	case codes.PermissionDenied:
		return CodePermissionDenied
	case codes.ResourceExhausted:
		return CodeResourceExhausted
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.Aborted:
		return CodeAborted
	case codes.OutOfRange:
		return CodeOutOfRange
	case codes.Unimplemented:
		return CodeUnimplemented
	case codes.Internal:
		return CodeInternal
	case codes.Unavailable:
		return CodeUnavailable
	case codes.DataLoss:
		return CodeDataLoss
	case codes.Unauthenticated:
		return CodeUnauthenticated
	default:
		return CodeInternal
	}
}

// metaToStruct converts metadata into a structpb.Struct. Values structpb
// cannot represent are carried as their fmt.Sprint form.
func metaToStruct(meta map[string]interface{}) *structpb.Struct {
	fields := make(map[string]*structpb.Value, len(meta))
	for k, v := range meta {
		fields[k] = toProtoValue(v)
	}
	return &structpb.Struct{Fields: fields}
}

func toProtoValue(v interface{}) *structpb.Value {
	switch typed := v.(type) {
	case map[string][]string:
		fields := make(map[string]*structpb.Value, len(typed))
		for k, list := range typed {
			values := make([]*structpb.Value, len(list))
			for i, item := range list {
				values[i] = structpb.NewStringValue(item)
			}
			fields[k] = structpb.NewListValue(&structpb.ListValue{Values: values})
		}
		return structpb.NewStructValue(&structpb.Struct{Fields: fields})
	case []string:
		values := make([]*structpb.Value, len(typed))
		for i, item := range typed {
			values[i] = structpb.NewStringValue(item)
		}
		return structpb.NewListValue(&structpb.ListValue{Values: values})
	}

	value, err := structpb.NewValue(v)
	if err != nil {
		return structpb.NewStringValue(fmt.Sprint(v))
	}
	return value
}
