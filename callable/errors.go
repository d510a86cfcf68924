package callable

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

type errorCode struct {
	httpStatus int
	wireStatus string
	clientCode string
}

var errorCodes = map[codes.Code]errorCode{
	codes.InvalidArgument:   {http.StatusBadRequest, "INVALID_ARGUMENT", "invalid-argument"},
	codes.Unauthenticated:   {http.StatusUnauthorized, "UNAUTHENTICATED", "unauthenticated"},
	codes.PermissionDenied:  {http.StatusForbidden, "PERMISSION_DENIED", "permission-denied"},
	codes.NotFound:          {http.StatusNotFound, "NOT_FOUND", "not-found"},
	codes.Unimplemented:     {http.StatusNotImplemented, "UNIMPLEMENTED", "unimplemented"},
	codes.Unavailable:       {http.StatusServiceUnavailable, "UNAVAILABLE", "unavailable"},
	codes.DeadlineExceeded:  {http.StatusGatewayTimeout, "DEADLINE_EXCEEDED", "deadline-exceeded"},
	codes.ResourceExhausted: {http.StatusTooManyRequests, "RESOURCE_EXHAUSTED", "resource-exhausted"},
	codes.Internal:          {http.StatusInternalServerError, "INTERNAL", "internal"},
}

func lookup(code codes.Code) errorCode {
	if ec, ok := errorCodes[code]; ok {
		return ec
	}
	return errorCodes[codes.Internal]
}

// HTTPStatus is the response status used for an error with code.
func HTTPStatus(code codes.Code) int {
	return lookup(code).httpStatus
}

// WireStatus is the "status" field of the callable error envelope.
func WireStatus(code codes.Code) string {
	return lookup(code).wireStatus
}

// ClientCode is the code client SDKs surface, e.g. "invalid-argument".
func ClientCode(code codes.Code) string {
	return lookup(code).clientCode
}
