package retry

import (
	"context"
	"errors"
	"net"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FailureClass is a diagnostic-only classification of why a Switcher
// validation failed. It never affects retry counting or backoff —
// spec.md's retry discipline is purely count-based — but it's
// attached to logs, traces, and metrics so operators can tell a flaky
// ping test from a Switcher that's unreachable.
type FailureClass string

const (
	FailureClassTimeout    FailureClass = "timeout"
	FailureClassUnreachable FailureClass = "unreachable"
	FailureClassRejected   FailureClass = "rejected"
	FailureClassUnknown    FailureClass = "unknown"
)

// Classify inspects an error returned by a Switcher's validation
// attempt and assigns it a diagnostic class.
func Classify(err error) FailureClass {
	if err == nil {
		return FailureClassUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return FailureClassTimeout
	}
	if errors.Is(err, context.Canceled) {
		return FailureClassRejected
	}

	if grpcStatus, ok := status.FromError(err); ok {
		switch grpcStatus.Code() {
		case codes.DeadlineExceeded:
			return FailureClassTimeout
		case codes.Unavailable, codes.Aborted, codes.ResourceExhausted:
			return FailureClassUnreachable
		case codes.InvalidArgument, codes.PermissionDenied, codes.FailedPrecondition:
			return FailureClassRejected
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureClassTimeout
	}

	lower := strings.ToLower(err.Error())
	switch {
	case strings.Contains(lower, "timeout"), strings.Contains(lower, "timed out"):
		return FailureClassTimeout
	case strings.Contains(lower, "connection refused"), strings.Contains(lower, "unreachable"), strings.Contains(lower, "no route"):
		return FailureClassUnreachable
	case strings.Contains(lower, "rejected"), strings.Contains(lower, "denied"):
		return FailureClassRejected
	default:
		return FailureClassUnknown
	}
}
