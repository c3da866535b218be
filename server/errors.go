package server

import (
	"github.com/pkg/errors"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"block-lottery/lottery"
	"block-lottery/lottery/store"
)

var ErrDiagnosticsDenied = errors.New("diagnostics not permitted")

const errorDomain = "lottery"

var errorReasons = []struct {
	reason string
	err    error
	code   codes.Code
}{
	{"INVALID_AMOUNT", lottery.ErrInvalidAmount, codes.InvalidArgument},
	{"INVALID_CHALLENGE", lottery.ErrInvalidChallenge, codes.InvalidArgument},
	{"NOT_FOUND", lottery.ErrNotFound, codes.NotFound},
	{"TRANSFER_FAILURE", lottery.ErrTransferFailure, codes.Aborted},
	{"INSUFFICIENT_POT", lottery.ErrInsufficientPot, codes.Internal},
	{"DIAGNOSTICS_DENIED", ErrDiagnosticsDenied, codes.PermissionDenied},
	{"STALE_STATE", store.ErrStaleState, codes.FailedPrecondition},
}

// toStatus maps engine errors onto gRPC status codes and tags the status with
// an ErrorInfo naming the sentinel.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	for _, r := range errorReasons {
		if !errors.Is(err, r.err) {
			continue
		}
		st := status.New(r.code, err.Error())
		detailed, derr := st.WithDetails(&errdetails.ErrorInfo{Reason: r.reason, Domain: errorDomain})
		if derr != nil {
			return st.Err()
		}
		return detailed.Err()
	}
	return status.Error(codes.Unavailable, err.Error())
}

// FromStatus turns a status returned by the server back into the matching
// sentinel so callers can use errors.Is.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != errorDomain {
			continue
		}
		for _, r := range errorReasons {
			if r.reason == info.GetReason() {
				return errors.Wrap(r.err, st.Message())
			}
		}
	}
	return err
}
