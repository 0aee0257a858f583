package smtbridge

import "fmt"

// RPCError wraps a failure reported inside an otherwise-successful gRPC
// response (the backend returned an AssertResponse/CheckSatResponse/
// GetValueResponse whose own error field is set) rather than a transport
// failure, which surfaces as a plain grpc/status error instead.
type RPCError struct {
	Call    string
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("smtbridge: %s: %s", e.Call, e.Message)
}

// UnresolvedHandleError describes a term the Bridge holds no handle for.
// ValueOf does not return it: ValueOf mints a fresh handle for any term it
// has not seen before.
type UnresolvedHandleError struct {
	TermID uint64
}

func (e *UnresolvedHandleError) Error() string {
	return fmt.Sprintf("smtbridge: no handle registered for term %d", e.TermID)
}
