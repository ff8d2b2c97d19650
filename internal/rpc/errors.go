package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Error codes returned by Solana validators.
const (
	CodeBlockCleanedUp                 = -32001
	CodeSendTransactionPreflight       = -32002
	CodeTransactionSignatureVerify     = -32003
	CodeBlockNotAvailable              = -32004
	CodeNodeUnhealthy                  = -32005
	CodeTransactionPrecompileVerify    = -32006
	CodeSlotSkipped                    = -32007
	CodeNoSnapshot                     = -32008
	CodeLongTermStorageSlotSkipped     = -32009
	CodeKeyExcludedFromSecondaryIndex  = -32010
	CodeTransactionHistoryNotAvailable = -32011
	CodeScanError                      = -32012
	CodeTransactionSignatureLength     = -32013
	CodeBlockStatusNotAvailableYet     = -32014
	CodeUnsupportedTransactionVersion  = -32015
	CodeMinContextSlotNotReached       = -32016
)

var (
	errNoResultOrError    = errors.New("response has neither result nor error")
	errInvalidErrorObject = errors.New("error member lacks code or message")
)

// ConfigurationError reports a client or call that cannot be set up. It is
// returned before any network I/O.
type ConfigurationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rpc configuration: %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("rpc configuration: %s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// TransportError reports an HTTP exchange that could not complete. StatusCode
// is zero when no response was received.
type TransportError struct {
	Method     string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("rpc transport: %s: bad status %d: %v", e.Method, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("rpc transport: %s: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError reports a body that is not a JSON-RPC 2.0 response,
// or a result that does not fit the type it was decoded into.
type MalformedResponseError struct {
	Method string
	Body   []byte
	Err    error
}

// maxBodyInError bounds the body excerpt kept for diagnostics.
const maxBodyInError = 512

func newMalformed(method string, body []byte, err error) *MalformedResponseError {
	if len(body) > maxBodyInError {
		body = body[:maxBodyInError]
	}
	return &MalformedResponseError{Method: method, Body: append([]byte(nil), body...), Err: err}
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("rpc malformed response: %s: %v", e.Method, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// RPCError is an error object returned by the node, propagated verbatim.
type RPCError struct {
	Code    int
	Message string
	Data    json.RawMessage
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

func newRPCError(obj *ErrorObject) *RPCError {
	return &RPCError{Code: obj.Code, Message: obj.Message, Data: obj.Data}
}
