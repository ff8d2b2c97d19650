package solana

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sebamiro/solana/internal/rpc"
)

// Errors returned by Client calls. Use errors.As to tell them apart.
type (
	ConfigurationError     = rpc.ConfigurationError
	TransportError         = rpc.TransportError
	MalformedResponseError = rpc.MalformedResponseError
	RPCError               = rpc.RPCError
)

const (
	CodeParseError     = rpc.CodeParseError
	CodeInvalidRequest = rpc.CodeInvalidRequest
	CodeMethodNotFound = rpc.CodeMethodNotFound
	CodeInvalidParams  = rpc.CodeInvalidParams
	CodeInternalError  = rpc.CodeInternalError

	CodeBlockCleanedUp                 = rpc.CodeBlockCleanedUp
	CodeSendTransactionPreflight       = rpc.CodeSendTransactionPreflight
	CodeTransactionSignatureVerify     = rpc.CodeTransactionSignatureVerify
	CodeBlockNotAvailable              = rpc.CodeBlockNotAvailable
	CodeNodeUnhealthy                  = rpc.CodeNodeUnhealthy
	CodeTransactionPrecompileVerify    = rpc.CodeTransactionPrecompileVerify
	CodeSlotSkipped                    = rpc.CodeSlotSkipped
	CodeNoSnapshot                     = rpc.CodeNoSnapshot
	CodeLongTermStorageSlotSkipped     = rpc.CodeLongTermStorageSlotSkipped
	CodeKeyExcludedFromSecondaryIndex  = rpc.CodeKeyExcludedFromSecondaryIndex
	CodeTransactionHistoryNotAvailable = rpc.CodeTransactionHistoryNotAvailable
	CodeScanError                      = rpc.CodeScanError
	CodeTransactionSignatureLength     = rpc.CodeTransactionSignatureLength
	CodeBlockStatusNotAvailableYet     = rpc.CodeBlockStatusNotAvailableYet
	CodeUnsupportedTransactionVersion  = rpc.CodeUnsupportedTransactionVersion
	CodeMinContextSlotNotReached       = rpc.CodeMinContextSlotNotReached
)

var (
	ErrAccountNotFound = errors.New("account not found")
	// ErrNotConfirmed is returned when a signature is still unknown to the
	// node once the wait gives up.
	ErrNotConfirmed = errors.New("transaction not confirmed")
)

// TransactionError reports a transaction the cluster processed but rejected.
// Err is the node's error value, kept as raw JSON.
type TransactionError struct {
	Signature Signature
	Err       json.RawMessage
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction %s failed: %s", e.Signature, e.Err)
}

// IsRPCError reports whether err carries a node error with the given code.
func IsRPCError(err error, code int) bool {
	var rpcErr *RPCError
	return errors.As(err, &rpcErr) && rpcErr.Code == code
}
