package rpc

import (
	"encoding/json"
	"net/http"
)

// Version is the only JSON-RPC protocol version spoken.
const Version = "2.0"

//go:generate mockgen -source=rpc.go -destination=mocks/http_mock.go -package=mocks

// HTTP is the transport a Client posts requests through.
type HTTP interface {
	Do(req *http.Request) (*http.Response, error)
}

type Request struct {
	Version string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// Response is a decoded response envelope. Exactly one of Result and Error
// is set. ID is kept raw: nodes answer unparseable requests with a null id.
type Response struct {
	Version string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *ErrorObject    `json:"error,omitempty"`
}

// ErrorObject is the error member of a response envelope.
type ErrorObject struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// decodeResponse splits a response body into its result or error member.
// A present "result": null is a valid result and is kept as the literal null.
func decodeResponse(body []byte) (*Response, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	var resp Response
	if raw, ok := fields["jsonrpc"]; ok {
		if err := json.Unmarshal(raw, &resp.Version); err != nil {
			return nil, err
		}
	}
	resp.ID = fields["id"]

	if raw, ok := fields["error"]; ok && string(raw) != "null" {
		obj, err := decodeErrorObject(raw)
		if err != nil {
			return nil, err
		}
		resp.Error = obj
		return &resp, nil
	}
	raw, ok := fields["result"]
	if !ok {
		return nil, errNoResultOrError
	}
	resp.Result = raw
	return &resp, nil
}

// decodeErrorObject requires both code and message; a zero code is never
// what a node meant.
func decodeErrorObject(raw json.RawMessage) (*ErrorObject, error) {
	var obj struct {
		Code    *int            `json:"code"`
		Message *string         `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	if obj.Code == nil || obj.Message == nil {
		return nil, errInvalidErrorObject
	}
	return &ErrorObject{Code: *obj.Code, Message: *obj.Message, Data: obj.Data}, nil
}
