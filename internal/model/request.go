package model

import (
	"bytes"
	"encoding/json"
)

// LoginRequest is the body of POST /login. Code stays raw so a present but
// non-string value is still routed to the lookup instead of being dropped.
type LoginRequest struct {
	Code json.RawMessage `validate:"truthy"`
}

// LogRequest is the body of POST /logs.
type LogRequest struct {
	Code json.RawMessage `validate:"truthy"`
	Log  json.RawMessage `validate:"jsonobject"`
}

// NewLoginRequest picks the login fields out of a decoded body. Keys match exactly.
func NewLoginRequest(fields map[string]json.RawMessage) LoginRequest {
	return LoginRequest{Code: fields["code"]}
}

// NewLogRequest picks the log fields out of a decoded body. Keys match exactly.
func NewLogRequest(fields map[string]json.RawMessage) LogRequest {
	return LogRequest{Code: fields["code"], Log: fields["log"]}
}

// CodeString returns the code when it was sent as a JSON string.
func (r LoginRequest) CodeString() (string, bool) {
	return codeString(r.Code)
}

// CodeString returns the code when it was sent as a JSON string.
func (r LogRequest) CodeString() (string, bool) {
	return codeString(r.Code)
}

// codeString reports false for any non-string value; such a code can never
// match an issued one.
func codeString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
