// Package model defines the persisted document and the request payloads.
package model

import (
	"encoding/json"
	"time"
)

// TimeLayout is the UTC timestamp format written to the document,
// e.g. 2024-01-01T08:30:00.123456Z.
const TimeLayout = "2006-01-02T15:04:05.000000Z"

// Timestamp formats t in UTC using TimeLayout.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// CodeEntry is an issued access code.
type CodeEntry struct {
	Code        string `json:"code"`
	CreatedAt   string `json:"created_at"`
	LastLoginAt string `json:"last_login_at,omitempty"`
}

// LogEntry is a journal record filed under a code. Log is kept as raw JSON
// so the payload is stored exactly as the client structured it.
type LogEntry struct {
	Code       string          `json:"code"`
	Log        json.RawMessage `json:"log"`
	ReceivedAt string          `json:"received_at"`
}

// Document is the whole persisted state. Codes and Logs are never nil once
// passed through Normalize.
type Document struct {
	Codes []CodeEntry `json:"codes"`
	Logs  []LogEntry  `json:"logs"`
}

// NewDocument returns the empty document written on first use.
func NewDocument() *Document {
	return &Document{Codes: []CodeEntry{}, Logs: []LogEntry{}}
}

// Normalize replaces missing arrays with empty ones so older or hand-edited
// files still satisfy the document shape.
func (d *Document) Normalize() {
	if d.Codes == nil {
		d.Codes = []CodeEntry{}
	}
	if d.Logs == nil {
		d.Logs = []LogEntry{}
	}
}

// FindCode returns a pointer into Codes for the entry matching code, or nil.
func (d *Document) FindCode(code string) *CodeEntry {
	for i := range d.Codes {
		if d.Codes[i].Code == code {
			return &d.Codes[i]
		}
	}
	return nil
}

// HasCode reports whether code has been issued.
func (d *Document) HasCode(code string) bool {
	return d.FindCode(code) != nil
}
