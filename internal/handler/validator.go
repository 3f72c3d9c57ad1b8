package handler

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/go-playground/validator/v10"
)

func rawJSON(fl validator.FieldLevel) ([]byte, bool) {
	field := fl.Field()
	if field.Kind() != reflect.Slice || field.Type().Elem().Kind() != reflect.Uint8 {
		return nil, false
	}
	raw := bytes.TrimSpace(field.Bytes())
	return raw, len(raw) > 0 && json.Valid(raw)
}

// JSONObjectValidator accepts a raw JSON field only when it holds an object.
var JSONObjectValidator = func(fl validator.FieldLevel) bool {
	raw, ok := rawJSON(fl)
	return ok && raw[0] == '{'
}

// TruthyValidator accepts a raw JSON field holding a non-empty value: not
// null, false, zero, "", [] or {}.
var TruthyValidator = func(fl validator.FieldLevel) bool {
	raw, ok := rawJSON(fl)
	if !ok {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return false
	}
}

// NewValidator returns a validator with the custom tags used by request payloads.
func NewValidator() (*validator.Validate, error) {
	v := validator.New()
	if err := v.RegisterValidation("jsonobject", JSONObjectValidator); err != nil {
		return nil, err
	}
	if err := v.RegisterValidation("truthy", TruthyValidator); err != nil {
		return nil, err
	}
	return v, nil
}
