// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"bytes"
	"encoding/json"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// paramField is one validatable parameter, flattened out of the struct
// (embedded structs contribute their fields to the parent's set).
type paramField struct {
	name     string
	index    []int
	kind     string
	required bool
	enum     []string
	fallback string
	hasDflt  bool
}

// decodeArguments validates the raw argument bag against op's parameter
// struct and, on success, returns the populated struct. Checks are
// coarse by design: required keys present, JSON kind matches the field,
// enum values in range, no unknown keys. Nested structures such as node
// graphs pass through opaquely; the backend is authoritative on their
// shape.
//
// Names listed in skipRequired are exempt from the required-presence
// check. The dispatcher exempts sessionId so that an absent session
// yields the session guidance message instead of a validation error.
//
// All failures are validation-category errors. The caller's argument
// values may be echoed back in enum errors, so no parameter carrying a
// credential may declare an enum.
func decodeArguments(op *Operation, args json.RawMessage, skipRequired ...string) (any, error) {
	params := op.Params()
	fields := collectParamFields(reflect.TypeOf(params).Elem(), nil)

	bag := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(args)) > 0 && !bytes.Equal(bytes.TrimSpace(args), []byte("null")) {
		if err := json.Unmarshal(args, &bag); err != nil {
			return nil, Validation("arguments must be a JSON object: %v", err)
		}
	}

	known := make(map[string]bool, len(fields))
	for _, field := range fields {
		known[field.name] = true

		raw, present := bag[field.name]
		if present && jsonKind(raw) == "null" {
			present = false
		}
		if !present {
			if field.required && !slices.Contains(skipRequired, field.name) {
				return nil, Validation("missing required argument %q", field.name)
			}
			continue
		}

		if field.kind != "" {
			if got := jsonKind(raw); got != field.kind {
				return nil, Validation("argument %q must be %s, got %s", field.name, article(field.kind), got)
			}
		}

		if len(field.enum) > 0 {
			var value string
			if err := json.Unmarshal(raw, &value); err != nil {
				return nil, Validation("argument %q must be a string", field.name)
			}
			if !slices.Contains(field.enum, value) {
				return nil, Validation("argument %q must be one of %s, got %q",
					field.name, strings.Join(field.enum, ", "), value)
			}
		}
	}

	// Unknown keys are rejected rather than silently dropped: a typoed
	// argument name would otherwise turn into a missing-or-defaulted
	// value and a confusing backend error.
	unknown := make([]string, 0)
	for key := range bag {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		names := make([]string, 0, len(fields))
		for _, field := range fields {
			names = append(names, field.name)
		}
		return nil, Validation("unknown argument %q (expected: %s)", unknown[0], strings.Join(names, ", "))
	}

	if len(bag) > 0 {
		if err := json.Unmarshal(args, params); err != nil {
			return nil, Validation("decoding arguments: %v", err)
		}
	}

	if err := applyDefaults(reflect.ValueOf(params).Elem(), fields); err != nil {
		return nil, err
	}

	return params, nil
}

// collectParamFields flattens a parameter struct type into its
// validatable fields. Embedded structs are walked recursively with the
// index path preserved so defaults can be written back through them.
func collectParamFields(structType reflect.Type, prefix []int) []paramField {
	var fields []paramField
	for i := range structType.NumField() {
		field := structType.Field(i)
		index := append(slices.Clone(prefix), i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			fields = append(fields, collectParamFields(field.Type, index)...)
			continue
		}
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("json")
		if tag == "" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}

		entry := paramField{
			name:     name,
			index:    index,
			kind:     expectedKind(field.Type),
			fallback: field.Tag.Get("default"),
		}
		entry.hasDflt = entry.fallback != ""
		entry.required = field.Tag.Get("required") == "true" && !entry.hasDflt
		if enumTag := field.Tag.Get("enum"); enumTag != "" {
			entry.enum = strings.Split(enumTag, ",")
		}
		fields = append(fields, entry)
	}
	return fields
}

var rawMessageType = reflect.TypeOf(json.RawMessage{})

// expectedKind maps a Go field type to the JSON kind callers must
// supply. An empty string means any kind is accepted (RawMessage
// passthrough fields).
func expectedKind(fieldType reflect.Type) string {
	if fieldType.Kind() == reflect.Ptr {
		fieldType = fieldType.Elem()
	}
	if fieldType == rawMessageType {
		return ""
	}
	switch fieldType.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int64, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	default:
		return ""
	}
}

// jsonKind classifies a raw JSON value by its first significant byte.
func jsonKind(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "null"
	}
	switch trimmed[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

// article prepends the indefinite article for error messages.
func article(kind string) string {
	switch kind {
	case "object", "array":
		return "an " + kind
	default:
		return "a " + kind
	}
}

// applyDefaults fills fields that carry a default tag and were left at
// their zero value by the caller.
func applyDefaults(structValue reflect.Value, fields []paramField) error {
	for _, field := range fields {
		if !field.hasDflt {
			continue
		}
		target := structValue.FieldByIndex(field.index)
		if !target.IsZero() {
			continue
		}
		switch target.Kind() {
		case reflect.String:
			target.SetString(field.fallback)
		case reflect.Bool:
			parsed, err := strconv.ParseBool(field.fallback)
			if err != nil {
				return Internal("default for %q: %v", field.name, err)
			}
			target.SetBool(parsed)
		case reflect.Int, reflect.Int64:
			parsed, err := strconv.ParseInt(field.fallback, 10, 64)
			if err != nil {
				return Internal("default for %q: %v", field.name, err)
			}
			target.SetInt(parsed)
		case reflect.Float64:
			parsed, err := strconv.ParseFloat(field.fallback, 64)
			if err != nil {
				return Internal("default for %q: %v", field.name, err)
			}
			target.SetFloat(parsed)
		case reflect.Slice:
			if target.Type().Elem().Kind() == reflect.String {
				target.Set(reflect.ValueOf(strings.Split(field.fallback, ",")))
				continue
			}
			return Internal("default for %q: unsupported slice type %s", field.name, target.Type())
		default:
			return Internal("default for %q: unsupported type %s", field.name, target.Type())
		}
	}
	return nil
}
