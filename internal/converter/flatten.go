// Package converter turns a validated JSON document into a flat, ordered
// list of environment variable records. The traversal is depth-first in
// document insertion order; that order is part of the contract.
package converter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/mcrawford/flatenv/internal/errors"
	"github.com/mcrawford/flatenv/internal/models"
)

// objectPlaceholder is what a nested object inside a collapsed array
// stringifies to. Lossy legacy behavior, kept for compatibility and
// always accompanied by a warning.
const objectPlaceholder = "[object Object]"

// Result carries the flattened records and the warnings collected while
// producing them.
type Result struct {
	Records  []models.EnvRecord
	Warnings []string
}

// Flatten converts a document into environment variable records. Options
// are normalized before use, so callers may pass a partially filled
// struct.
func Flatten(doc *models.JSONObject, opts models.ConversionOptions) (*Result, error) {
	f := &flattener{
		opts:     NormalizeConversionOptions(opts),
		records:  make([]models.EnvRecord, 0),
		warnings: make([]string, 0),
	}
	if err := f.walkObject(doc, "", ""); err != nil {
		return nil, errors.NewConversionError("failed to flatten document", err)
	}
	return &Result{Records: f.records, Warnings: f.warnings}, nil
}

type flattener struct {
	opts     models.ConversionOptions
	records  []models.EnvRecord
	warnings []string
}

func (f *flattener) warnf(format string, args ...any) {
	f.warnings = append(f.warnings, fmt.Sprintf(format, args...))
}

func (f *flattener) walkObject(obj *models.JSONObject, envKey, jsonPath string) error {
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		sanitized := f.sanitizeKey(pair.Key)
		childKey := sanitized
		if envKey != "" {
			childKey = envKey + f.opts.KeySeparator + sanitized
		}
		childPath := pair.Key
		if jsonPath != "" {
			childPath = jsonPath + "." + pair.Key
		}
		if err := f.walkValue(pair.Value, childKey, childPath); err != nil {
			return err
		}
	}
	return nil
}

func (f *flattener) walkValue(value models.JSONValue, envKey, jsonPath string) error {
	switch v := value.(type) {
	case nil:
		f.emitNull(envKey, jsonPath, false, 0)
		return nil
	case *models.JSONObject:
		return f.walkObject(v, envKey, jsonPath)
	case models.JSONArray:
		return f.walkArray(v, envKey, jsonPath)
	case string:
		f.emit(envKey, v, jsonPath, models.TypeString, false, 0)
		return nil
	case bool:
		f.emit(envKey, strconv.FormatBool(v), jsonPath, models.TypeBoolean, false, 0)
		return nil
	case json.Number:
		f.emit(envKey, v.String(), jsonPath, models.TypeNumber, false, 0)
		return nil
	default:
		return fmt.Errorf("unexpected json value type %T at %s", v, jsonPath)
	}
}

func (f *flattener) walkArray(arr models.JSONArray, envKey, jsonPath string) error {
	if len(arr) == 0 {
		f.warnf("empty array found at %q, nothing to convert", jsonPath)
		return nil
	}
	if f.opts.JoinArrays {
		f.emitJoinedArray(arr, envKey, jsonPath)
		return nil
	}

	for i, element := range arr {
		childKey := envKey + f.opts.KeySeparator + strconv.Itoa(i)
		childPath := fmt.Sprintf("%s[%d]", jsonPath, i)
		switch v := element.(type) {
		case *models.JSONObject:
			if err := f.walkObject(v, childKey, childPath); err != nil {
				return err
			}
		case models.JSONArray:
			if err := f.walkArray(v, childKey, childPath); err != nil {
				return err
			}
		case nil:
			f.emitNull(childKey, childPath, true, i)
		case string:
			f.emit(childKey, v, childPath, models.TypeString, true, i)
		case bool:
			f.emit(childKey, strconv.FormatBool(v), childPath, models.TypeBoolean, true, i)
		case json.Number:
			f.emit(childKey, v.String(), childPath, models.TypeNumber, true, i)
		default:
			return fmt.Errorf("unexpected json value type %T at %s", v, childPath)
		}
	}
	return nil
}

// emitJoinedArray collapses an array into one comma-joined record.
// Nested objects and arrays degrade to the "[object Object]" placeholder.
func (f *flattener) emitJoinedArray(arr models.JSONArray, envKey, jsonPath string) {
	parts := make([]string, len(arr))
	for i, element := range arr {
		switch v := element.(type) {
		case *models.JSONObject, models.JSONArray:
			f.warnf("nested value in array at %q collapsed to %q, enable array indices to keep its contents", jsonPath, objectPlaceholder)
			parts[i] = objectPlaceholder
		case nil:
			parts[i] = ""
		case string:
			parts[i] = v
		case bool:
			parts[i] = strconv.FormatBool(v)
		case json.Number:
			parts[i] = v.String()
		default:
			parts[i] = f.stringifyFallback(v)
		}
	}
	f.emit(envKey, strings.Join(parts, ","), jsonPath, models.TypeArray, false, 0)
}

func (f *flattener) emitNull(envKey, jsonPath string, isArrayElement bool, index int) {
	switch f.opts.NullHandling {
	case models.NullOmit:
	case models.NullLiteral:
		f.emit(envKey, "null", jsonPath, models.TypeNull, isArrayElement, index)
	default:
		f.emit(envKey, "", jsonPath, models.TypeNull, isArrayElement, index)
	}
}

// emit finalizes one record: naming convention first, then the verbatim
// prefix.
func (f *flattener) emit(envKey, value, jsonPath string, valueType models.ValueType, isArrayElement bool, index int) {
	key := f.applyNamingConvention(envKey)
	key = f.opts.Prefix + key
	f.records = append(f.records, models.EnvRecord{
		Key:            key,
		Value:          value,
		OriginalPath:   jsonPath,
		OriginalType:   valueType,
		IsArrayElement: isArrayElement,
		ArrayIndex:     index,
	})
}

func (f *flattener) applyNamingConvention(key string) string {
	switch f.opts.NamingConvention {
	case models.NamingUppercase:
		return strings.ToUpper(key)
	case models.NamingLowercase:
		return strings.ToLower(key)
	case models.NamingSnake:
		return f.transformSegments(key, strcase.ToSnake)
	case models.NamingScreamingSnake:
		return f.transformSegments(key, strcase.ToScreamingSnake)
	default:
		return key
	}
}

// transformSegments applies a case transform to each path segment
// individually so the separator structure survives.
func (f *flattener) transformSegments(key string, transform func(string) string) string {
	segments := strings.Split(key, f.opts.KeySeparator)
	for i, segment := range segments {
		if segment == "" {
			continue
		}
		segments[i] = transform(segment)
	}
	return strings.Join(segments, f.opts.KeySeparator)
}

// sanitizeKey rewrites one mapping key into a safe identifier segment,
// collecting a warning for each rewrite it performs.
func (f *flattener) sanitizeKey(key string) string {
	sanitized := key
	if strings.Contains(sanitized, ".") {
		f.warnf("key %q contains \".\", replaced with \"__\"", key)
		sanitized = strings.ReplaceAll(sanitized, ".", "__")
	}
	replaced := invalidCharRegex.ReplaceAllString(sanitized, "_")
	if replaced != sanitized {
		f.warnf("key %q contained special characters, replaced with \"_\"", key)
	}
	sanitized = replaced
	if !validStartRegex.MatchString(sanitized) {
		f.warnf("key %q does not start with a letter or underscore, prefixed with \"_\"", key)
		sanitized = "_" + sanitized
	}
	return sanitized
}

// stringifyFallback JSON-encodes a value that reached stringification
// without matching a known variant. Should not happen in correct flow.
func (f *flattener) stringifyFallback(value models.JSONValue) string {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(data)
}
