package parser

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mcrawford/flatenv/internal/errors"
	"github.com/mcrawford/flatenv/internal/models"
)

// ValidateString parses raw text into a JSON object, rejecting empty
// input, malformed syntax, non-object roots and trailing data. Object key
// order is preserved. Syntax errors are reported with a sanitized message
// and a best-effort 1-based line/column position.
func ValidateString(raw string) (*models.JSONObject, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.NewValidationErrorAt(errors.ErrEmptyInput.Error(), errors.ErrEmptyInput, 1, 1)
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber() // keep numbers as json.Number so values round-trip

	value, err := decodeValue(dec)
	if err != nil {
		return nil, translateSyntaxError(raw, err)
	}

	// Anything besides trailing whitespace after the first value is an
	// error.
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return nil, errors.NewValidationError(errors.ErrMultipleJSON.Error(), errors.ErrMultipleJSON)
		}
		return nil, translateSyntaxError(raw, err)
	}

	obj, ok := value.(*models.JSONObject)
	if !ok {
		return nil, errors.NewValidationError(errors.ErrRootNotObject.Error(), errors.ErrRootNotObject)
	}
	return obj, nil
}

// ValidateFile reads and validates a JSON document from a file path.
func ValidateFile(path string) (*models.JSONObject, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.NewInputError("file path is empty", nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", path),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", path),
			err,
		)
	}
	if len(data) == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", path),
			errors.ErrFileEmpty,
		)
	}
	return ValidateString(string(data))
}

// decodeValue reads one complete JSON value from the decoder, preserving
// object key order. The standard decoder's map-based path cannot do this,
// so we drive the token stream by hand and fill ordered containers.
func decodeValue(dec *json.Decoder) (models.JSONValue, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := models.NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key token %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			}
			// consume the closing '}'
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := make(models.JSONArray, 0)
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			// consume the closing ']'
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	default:
		// string, json.Number, bool or nil
		return models.JSONValue(t), nil
	}
}

// sanitizedMessages maps fragments of encoding/json error text to plain
// English explanations shown to users.
var sanitizedMessages = []struct {
	fragment string
	message  string
}{
	{"unexpected end of JSON input", "unexpected end of input, the JSON appears to be truncated"},
	{"looking for beginning of object key string", "missing or invalid property name, object keys must be double-quoted strings"},
	{"after object key:value pair", "unexpected token, a comma or closing brace was expected"},
	{"after object key", "unexpected token, a colon was expected after a property name"},
	{"after array element", "unexpected token, a comma or closing bracket was expected"},
	{"looking for beginning of value", "unexpected token, a JSON value was expected at this position"},
	{"in string literal", "invalid string literal, check for unescaped quotes or control characters"},
	{"in string escape code", "invalid escape sequence inside a string literal"},
	{"in numeric literal", "invalid number literal"},
	{"in exponent of numeric literal", "invalid number literal"},
	{"in literal true", "unexpected token, did you mean the literal true?"},
	{"in literal false", "unexpected token, did you mean the literal false?"},
	{"in literal null", "unexpected token, did you mean the literal null?"},
}

// translateSyntaxError converts a raw decoder error into a validation
// error with a sanitized message and a line/column derived from the
// reported byte offset.
func translateSyntaxError(raw string, err error) error {
	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		line, col := lineColumn(raw, syntaxErr.Offset)
		return errors.NewValidationErrorAt(sanitizeMessage(syntaxErr.Error()), errors.ErrInvalidJSON, line, col)
	}
	if stderrors.Is(err, io.ErrUnexpectedEOF) || stderrors.Is(err, io.EOF) {
		line, col := lineColumn(raw, int64(len(raw)))
		return errors.NewValidationErrorAt(
			"unexpected end of input, the JSON appears to be truncated",
			errors.ErrInvalidJSON, line, col,
		)
	}
	return errors.NewValidationError(sanitizeMessage(err.Error()), errors.ErrInvalidJSON)
}

func sanitizeMessage(raw string) string {
	for _, entry := range sanitizedMessages {
		if strings.Contains(raw, entry.fragment) {
			return entry.message
		}
	}
	return raw
}

// lineColumn converts a byte offset into 1-based line and column numbers
// by counting newlines up to the offset.
func lineColumn(raw string, offset int64) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(raw)) {
		offset = int64(len(raw))
	}
	prefix := raw[:offset]
	line := strings.Count(prefix, "\n") + 1
	lastNewline := strings.LastIndex(prefix, "\n")
	col := int(offset) - lastNewline
	if col < 1 {
		col = 1
	}
	return line, col
}
