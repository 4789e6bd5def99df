// Package binding reads optional fields from JSON request bodies.
//
// Binding never fails a request: a missing, empty or malformed body, and
// any field that is absent, null or not an integer, leaves the payload
// with its default values. Parse errors are returned so callers can log
// them.
package binding

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// MaxBodyBytes caps how much of a request body is read.
const MaxBodyBytes = 1 << 20

// maxExactInt bounds float64 values read as integers. 2^53 itself is
// excluded because 2^53+1 rounds to it.
const maxExactInt = 1 << 53

// maxExponent bounds the decimal exponent of number literals read as integers.
const maxExponent = 19

// Payload is implemented by request types. Bind must set every field,
// using the fallback when the body does not provide a usable value.
type Payload interface {
	Bind(f Fields)
}

// Fields is a decoded JSON object body. A nil Fields yields only defaults.
type Fields map[string]any

// Parse decodes body as a JSON object. An empty body is not an error.
// Numbers are kept as json.Number so integers of any size survive intact.
func Parse(body []byte) (Fields, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var fields Fields
	if err := dec.Decode(&fields); err != nil {
		return nil, errors.Wrap(err, "request body is not a JSON object")
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("request body has trailing data after the JSON object")
	}

	return fields, nil
}

// Bind reads the request body of c and binds it into payload. The payload
// is always bound; a non-nil error only describes why the body was ignored.
func Bind(c echo.Context, payload Payload) error {
	var (
		fields Fields
		err    error
	)

	if body := c.Request().Body; body != nil {
		var raw []byte
		raw, err = io.ReadAll(io.LimitReader(body, MaxBodyBytes))
		if err != nil {
			err = errors.Wrap(err, "failed to read request body")
		} else {
			fields, err = Parse(raw)
		}
	}

	payload.Bind(fields)

	return err
}

// Int returns the integer stored under key, or fallback when the key is
// missing, null, fractional, out of range for int, or cannot be read as an
// integer.
func (f Fields) Int(key string, fallback int) int {
	v, ok := f[key]
	if !ok || v == nil {
		return fallback
	}

	switch value := v.(type) {
	case json.Number:
		n, ok := exactInt(value)
		if !ok {
			return fallback
		}
		return n
	case float64:
		if value != math.Trunc(value) || math.Abs(value) >= maxExactInt {
			return fallback
		}
		return cast.ToInt(value)
	case string:
		n, err := cast.ToIntE(strings.TrimSpace(value))
		if err != nil {
			return fallback
		}
		return n
	default:
		return fallback
	}
}

// exactInt converts a JSON number literal such as 42, 14.0 or 1e17 to an
// int without going through float64.
func exactInt(n json.Number) (int, bool) {
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return 0, false
	}
	if d.IsZero() {
		return 0, true
	}

	// Rescaling cost grows with the exponent; anything this far out is not
	// a plausible int64 literal.
	if exp := d.Exponent(); exp < -maxExponent || exp > maxExponent {
		return 0, false
	}
	if !d.IsInteger() {
		return 0, false
	}

	bi := d.BigInt()
	if !bi.IsInt64() {
		return 0, false
	}

	i := bi.Int64()
	if i < math.MinInt || i > math.MaxInt {
		return 0, false
	}

	return int(i), true
}
