package sqlscript

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Null is the literal emitted for absent values. It is never quoted.
const Null = "NULL"

var (
	ErrUnescapable = errors.New("value cannot be escaped as a string literal")
	ErrNonFinite   = errors.New("number is not finite")
	ErrUnsupported = errors.New("unsupported value type")
)

// Quote renders s as a single-quoted literal with embedded quotes doubled.
// Strings holding a NUL byte or invalid UTF-8 have no safe text form and are
// rejected instead of being emitted half-escaped.
func Quote(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("%w: invalid UTF-8", ErrUnescapable)
	}
	if strings.IndexByte(s, 0) >= 0 {
		return "", fmt.Errorf("%w: NUL byte", ErrUnescapable)
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'", nil
}

// Literal is the single conversion point from Go values to script literals.
// Every value interpolated into a statement goes through here.
func Literal(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return Null, nil
	case string:
		return Quote(x)
	case *string:
		if x == nil {
			return Null, nil
		}
		return Quote(*x)
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return "", fmt.Errorf("%w: %v", ErrNonFinite, x)
		}
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case *float64:
		if x == nil {
			return Null, nil
		}
		return Literal(*x)
	case time.Time:
		if x.IsZero() {
			return Null, nil
		}
		return Quote(x.UTC().Format(time.RFC3339Nano))
	case *time.Time:
		if x == nil {
			return Null, nil
		}
		return Literal(*x)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}
