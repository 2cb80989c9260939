package envkit

import (
	"encoding"
	"net/url"
	"reflect"
	"strconv"
	"time"
)

// Parse converts s into a T with the same conversion rules the retrieval
// functions apply to env var values. Useful when the text comes from
// somewhere other than the environment
func Parse[T any](s string) (T, error) {
	return parseText[T](s)
}

// parseText converts s into a T using, in order: the type's own
// encoding.TextUnmarshaler (which is also how Custom plugs in), the built-in
// conversion set, and a kind-based fallback so named basic types
// (type Port uint16) work without an override
func parseText[T any](s string) (T, error) {
	var v T

	if u, ok := any(&v).(encoding.TextUnmarshaler); ok {
		if err := u.UnmarshalText([]byte(s)); err != nil {
			return v, err
		}
		return v, nil
	}

	switch p := any(&v).(type) {
	case *string:
		*p = s
	case *bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return v, err
		}
		*p = b
	case *int:
		n, err := strconv.ParseInt(s, 10, 0)
		if err != nil {
			return v, err
		}
		*p = int(n)
	case *int8:
		n, err := strconv.ParseInt(s, 10, 8)
		if err != nil {
			return v, err
		}
		*p = int8(n)
	case *int16:
		n, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return v, err
		}
		*p = int16(n)
	case *int32:
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return v, err
		}
		*p = int32(n)
	case *int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return v, err
		}
		*p = n
	case *uint:
		n, err := strconv.ParseUint(s, 10, 0)
		if err != nil {
			return v, err
		}
		*p = uint(n)
	case *uint8:
		n, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return v, err
		}
		*p = uint8(n)
	case *uint16:
		n, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return v, err
		}
		*p = uint16(n)
	case *uint32:
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return v, err
		}
		*p = uint32(n)
	case *uint64:
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return v, err
		}
		*p = n
	case *float32:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return v, err
		}
		*p = float32(f)
	case *float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return v, err
		}
		*p = f
	case *time.Duration:
		d, err := time.ParseDuration(s)
		if err != nil {
			return v, err
		}
		*p = d
	case *url.URL:
		u, err := url.Parse(s)
		if err != nil {
			return v, err
		}
		*p = *u
	default:
		return parseKind[T](s)
	}
	return v, nil
}

// parseKind handles named basic types by reflected kind
func parseKind[T any](s string) (T, error) {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return v, err
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetFloat(f)
	default:
		return v, &UnsupportedTypeError{Type: rv.Type()}
	}
	return v, nil
}
