// Package conf provides a namespaced convenience view over environment
// variables, built on the typed retrieval core.
//
// Conf composes prefixes (e.g. "API_", "LOG_") and exposes the two household
// idioms: Must* accessors that panic when a variable is missing or malformed,
// and May* accessors that fall back to a default. Unlike the strict core,
// Conf trims whitespace and treats an empty value as unset.
//
// Conf never writes anywhere unless given a logger: New starts with
// zerolog.Nop, WithLogger opts in to error/warn events
package conf

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"envkit"

	"github.com/rs/zerolog"
)

var (
	errNotAbsolute = errors.New("URL is not absolute")
	errBadPort     = errors.New("TCP port out of range 1..65535")
	errBadEnum     = errors.New("value not in allowed set")
)

// Conf is a namespaced view over environment variables (e.g., "API_", "PG_")
// Use New() for global access, or Prefix("API_") for module scopes
type Conf struct {
	prefix string
	log    zerolog.Logger
}

// New creates a root Conf (no prefix, silent logger)
func New() Conf { return Conf{log: zerolog.Nop()} }

// WithLogger returns a copy of c that reports misses and fallbacks through l
func (c Conf) WithLogger(l zerolog.Logger) Conf {
	c.log = l
	return c
}

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("API_")
func (c Conf) Prefix(p string) Conf {
	c.prefix += p
	return c
}

// key composes the fully-qualified env var name
func (c Conf) key(k string) string { return c.prefix + k }

// raw returns the trimmed value, whether it is non-empty, and any lookup error
func (c Conf) raw(key string) (string, bool, error) {
	v, ok, err := envkit.Maybe[string](key)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	v = strings.TrimSpace(v)
	return v, v != "", nil
}

// panics logs at error level and panics with err
func (c Conf) panics(key string, err error, msg string) {
	c.log.Error().Str("key", key).Err(err).Msg(msg)
	panic(err)
}

// mustRaw resolves the trimmed value or panics
func (c Conf) mustRaw(key string) string {
	v, ok, err := c.raw(key)
	if err != nil {
		c.panics(key, err, "invalid env value")
	}
	if !ok {
		c.panics(key, &envkit.Error{Key: key, Reason: envkit.ErrNotSet}, "missing required env")
	}
	return v
}

// mustParse resolves and converts or panics with msg
func mustParse[T any](c Conf, key, msg string) T {
	k := c.key(key)
	s := c.mustRaw(k)
	v, err := envkit.Parse[T](s)
	if err != nil {
		c.panics(k, &envkit.Error{Key: k, Reason: &envkit.ParseError{Err: err}}, msg)
	}
	return v
}

// mayParse resolves and converts, logging and returning def on any miss
func mayParse[T any](c Conf, key string, def T, msg string) T {
	k := c.key(key)
	s, ok, err := c.raw(k)
	if err != nil {
		c.log.Warn().Str("key", k).Err(err).Interface("default", def).Msg(msg)
		return def
	}
	if !ok {
		return def
	}
	v, perr := envkit.Parse[T](s)
	if perr != nil {
		c.log.Warn().Str("key", k).Str("value", s).Err(perr).Interface("default", def).Msg(msg)
		return def
	}
	return v
}

// MustString panics if the given key is missing or empty
func (c Conf) MustString(key string) string { return c.mustRaw(c.key(key)) }

// MustInt panics if the given key is missing, empty, or not an int
func (c Conf) MustInt(key string) int { return mustParse[int](c, key, "invalid int value") }

// MustBool panics if the given key is missing, empty, or not a bool
func (c Conf) MustBool(key string) bool { return mustParse[bool](c, key, "invalid bool value") }

// MustFloat64 panics if the given key is missing, empty, or not a float
func (c Conf) MustFloat64(key string) float64 {
	return mustParse[float64](c, key, "invalid float64 value")
}

// MustDuration panics if the given key is missing, empty, or not a valid duration
func (c Conf) MustDuration(key string) time.Duration {
	return mustParse[time.Duration](c, key, "invalid duration (e.g., 250ms, 2s, 1h)")
}

// MustURL panics if the given key is missing, empty, or not a valid absolute URL
func (c Conf) MustURL(key string) *url.URL {
	k := c.key(key)
	u := mustParse[url.URL](c, key, "invalid absolute URL")
	if !u.IsAbs() {
		c.panics(k, &envkit.Error{Key: k, Reason: &envkit.ParseError{Err: errNotAbsolute}}, "invalid absolute URL")
	}
	return &u
}

// MustPort returns a Go net/http addr like ":4000" after validation 1..65535
func (c Conf) MustPort(key string) string {
	k := c.key(key)
	s := c.mustRaw(k)
	p, err := envkit.Parse[int](s)
	if err != nil || p < 1 || p > 65535 {
		c.panics(k, &envkit.Error{Key: k, Reason: &envkit.ParseError{Err: errBadPort}}, "invalid TCP port; expected 1..65535")
	}
	return ":" + s
}

// Require ensures that all given keys are present (non-empty). Panics otherwise
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		c.mustRaw(c.key(k))
	}
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	v, ok, err := c.raw(c.key(key))
	if err != nil {
		c.log.Warn().Str("key", c.key(key)).Err(err).Msg("unreadable value; using default")
		return def
	}
	if !ok {
		return def
	}
	return v
}

// MayInt returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayInt(key string, def int) int {
	return mayParse(c, key, def, "invalid int; using default")
}

// MayFloat64 returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayFloat64(key string, def float64) float64 {
	return mayParse(c, key, def, "invalid float64; using default")
}

// MayBool returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayBool(key string, def bool) bool {
	return mayParse(c, key, def, "invalid bool; using default")
}

// MayDuration returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return mayParse(c, key, def, "invalid duration; using default")
}

// MayCSV returns a slice of strings from a comma-separated env var; def if missing/empty
func (c Conf) MayCSV(key string, def []string) []string {
	s, ok, err := c.raw(c.key(key))
	if err != nil || !ok {
		return def
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum ensures value is one of allowed; returns def if empty; panics if invalid
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return v
		}
	}
	c.log.Error().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	panic(&envkit.Error{Key: c.key(key), Reason: &envkit.ParseError{Err: errBadEnum}})
}
