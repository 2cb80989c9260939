package conf

import (
	"bytes"
	"strings"
	"testing"
	"time"

	kit "envkit/internal/testkit"

	"github.com/rs/zerolog"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	api := root.Prefix("API_")
	if got := api.key("PORT"); got != "API_PORT" {
		t.Fatalf("key() = %q, want %q", got, "API_PORT")
	}
	// nested prefix
	apiLog := api.Prefix("LOG_")
	if got := apiLog.key("LEVEL"); got != "API_LOG_LEVEL" {
		t.Fatalf("nested key() = %q, want %q", got, "API_LOG_LEVEL")
	}
}

// Must* panics

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  envkit ")
	if got := c.MustString("NAME"); got != "envkit" {
		t.Fatalf("MustString = %q, want %q", got, "envkit")
	}

	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })

	// empty after trim counts as missing
	t.Setenv("APP_BLANK", "   ")
	kit.MustPanic(t, func() { _ = c.MustString("BLANK") })
}

func TestMustInt(t *testing.T) {
	c := New().Prefix("SVC_")
	t.Setenv("SVC_WORKERS", "  8 ")
	if got := c.MustInt("WORKERS"); got != 8 {
		t.Fatalf("MustInt = %d, want %d", got, 8)
	}
	kit.MustPanic(t, func() { _ = c.MustInt("MISSING") })
	t.Setenv("SVC_BAD", "x")
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
}

func TestMustBool(t *testing.T) {
	c := New().Prefix("F_")
	t.Setenv("F_ON", " true ")
	if !c.MustBool("ON") {
		t.Fatalf("MustBool true expected")
	}
	kit.MustPanic(t, func() { _ = c.MustBool("MISSING") })
	t.Setenv("F_BAD", "notabool")
	kit.MustPanic(t, func() { _ = c.MustBool("BAD") })
}

func TestMustFloat64(t *testing.T) {
	c := New().Prefix("R_")
	t.Setenv("R_RATIO", "0.75")
	if got := c.MustFloat64("RATIO"); got != 0.75 {
		t.Fatalf("MustFloat64 = %v, want %v", got, 0.75)
	}
	t.Setenv("R_BAD", "abc")
	kit.MustPanic(t, func() { _ = c.MustFloat64("BAD") })
}

func TestMustDuration(t *testing.T) {
	c := New().Prefix("D_")
	t.Setenv("D_TIMEOUT", " 250ms ")
	if got := c.MustDuration("TIMEOUT"); got != 250*time.Millisecond {
		t.Fatalf("MustDuration = %v, want %v", got, 250*time.Millisecond)
	}
	t.Setenv("D_BAD", "nope")
	kit.MustPanic(t, func() { _ = c.MustDuration("BAD") })
}

func TestMustURL(t *testing.T) {
	c := New().Prefix("U_")
	t.Setenv("U_BASE", "https://example.com/api")
	u := c.MustURL("BASE")
	if !u.IsAbs() || u.Host != "example.com" {
		t.Fatalf("MustURL = %v, want absolute example.com URL", u)
	}
	t.Setenv("U_BAD1", "://bad")
	kit.MustPanic(t, func() { _ = c.MustURL("BAD1") })
	t.Setenv("U_BAD2", "/relative")
	kit.MustPanic(t, func() { _ = c.MustURL("BAD2") })
}

func TestMustPort(t *testing.T) {
	c := New().Prefix("P_")
	t.Setenv("P_PORT", "4000")
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q, want %q", got, ":4000")
	}
	t.Setenv("P_BAD", "abc")
	kit.MustPanic(t, func() { _ = c.MustPort("BAD") })
	t.Setenv("P_OOB", "70000")
	kit.MustPanic(t, func() { _ = c.MustPort("OOB") })
}

func TestRequire(t *testing.T) {
	c := New().Prefix("REQ_")
	t.Setenv("REQ_A", "x")
	t.Setenv("REQ_B", "y")
	// should not panic
	kit.MustNotPanic(t, func() { c.Require("A", "B") })

	// missing C should panic
	kit.MustPanic(t, func() { c.Require("A", "C") })
}

// May* fallbacks

func TestMayString(t *testing.T) {
	c := New().Prefix("S_")
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q, want %q", got, "def")
	}
	t.Setenv("S_NAME", " envkit ")
	if got := c.MayString("NAME", "x"); got != "envkit" {
		t.Fatalf("MayString value = %q, want %q", got, "envkit")
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("I_")
	if got := c.MayInt("MISSING", 9); got != 9 {
		t.Fatalf("MayInt default = %d, want %d", got, 9)
	}
	t.Setenv("I_N", "4")
	if got := c.MayInt("N", 9); got != 4 {
		t.Fatalf("MayInt value = %d, want %d", got, 4)
	}
	t.Setenv("I_BAD", "x")
	if got := c.MayInt("BAD", 9); got != 9 {
		t.Fatalf("MayInt invalid = %d, want default %d", got, 9)
	}
}

func TestMayFloat64(t *testing.T) {
	c := New().Prefix("FL_")
	if got := c.MayFloat64("MISSING", 1.5); got != 1.5 {
		t.Fatalf("MayFloat64 default = %v, want %v", got, 1.5)
	}
	t.Setenv("FL_V", "2.25")
	if got := c.MayFloat64("V", 1.5); got != 2.25 {
		t.Fatalf("MayFloat64 value = %v, want %v", got, 2.25)
	}
	t.Setenv("FL_BAD", "zz")
	if got := c.MayFloat64("BAD", 1.5); got != 1.5 {
		t.Fatalf("MayFloat64 invalid = %v, want default %v", got, 1.5)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("B_")
	if got := c.MayBool("MISSING", true); !got {
		t.Fatalf("MayBool default = %v, want true", got)
	}
	t.Setenv("B_OFF", "false")
	if got := c.MayBool("OFF", true); got {
		t.Fatalf("MayBool value = %v, want false", got)
	}
	t.Setenv("B_BAD", "zz")
	if got := c.MayBool("BAD", true); !got {
		t.Fatalf("MayBool invalid = %v, want default true", got)
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("MD_")
	if got := c.MayDuration("MISSING", time.Second); got != time.Second {
		t.Fatalf("MayDuration default = %v, want %v", got, time.Second)
	}
	t.Setenv("MD_T", "2s")
	if got := c.MayDuration("T", time.Second); got != 2*time.Second {
		t.Fatalf("MayDuration value = %v, want %v", got, 2*time.Second)
	}
	t.Setenv("MD_BAD", "zz")
	if got := c.MayDuration("BAD", time.Second); got != time.Second {
		t.Fatalf("MayDuration invalid = %v, want default %v", got, time.Second)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CSV_")
	def := []string{"a"}
	if got := c.MayCSV("MISSING", def); len(got) != 1 || got[0] != "a" {
		t.Fatalf("MayCSV default = %v, want %v", got, def)
	}
	t.Setenv("CSV_LIST", " x, y ,,z ")
	got := c.MayCSV("LIST", def)
	if len(got) != 3 || got[0] != "x" || got[1] != "y" || got[2] != "z" {
		t.Fatalf("MayCSV = %v, want [x y z]", got)
	}
	t.Setenv("CSV_BLANK", " , , ")
	if got := c.MayCSV("BLANK", def); len(got) != 1 || got[0] != "a" {
		t.Fatalf("MayCSV all-blank = %v, want default", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	if got := c.MayEnum("MISSING", "json", "json", "console"); got != "json" {
		t.Fatalf("MayEnum default = %q, want %q", got, "json")
	}
	t.Setenv("E_FORMAT", "Console")
	if got := c.MayEnum("FORMAT", "json", "json", "console"); got != "Console" {
		t.Fatalf("MayEnum value = %q, want %q", got, "Console")
	}
	t.Setenv("E_BAD", "xml")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "json", "json", "console") })
}

// logging

func TestWithLoggerWarnsOnFallback(t *testing.T) {
	var buf bytes.Buffer
	c := New().WithLogger(zerolog.New(&buf)).Prefix("LOGT_")
	t.Setenv("LOGT_BAD", "x")
	if got := c.MayInt("BAD", 9); got != 9 {
		t.Fatalf("MayInt invalid = %d, want default %d", got, 9)
	}
	if out := buf.String(); !strings.Contains(out, "LOGT_BAD") || !strings.Contains(out, "using default") {
		t.Fatalf("warn log missing key or message: %q", out)
	}
}

func TestSilentByDefault(t *testing.T) {
	c := New().Prefix("SIL_")
	t.Setenv("SIL_BAD", "x")
	// no logger attached; must still fall back quietly
	if got := c.MayInt("BAD", 3); got != 3 {
		t.Fatalf("MayInt invalid = %d, want default %d", got, 3)
	}
}
