package config

import (
	"testing"
	"time"

	kit "mealboard/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	api := root.Prefix("API_")
	if got := api.key("PORT"); got != "API_PORT" {
		t.Fatalf("key() = %q, want %q", got, "API_PORT")
	}
	// nested prefix
	apiJWT := api.Prefix("JWT_")
	if got := apiJWT.key("SECRET"); got != "API_JWT_SECRET" {
		t.Fatalf("nested key() = %q, want %q", got, "API_JWT_SECRET")
	}
}

// Must* panics

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  mealboard ")
	if got := c.MustString("NAME"); got != "mealboard" {
		t.Fatalf("MustString = %q, want %q", got, "mealboard")
	}

	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
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

func TestMustPort(t *testing.T) {
	c := New().Prefix("API_")
	t.Setenv("API_PORT", "4000")
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q", got)
	}
	t.Setenv("API_HIGH", "70000")
	kit.MustPanic(t, func() { _ = c.MustPort("HIGH") })
}

// May* defaults

func TestMayAccessors(t *testing.T) {
	c := New().Prefix("M_")

	if got := c.MayString("NOPE", "dflt"); got != "dflt" {
		t.Fatalf("MayString default = %q", got)
	}
	t.Setenv("M_NAME", "x")
	if got := c.MayString("NAME", "dflt"); got != "x" {
		t.Fatalf("MayString = %q", got)
	}

	if got := c.MayInt("NOPE", 7); got != 7 {
		t.Fatalf("MayInt default = %d", got)
	}
	t.Setenv("M_N", "5")
	if got := c.MayInt("N", 7); got != 5 {
		t.Fatalf("MayInt = %d", got)
	}

	if got := c.MayBool("NOPE", true); got != true {
		t.Fatalf("MayBool default = %v", got)
	}
	t.Setenv("M_ON", "false")
	if got := c.MayBool("ON", true); got != false {
		t.Fatalf("MayBool = %v", got)
	}

	if got := c.MayDuration("NOPE", time.Second); got != time.Second {
		t.Fatalf("MayDuration default = %v", got)
	}
	t.Setenv("M_TTL", "250ms")
	if got := c.MayDuration("TTL", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}

	t.Setenv("M_LIST", "a, b ,c")
	got := c.MayCSV("LIST", nil)
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("MayCSV = %v", got)
	}
}
