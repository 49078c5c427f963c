package modkit

import (
	"testing"

	phttp "mealboard/internal/platform/net/http"
	kit "mealboard/internal/platform/testkit"
)

// stub module that satisfies Module and records calls
type stub struct {
	mounted bool
	ports   any
}

func (s *stub) MountRoutes(_ phttp.Router) { s.mounted = true }
func (s *stub) Ports() any                 { return s.ports }
func (s *stub) Name() string               { return "stub" }

// compile-time assertion: stub implements Module
var _ Module = (*stub)(nil)

func TestBuild_NormalizesPrefix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/meals", "/meals"},
		{"meals", "/meals"},
		{" /meals/ ", "/meals"},
		{"meals/", "/meals"},
	}
	for _, c := range cases {
		b := Build(WithName("meals"), WithPrefix(c.in))
		if b.Prefix != c.want {
			t.Fatalf("Build prefix %q = %q, want %q", c.in, b.Prefix, c.want)
		}
	}
}

func TestBuild_RequiresNameAndPrefix(t *testing.T) {
	kit.MustPanic(t, func() { Build(WithPrefix("/x")) })
	kit.MustPanic(t, func() { Build(WithName("x")) })
	kit.MustPanic(t, func() { Build(WithName("x"), WithPrefix("/")) })
}

func TestBuild_CarriesPortsAndMiddleware(t *testing.T) {
	type ports struct{ N int }

	b := Build(
		WithName("slots"),
		WithPrefix("/slots"),
		WithPorts(ports{N: 7}),
	)
	got, ok := b.Ports.(ports)
	if !ok || got.N != 7 {
		t.Fatalf("Ports = %+v", b.Ports)
	}
	if b.Register == nil {
		t.Fatal("Register should default to a no-op")
	}
}

func TestPortsOf(t *testing.T) {
	type ports struct{ Tag string }

	m := &stub{ports: ports{Tag: "ok"}}

	p, ok := PortsOf[ports](m)
	if !ok || p.Tag != "ok" {
		t.Fatalf("PortsOf = %+v, %v", p, ok)
	}

	if _, ok := PortsOf[int](m); ok {
		t.Fatal("PortsOf with wrong type should fail")
	}

	if got := MustPortsOf[ports](m); got.Tag != "ok" {
		t.Fatalf("MustPortsOf = %+v", got)
	}
	kit.MustPanic(t, func() { _ = MustPortsOf[int](m) })
}
