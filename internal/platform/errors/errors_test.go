package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnauthorized, http.StatusUnauthorized},
		{ErrorCodeForbidden, http.StatusForbidden},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError}, // default branch
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	// nil *Error should render "<nil>"
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	// New / Newf
	e1 := New(ErrorCodeValidation, "bad stuff")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeJSON, "bad json %d", 12)
	if got := e2.Error(); got != "bad json 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	// Wrap / Wrapf / Unwrap
	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeDB, "db failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	if CodeOf(e3) != ErrorCodeDB {
		t.Fatalf("CodeOf(Wrap) = %v", CodeOf(e3))
	}
	if Root(e3) != src {
		t.Fatalf("Root(Wrap) = %v", Root(e3))
	}
	if got := e3.Error(); got != "db failed: root" {
		t.Fatalf("Wrap().Error = %q", got)
	}
}

func TestIsCodeAndSugar(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
	}{
		{NotFoundf("missing %s", "x"), ErrorCodeNotFound},
		{InvalidArgf("bad"), ErrorCodeInvalidArgument},
		{Validationf("nope"), ErrorCodeValidation},
		{Conflictf("taken"), ErrorCodeConflict},
		{DuplicateKeyf("dup"), ErrorCodeDuplicateKey},
		{Unauthorizedf("who"), ErrorCodeUnauthorized},
		{Forbiddenf("no"), ErrorCodeForbidden},
		{DBf("down"), ErrorCodeDB},
	}
	for _, c := range cases {
		if !IsCode(c.err, c.code) {
			t.Fatalf("IsCode(%v, %v) = false", c.err, c.code)
		}
	}

	// foreign errors report unknown
	if CodeOf(stderrs.New("plain")) != ErrorCodeUnknown {
		t.Fatal("plain error should map to unknown")
	}
	if CodeOf(nil) != ErrorCodeUnknown {
		t.Fatal("nil should map to unknown")
	}
}

func TestWithFieldAndWire(t *testing.T) {
	err := WithField(Validationf("must not be blank"), "name")

	e, ok := As(err)
	if !ok {
		t.Fatal("As failed on structured error")
	}
	if e.Field() != "name" {
		t.Fatalf("Field = %q want name", e.Field())
	}

	w := WireFrom(err)
	if w.Code != ErrorCodeValidation || w.Field != "name" {
		t.Fatalf("bad wire %+v", w)
	}

	// plain errors still produce a wire payload
	w2 := WireFrom(stderrs.New("boom"))
	if w2.Code != ErrorCodeUnknown || w2.Message != "boom" {
		t.Fatalf("bad wire for plain error %+v", w2)
	}
}

func TestHTTPStatusOfWrappedChain(t *testing.T) {
	inner := NotFoundf("slot s1 not found")
	outer := Wrapf(inner, CodeOf(inner), "batch stopped after 2 applied")

	if got := HTTPStatus(outer); got != http.StatusNotFound {
		t.Fatalf("HTTPStatus = %d want 404", got)
	}
}
