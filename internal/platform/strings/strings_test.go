package strings

import "testing"

func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q", want)
		}
		if r != want {
			t.Fatalf("panic = %v, want %q", r, want)
		}
	}()
	fn()
}

func TestMustString(t *testing.T) {
	if got := MustString("ranking", "module name"); got != "ranking" {
		t.Fatalf("got %q", got)
	}
	mustPanic(t, "module name is required", func() { MustString("  \t", "module name") })
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"discovery":      "/discovery",
		"/screening/":    "/screening",
		"  //harvest// ": "/harvest",
		"/api/v1":        "/api/v1",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	mustPanic(t, "root path is required", func() { MustPrefix(" / ") })
	mustPanic(t, "root path is required", func() { MustPrefix("") })
}
