package raw

import "testing"

func TestGet(t *testing.T) {
	c := New().Prefix("LOG_")
	t.Setenv("LOG_FORMAT", "  json ")
	t.Setenv("LOG_SERVICE", "   ")

	if got := c.Get("FORMAT", "console"); got != "json" {
		t.Fatalf("FORMAT = %q", got)
	}
	if got := c.Get("SERVICE", "creatorscout"); got != "creatorscout" {
		t.Fatalf("blank SERVICE = %q", got)
	}
	if got := c.Get("UNSET", "d"); got != "d" {
		t.Fatalf("UNSET = %q", got)
	}
	if c.Key("LEVEL") != "LOG_LEVEL" || c.Prefix("X_").Key("Y") != "LOG_X_Y" {
		t.Fatalf("key composition broken")
	}
}

func TestGetBool(t *testing.T) {
	c := New().Prefix("LOG_")
	cases := map[string]bool{"1": true, "TRUE": true, "yes": true, "0": false, "no": false, "maybe": false}
	for v, want := range cases {
		t.Setenv("LOG_CALLER", v)
		if got := c.GetBool("CALLER", !want); got != want {
			t.Fatalf("GetBool(%q) = %v", v, got)
		}
	}
	if !c.GetBool("UNSET", true) {
		t.Fatalf("unset should return default")
	}
}

func TestGetInt(t *testing.T) {
	c := New().Prefix("LOG_")
	cases := map[string]int{"10": 10, " 0 ": 0, "-3": 7, "1e3": 7, "abc": 7, "": 7}
	for v, want := range cases {
		t.Setenv("LOG_SAMPLE_EVERY", v)
		if got := c.GetInt("SAMPLE_EVERY", 7); got != want {
			t.Fatalf("GetInt(%q) = %d, want %d", v, got, want)
		}
	}
}
