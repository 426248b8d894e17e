package config

import (
	"reflect"
	"testing"
	"time"

	"creatorscout/internal/platform/testkit"
)

func TestPrefix(t *testing.T) {
	harvest := New().Prefix("CORE_").Prefix("HARVEST_")
	if got := harvest.key("SPACING_UNITS"); got != "CORE_HARVEST_SPACING_UNITS" {
		t.Fatalf("key = %q", got)
	}
}

func TestMayString(t *testing.T) {
	c := New().Prefix("CORE_SCRAPER_")
	t.Setenv("CORE_SCRAPER_BASE_URL", "  https://scraper.example ")
	t.Setenv("CORE_SCRAPER_API_KEY", "   ")

	if got := c.MayString("BASE_URL", ""); got != "https://scraper.example" {
		t.Fatalf("BASE_URL = %q", got)
	}
	if got := c.MayString("API_KEY", "none"); got != "none" {
		t.Fatalf("blank API_KEY = %q", got)
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("CORE_HARVEST_")
	t.Setenv("CORE_HARVEST_REEL_COUNT", " 12 ")
	t.Setenv("CORE_HARVEST_SPACING_UNITS", "three")

	if got := c.MayInt("REEL_COUNT", 30); got != 12 {
		t.Fatalf("REEL_COUNT = %d", got)
	}
	if got := c.MayInt("SPACING_UNITS", 3); got != 3 {
		t.Fatalf("bad SPACING_UNITS = %d", got)
	}
	if got := c.MayInt("UNSET", 5); got != 5 {
		t.Fatalf("UNSET = %d", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("CORE_API_")
	t.Setenv("CORE_API_SWAGGER", "false")
	t.Setenv("CORE_API_PROFILER", "sometimes")

	if c.MayBool("SWAGGER", true) {
		t.Fatalf("SWAGGER should be false")
	}
	if !c.MayBool("PROFILER", true) {
		t.Fatalf("bad PROFILER should fall back to default")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("CORE_SCRAPER_")
	t.Setenv("CORE_SCRAPER_UNIT", "250ms")
	t.Setenv("CORE_SCRAPER_TIMEOUT", "30")

	if got := c.MayDuration("UNIT", time.Second); got != 250*time.Millisecond {
		t.Fatalf("UNIT = %v", got)
	}
	if got := c.MayDuration("TIMEOUT", time.Minute); got != time.Minute {
		t.Fatalf("unit-less TIMEOUT = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CORE_API_")
	t.Setenv("CORE_API_ORIGINS", " https://a.example, ,https://b.example ,")
	t.Setenv("CORE_API_EMPTY", " , ,")

	want := []string{"https://a.example", "https://b.example"}
	if got := c.MayCSV("ORIGINS", nil); !reflect.DeepEqual(got, want) {
		t.Fatalf("ORIGINS = %v", got)
	}
	def := []string{"*"}
	if got := c.MayCSV("EMPTY", def); !reflect.DeepEqual(got, def) {
		t.Fatalf("EMPTY = %v", got)
	}
	if got := c.MayCSV("UNSET", def); !reflect.DeepEqual(got, def) {
		t.Fatalf("UNSET = %v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("SERVICE_OBJECTS_")

	if got := c.MayEnum("BACKEND", "memory", "memory", "pg"); got != "memory" {
		t.Fatalf("default = %q", got)
	}
	if got := c.MayEnum("BACKEND", "", "memory", "pg"); got != "" {
		t.Fatalf("empty default = %q", got)
	}

	t.Setenv("SERVICE_OBJECTS_BACKEND", "PG")
	if got := c.MayEnum("BACKEND", "memory", "memory", "pg"); got != "PG" {
		t.Fatalf("case-insensitive match = %q", got)
	}

	t.Setenv("SERVICE_OBJECTS_BACKEND", "s3")
	testkit.MustPanic(t, func() { c.MayEnum("BACKEND", "memory", "memory", "pg") })
}
