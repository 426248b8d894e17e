package testkit

import "testing"

func TestMustPanic(t *testing.T) {
	MustPanic(t, func() { panic("objects backend missing") })
	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	MustContain(t, `{"level":"warn","username":"gym_bro"}`, `"username":"gym_bro"`)
}
