package module

import (
	"strings"
	"sync"
	"testing"

	phttp "creatorscout/internal/platform/net/http"
)

type Ranker interface{ K() int }

type ranker struct{ k int }

func (r ranker) K() int { return r.k }

type stub struct {
	name  string
	ports any
}

func (s stub) Name() string             { return s.name }
func (s stub) Ports() any               { return s.ports }
func (s stub) MountRoutes(phttp.Router) {}

var _ Module = stub{}

func TestPortsOf(t *testing.T) {
	t.Parallel()

	type bundle struct {
		Count  int
		Ranker Ranker
	}
	type hidden struct{ ranker Ranker }

	cases := []struct {
		name  string
		ports any
		want  int
		found bool
	}{
		{"nil ports", nil, 0, false},
		{"direct", ranker{k: 5}, 5, true},
		{"struct field", bundle{Count: 1, Ranker: ranker{k: 11}}, 11, true},
		{"pointer to struct", &bundle{Ranker: ranker{k: 3}}, 3, true},
		{"unexported field", hidden{ranker: ranker{k: 1}}, 0, false},
		{"not a struct", 42, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PortsOf[Ranker](stub{ports: tc.ports})
			if ok != tc.found || (ok && got.K() != tc.want) {
				t.Fatalf("PortsOf = %v %v", got, ok)
			}
		})
	}
}

func TestMustPortsOf_PanicNamesModuleAndType(t *testing.T) {
	t.Parallel()

	defer func() {
		msg, _ := recover().(string)
		if !strings.Contains(msg, "harvest") || !strings.Contains(msg, "module.Ranker") {
			t.Fatalf("panic = %q", msg)
		}
	}()
	_ = MustPortsOf[Ranker](stub{name: "harvest"})
}

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register(stub{name: "ranking", ports: ranker{k: 5}})
	Register(stub{name: "ranking", ports: ranker{k: 7}})
	Register(stub{name: "discovery"})

	if got, ok := Lookup[Ranker]("ranking"); !ok || got.K() != 7 {
		t.Fatalf("Lookup = %v %v", got, ok)
	}
	if _, ok := Lookup[Ranker]("discovery"); ok {
		t.Fatalf("module without the port should report false")
	}
	if _, ok := Lookup[Ranker]("missing"); ok {
		t.Fatalf("unknown name should report false")
	}
	if got := strings.Join(Names(), ","); got != "discovery,ranking" {
		t.Fatalf("Names = %s", got)
	}

	Reset()
	if len(Names()) != 0 {
		t.Fatalf("registry not empty after Reset")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range 100 {
			Register(stub{name: "screening", ports: ranker{k: i}})
		}
	}()
	go func() {
		defer wg.Done()
		for range 100 {
			_, _ = Lookup[Ranker]("screening")
		}
	}()
	wg.Wait()

	if _, ok := Lookup[Ranker]("screening"); !ok {
		t.Fatalf("expected a module after concurrent writes")
	}
}
