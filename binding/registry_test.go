package binding

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SofianeGUEZZAR/d365-event-decorators/event"
	"github.com/SofianeGUEZZAR/d365-event-decorators/xrm"
)

type testHandler struct{}

type otherHandler struct{}

func TestKeyOfStripsPointers(t *testing.T) {
	base := KeyOf(testHandler{})

	if got := KeyOf(&testHandler{}); got != base {
		t.Errorf("KeyOf(ptr) = %v, want %v", got, base)
	}
	if got := KeyFor[*testHandler](); got != base {
		t.Errorf("KeyFor[*T]() = %v, want %v", got, base)
	}
	if got := KeyFor[testHandler](); got != base {
		t.Errorf("KeyFor[T]() = %v, want %v", got, base)
	}
	if KeyOf(otherHandler{}) == base {
		t.Error("distinct types share a ClassKey")
	}
}

func TestUpsertMergeIdempotence(t *testing.T) {
	r := NewRegistry()
	key := KeyFor[testHandler]()
	eb := &EventBinding{Kind: event.AttributeChange, Components: []string{"firstname", "lastname"}}

	r.Upsert(key, "NameChanged", eb, nil)
	r.Upsert(key, "NameChanged", eb, nil)

	methods := r.Get(key)
	if len(methods) != 1 {
		t.Fatalf("got %d method bindings, want 1", len(methods))
	}
	if len(methods[0].Bindings) != 1 {
		t.Fatalf("got %d event bindings, want 1", len(methods[0].Bindings))
	}

	want := []string{"firstname", "lastname"}
	if diff := cmp.Diff(want, methods[0].Bindings[0].Components); diff != "" {
		t.Errorf("components mismatch (-want +got):\n%s", diff)
	}
}

func TestUpsertOrderIndependence(t *testing.T) {
	key := KeyFor[testHandler]()

	calls := []func(*Registry){
		func(r *Registry) {
			r.Upsert(key, "OnSave", &EventBinding{Kind: event.Save}, nil)
		},
		func(r *Registry) {
			r.Upsert(key, "OnSave", nil, []xrm.FormMode{xrm.ModeCreate})
		},
		func(r *Registry) {
			r.Upsert(key, "OnSave", &EventBinding{Kind: event.AttributeChange, Components: []string{"a"}}, nil)
		},
		func(r *Registry) {
			r.Upsert(key, "OnSave", &EventBinding{Kind: event.AttributeChange, Components: []string{"b"}}, nil)
		},
		func(r *Registry) {
			r.Upsert(key, "OnSave", nil, []xrm.FormMode{xrm.ModeUpdate, xrm.ModeCreate})
		},
	}

	normalize := func(r *Registry) (kinds map[event.Kind][]string, modes map[xrm.FormMode]bool) {
		methods := r.Get(key)
		if len(methods) != 1 {
			t.Fatalf("got %d method bindings, want 1", len(methods))
		}
		kinds = make(map[event.Kind][]string)
		for _, b := range methods[0].Bindings {
			names := append([]string(nil), b.Components...)
			sort.Strings(names)
			kinds[b.Kind] = names
		}
		modes = make(map[xrm.FormMode]bool)
		for _, m := range methods[0].Modes {
			modes[m] = true
		}
		return kinds, modes
	}

	reference := NewRegistry()
	for _, call := range calls {
		call(reference)
	}
	wantKinds, wantModes := normalize(reference)

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		r := NewRegistry()
		for _, i := range rng.Perm(len(calls)) {
			calls[i](r)
		}
		gotKinds, gotModes := normalize(r)

		if diff := cmp.Diff(wantKinds, gotKinds); diff != "" {
			t.Fatalf("trial %d: kind sets differ (-want +got):\n%s", trial, diff)
		}
		if diff := cmp.Diff(wantModes, gotModes); diff != "" {
			t.Fatalf("trial %d: mode sets differ (-want +got):\n%s", trial, diff)
		}
	}
}

func TestUpsertModeUnion(t *testing.T) {
	r := NewRegistry()
	key := KeyFor[testHandler]()

	r.Upsert(key, "OnSave", nil, []xrm.FormMode{xrm.ModeCreate})
	r.Upsert(key, "OnSave", nil, []xrm.FormMode{xrm.ModeCreate, xrm.ModeUpdate})

	methods := r.Get(key)
	want := []xrm.FormMode{xrm.ModeCreate, xrm.ModeUpdate}
	if diff := cmp.Diff(want, methods[0].Modes); diff != "" {
		t.Errorf("modes mismatch (-want +got):\n%s", diff)
	}
}

func TestGetUnknownClass(t *testing.T) {
	r := NewRegistry()

	if got := r.Get(KeyFor[testHandler]()); len(got) != 0 {
		t.Errorf("Get on empty registry returned %d entries", len(got))
	}
}

func TestGetReturnsDeepCopy(t *testing.T) {
	r := NewRegistry()
	key := KeyFor[testHandler]()
	r.Upsert(key, "NameChanged", &EventBinding{Kind: event.AttributeChange, Components: []string{"a"}}, nil)

	first := r.Get(key)
	first[0].Bindings[0].Components[0] = "mutated"
	first[0].Method = "Mutated"

	again := r.Get(key)
	if again[0].Method != "NameChanged" || again[0].Bindings[0].Components[0] != "a" {
		t.Error("mutating Get result leaked into the registry")
	}
}

func TestMethodDeclarationOrderPreserved(t *testing.T) {
	r := NewRegistry()
	key := KeyFor[testHandler]()

	r.Upsert(key, "OnLoad", &EventBinding{Kind: event.Load}, nil)
	r.Upsert(key, "OnSave", &EventBinding{Kind: event.Save}, nil)
	r.Upsert(key, "OnLoad", &EventBinding{Kind: event.DataLoad}, nil)

	methods := r.Get(key)
	if len(methods) != 2 {
		t.Fatalf("got %d methods, want 2", len(methods))
	}
	if methods[0].Method != "OnLoad" || methods[1].Method != "OnSave" {
		t.Errorf("method order = [%s, %s], want [OnLoad, OnSave]", methods[0].Method, methods[1].Method)
	}
}

func TestAllowsMode(t *testing.T) {
	unfiltered := MethodBinding{Method: "OnLoad"}
	filtered := MethodBinding{Method: "OnSave", Modes: []xrm.FormMode{xrm.ModeCreate, xrm.ModeUpdate}}

	if !unfiltered.AllowsMode(xrm.ModeReadOnly) {
		t.Error("absent filter must allow every mode")
	}
	if !filtered.AllowsMode(xrm.ModeCreate) {
		t.Error("filter must allow a listed mode")
	}
	if filtered.AllowsMode(xrm.ModeReadOnly) {
		t.Error("filter must reject an unlisted mode")
	}
}

func TestBuilderDeclarations(t *testing.T) {
	r := NewRegistry()

	c := ForIn[*testHandler](r)
	c.Method("OnSave").On(event.Save, event.PostSave).Modes(xrm.ModeCreate)
	c.Method("NameChanged").
		OnComponents(event.AttributeChange, "firstname").
		OnComponents(event.AttributeChange, "lastname", "firstname")

	methods := r.Get(KeyFor[testHandler]())
	if len(methods) != 2 {
		t.Fatalf("got %d methods, want 2", len(methods))
	}

	save := methods[0]
	if _, ok := save.Binding(event.Save); !ok {
		t.Error("OnSave missing save binding")
	}
	if _, ok := save.Binding(event.PostSave); !ok {
		t.Error("OnSave missing post-save binding")
	}
	if diff := cmp.Diff([]xrm.FormMode{xrm.ModeCreate}, save.Modes); diff != "" {
		t.Errorf("OnSave modes mismatch (-want +got):\n%s", diff)
	}

	name := methods[1]
	eb, ok := name.Binding(event.AttributeChange)
	if !ok {
		t.Fatal("NameChanged missing attribute-change binding")
	}
	want := []string{"firstname", "lastname"}
	if diff := cmp.Diff(want, eb.Components); diff != "" {
		t.Errorf("NameChanged components mismatch (-want +got):\n%s", diff)
	}
}

func TestClassesOrder(t *testing.T) {
	r := NewRegistry()

	r.Upsert(KeyFor[testHandler](), "OnLoad", &EventBinding{Kind: event.Load}, nil)
	r.Upsert(KeyFor[otherHandler](), "OnLoad", &EventBinding{Kind: event.Load}, nil)

	classes := r.Classes()
	if len(classes) != 2 {
		t.Fatalf("got %d classes, want 2", len(classes))
	}
	if classes[0] != KeyFor[testHandler]() || classes[1] != KeyFor[otherHandler]() {
		t.Error("classes not in first-declaration order")
	}
}
