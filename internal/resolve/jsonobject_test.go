package resolve

import (
	"encoding/json"
	"testing"
)

func TestOrderedObjectPreservesKeyOrder(t *testing.T) {
	var o OrderedObject
	if err := json.Unmarshal([]byte(`{"b":1,"a":2,"c":3}`), &o); err != nil {
		t.Fatal(err)
	}
	want := []string{"b", "a", "c"}
	got := o.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOrderedObjectNested(t *testing.T) {
	var o OrderedObject
	err := json.Unmarshal([]byte(`{"./foo": {"import": "./foo.mjs", "default": "./foo.js"}}`), &o)
	if err != nil {
		t.Fatal(err)
	}
	v, ok := o.Get("./foo")
	if !ok {
		t.Fatal("expected ./foo key")
	}
	nested, ok := v.(*OrderedObject)
	if !ok {
		t.Fatalf("expected nested *OrderedObject, got %T", v)
	}
	if got := nested.Keys(); len(got) != 2 || got[0] != "import" || got[1] != "default" {
		t.Errorf("nested.Keys() = %v", got)
	}
}

func TestStringOrObjectString(t *testing.T) {
	var s StringOrObject
	if err := json.Unmarshal([]byte(`"./index.js"`), &s); err != nil {
		t.Fatal(err)
	}
	if s.IsObj || s.Str != "./index.js" {
		t.Errorf("got %+v", s)
	}
}

func TestStringOrObjectObject(t *testing.T) {
	var s StringOrObject
	if err := json.Unmarshal([]byte(`{"./index.js": false}`), &s); err != nil {
		t.Fatal(err)
	}
	if !s.IsObj {
		t.Fatalf("expected object form, got %+v", s)
	}
	v, ok := s.Obj.Get("./index.js")
	if !ok || v != false {
		t.Errorf("got %v, %v", v, ok)
	}
}
