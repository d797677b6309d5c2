package dispatch

import (
	stderrors "errors"
	"testing"

	gldispatch "github.com/openbindings/gl-dispatch"
	"github.com/openbindings/gl-dispatch/binding"
	"github.com/openbindings/gl-dispatch/errors"
	"github.com/openbindings/gl-dispatch/nametable"
)

type mapContext map[string]gldispatch.Addr

func (m mapContext) ProcResolver() gldispatch.Resolver {
	return gldispatch.ResolverFunc(func(name []byte) gldispatch.Addr {
		return m[string(name[:len(name)-1])]
	})
}

func newFront(t *testing.T, addrs mapContext) *Front {
	t.Helper()
	set := binding.New(nametable.New([]string{"glClear", "glFlush", "glGetError"}))
	if addrs != nil {
		if err := binding.Load(set, addrs); err != nil {
			t.Fatal(err)
		}
	}
	return New(set)
}

func TestAddr_NotLoaded(t *testing.T) {
	f := newFront(t, nil)

	_, err := f.Addr(0)
	if !stderrors.Is(err, errors.NotLoaded("")) {
		t.Fatalf("Addr on unloaded set = %v, want not_loaded", err)
	}
	if !errors.IsConfiguration(err) {
		t.Error("not_loaded should classify as a configuration error")
	}
}

func TestAddr_Unsupported(t *testing.T) {
	f := newFront(t, mapContext{"glClear": 0x1000})

	slot, _ := f.Set().Table().Lookup("glFlush")
	_, err := f.Addr(slot)
	if !stderrors.Is(err, errors.Unsupported("")) {
		t.Fatalf("Addr of unsupported slot = %v, want unsupported", err)
	}

	var e *errors.Error
	if !stderrors.As(err, &e) || e.Entry != "glFlush" {
		t.Errorf("error does not name the entry point: %v", err)
	}
	if errors.IsConfiguration(err) {
		t.Error("unsupported must not classify as a configuration error")
	}
}

func TestAddr_Resolved(t *testing.T) {
	f := newFront(t, mapContext{"glClear": 0x1000})

	slot, _ := f.Set().Table().Lookup("glClear")
	addr, err := f.Addr(slot)
	if err != nil {
		t.Fatalf("Addr error: %v", err)
	}
	if addr != 0x1000 {
		t.Errorf("Addr = %#x, want 0x1000", addr)
	}
}

func TestRequire(t *testing.T) {
	f := newFront(t, mapContext{"glClear": 0x1000})

	slot, err := f.Require("glClear")
	if err != nil {
		t.Fatalf("Require(glClear) error: %v", err)
	}
	if want, _ := f.Set().Table().Lookup("glClear"); slot != want {
		t.Errorf("Require slot = %d, want %d", slot, want)
	}

	if _, err := f.Require("glFlush"); !stderrors.Is(err, errors.Unsupported("")) {
		t.Errorf("Require of zero slot = %v, want unsupported", err)
	}

	if _, err := f.Require("glNotInTable"); !stderrors.Is(err, errors.Unsupported("")) {
		t.Errorf("Require of unknown name = %v, want unsupported", err)
	}
}

func TestSupports(t *testing.T) {
	f := newFront(t, mapContext{"glClear": 0x1000})

	if !f.Supports("glClear") {
		t.Error("Supports(glClear) = false")
	}
	if f.Supports("glFlush") {
		t.Error("Supports(glFlush) = true for zero slot")
	}
}
