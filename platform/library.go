package platform

import (
	gldispatch "github.com/openbindings/gl-dispatch"
)

// Library is an open shared library acting as a rendering context's
// address source. It implements gldispatch.Context. Safe for concurrent
// use while open; Close must not race with in-flight loads.
type Library struct {
	name   string
	handle uintptr
}

// Open loads the named shared library ("libGL.so.1", "opengl32.dll").
func Open(name string) (*Library, error) {
	h, err := dlopen(name)
	if err != nil {
		return nil, err
	}
	return &Library{name: name, handle: h}, nil
}

// Name returns the library name passed to Open.
func (l *Library) Name() string {
	return l.name
}

// ProcResolver implements gldispatch.Context. It returns nil after
// Close, which the loader reports as a missing context.
func (l *Library) ProcResolver() gldispatch.Resolver {
	if l.handle == 0 {
		return nil
	}
	return gldispatch.ResolverFunc(func(name []byte) gldispatch.Addr {
		return gldispatch.Addr(dlsym(l.handle, name))
	})
}

// Close unloads the library. Addresses resolved from it are invalid
// afterwards.
func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := dlclose(l.handle)
	l.handle = 0
	return err
}
