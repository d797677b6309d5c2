//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func dlopen(name string) (uintptr, error) {
	h, err := windows.LoadLibrary(name)
	if err != nil {
		return 0, fmt.Errorf("platform: LoadLibrary %q: %w", name, err)
	}
	return uintptr(h), nil
}

func dlsym(handle uintptr, name []byte) uintptr {
	// name is NUL-terminated table bytes; GetProcAddress wants the
	// bare symbol.
	addr, err := windows.GetProcAddress(windows.Handle(handle), string(name[:len(name)-1]))
	if err != nil {
		return 0
	}
	return addr
}

func dlclose(handle uintptr) error {
	if err := windows.FreeLibrary(windows.Handle(handle)); err != nil {
		return fmt.Errorf("platform: FreeLibrary: %w", err)
	}
	return nil
}
