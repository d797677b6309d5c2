//go:build unix

package platform

/*
#cgo linux LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

func dlopen(name string) (uintptr, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	h := C.dlopen(cname, C.RTLD_LAZY|C.RTLD_GLOBAL)
	if h == nil {
		return 0, fmt.Errorf("platform: dlopen %q: %s", name, C.GoString(C.dlerror()))
	}
	return uintptr(h), nil
}

// dlsym resolves a NUL-terminated name, passed through without copying.
func dlsym(handle uintptr, name []byte) uintptr {
	sym := C.dlsym(unsafe.Pointer(handle), (*C.char)(unsafe.Pointer(&name[0])))
	return uintptr(sym)
}

func dlclose(handle uintptr) error {
	if C.dlclose(unsafe.Pointer(handle)) != 0 {
		return fmt.Errorf("platform: dlclose: %s", C.GoString(C.dlerror()))
	}
	return nil
}
