package main

import "unsafe"

// readCode returns n bytes of in-process machine code starting at pc.
// Same-process reads only: pc came from walking our own stack, so the
// page is mapped executable. A read that straddles the end of a code
// section could in principle fault; for a diagnostic dump of our own
// text segment that does not happen in practice.
func readCode(pc uintptr, n int) []byte {
	if pc == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(pc)), n)
}
