package threadpool

import (
	"bytes"
	"runtime"
	"strconv"
)

// goroutineID extracts the calling goroutine's id by parsing its own
// stack trace header ("goroutine N [running]:"). This is the same trick
// goroutine-leak detectors use to identify a goroutine when the runtime
// exposes no public identity API; here it backs the pool's "main-thread
// only" assertions (AddThread, RemoveThread, Shutdown), since Go
// has no equivalent of a C++ thread::id to compare against directly.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, _ := strconv.ParseUint(string(b), 10, 64)
	return id
}
