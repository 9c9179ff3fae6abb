package request

import "sync"

// Read buffers are all MaxHeaderLen bytes, so a single pool recycles
// them across connections instead of allocating per request.
var bufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, MaxHeaderLen)
		return &buf
	},
}

func getBuffer() []byte {
	return *bufferPool.Get().(*[]byte)
}

func putBuffer(buf []byte) {
	if cap(buf) != MaxHeaderLen {
		// Non-standard size, let GC handle it
		return
	}
	buf = buf[:MaxHeaderLen]
	bufferPool.Put(&buf)
}
