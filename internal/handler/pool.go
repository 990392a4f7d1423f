package handler

import (
	"bytes"
	"sync"
)

// maxPooledBufferSize caps what goes back in the pool; larger buffers are
// dropped so one oversized response does not pin memory indefinitely
const maxPooledBufferSize = 64 << 10

// bufferPool recycles bytes.Buffer values across JSON encodes
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// getBuffer retrieves a buffer from the pool
func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets the buffer and returns it to the pool
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
