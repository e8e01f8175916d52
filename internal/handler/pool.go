package handler

import (
	"bytes"
	"sync"
)

const (
	// initialBufferSize fits a typical simulate report
	initialBufferSize = 4 << 10
	// maxPooledBufferSize keeps a large compare report's buffer out of the pool
	maxPooledBufferSize = 256 << 10
)

// bufferPool holds the buffers responses are encoded into
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets buf and returns it to the pool unless it grew too large
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
