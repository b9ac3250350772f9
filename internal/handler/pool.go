package handler

import (
	"bytes"
	"encoding/json"
	"sync"
)

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// encodeJSON encodes payload through a pooled buffer. The returned slice is
// a copy and safe to keep, for example in the response cache.
func encodeJSON(payload interface{}) ([]byte, error) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		return nil, err
	}
	return bytes.Clone(buf.Bytes()), nil
}
