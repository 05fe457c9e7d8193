// Package chaoticengine carries the small shared io helpers used by the
// relay and tunnel layers.
package chaoticengine

import (
	"io"
	"sync"
)

// SyncReader is a concurrency safe reader.
type SyncReader struct {
	r  io.Reader
	mu sync.Mutex
}

func (r *SyncReader) Read(p []byte) (n int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Read(p)
}

// NewSyncReader creates a new SyncReader.
func NewSyncReader(r io.Reader) io.Reader {
	return &SyncReader{r: r}
}

// SyncWriter is a concurrency safe writer.
type SyncWriter struct {
	w  io.Writer
	mu sync.Mutex
}

func (w *SyncWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.Write(p)
}

// NewSyncWriter creates a new SyncWriter.
func NewSyncWriter(w io.Writer) io.Writer {
	return &SyncWriter{w: w}
}
