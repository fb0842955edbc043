package blobstore

import (
	"io"
	"sync/atomic"
)

// progressReader wraps a reader and reports the cumulative byte count to
// an observer after every read. The transfer manager may buffer parts, so
// the count tracks bytes consumed from the source, not bytes acknowledged
// by the store.
type progressReader struct {
	r     io.Reader
	total int64
	read  atomic.Int64
	fn    ProgressFunc
}

func newProgressReader(r io.Reader, total int64, fn ProgressFunc) *progressReader {
	return &progressReader{r: r, total: total, fn: fn}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		read := p.read.Add(int64(n))
		if p.fn != nil {
			p.fn(read, p.total)
		}
	}
	return n, err
}
