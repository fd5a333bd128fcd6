// Package cancellablereader makes blocking reads give up when a context is
// done, e.g. when the user hits ctrl+c while a response body is streaming.
package cancellablereader

import (
	"context"
	"io"
)

// ReadAllWithContext is io.ReadAll that returns ctx.Err() as soon as ctx is
// done. The underlying reader keeps being drained in the background until it
// returns, so callers should also close it.
func ReadAllWithContext(ctx context.Context, r io.Reader) ([]byte, error) {
	return io.ReadAll(New(ctx, r))
}

type Reader struct {
	ctx    context.Context
	chunks chan []byte
	err    error
	src    io.Reader
	pend   []byte
}

func New(ctx context.Context, r io.Reader) *Reader {
	c := &Reader{
		ctx:    ctx,
		src:    r,
		chunks: make(chan []byte),
	}
	go c.pump()
	return c
}

// pump copies chunks from src to the channel until src fails or ends. err is
// written before the channel is closed, so Read sees it after the close.
func (c *Reader) pump() {
	buf := make([]byte, 1024)
	for {
		n, err := c.src.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case c.chunks <- chunk:
			case <-c.ctx.Done():
				return
			}
		}
		if err != nil {
			c.err = err
			close(c.chunks)
			return
		}
	}
}

func (c *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if len(c.pend) == 0 {
		select {
		case <-c.ctx.Done():
			return 0, c.ctx.Err()
		case chunk, ok := <-c.chunks:
			if !ok {
				return 0, c.err
			}
			c.pend = chunk
		}
	}
	n := copy(p, c.pend)
	c.pend = c.pend[n:]
	return n, nil
}
