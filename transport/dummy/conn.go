package dummy

import (
	"io"
	"net"
	"sync/atomic"
	"time"
)

var _ net.Conn = new(Conn)

// Conn is a fake net.Conn. Every Read returns the next piece of data it was initialized
// with, io.EOF once they're over. Everything written is collected.
type Conn struct {
	pieces   [][]byte
	Written  []byte
	closed   atomic.Bool
	writeErr error
}

func NewConn(pieces ...[]byte) *Conn {
	return &Conn{pieces: pieces}
}

// FailWrites makes every following Write fail with the err.
func (c *Conn) FailWrites(err error) *Conn {
	c.writeErr = err
	return c
}

func (c *Conn) Read(b []byte) (n int, err error) {
	if c.closed.Load() {
		return 0, net.ErrClosed
	}

	if len(c.pieces) == 0 {
		return 0, io.EOF
	}

	n = copy(b, c.pieces[0])
	c.pieces = c.pieces[1:]

	return n, nil
}

func (c *Conn) Write(b []byte) (n int, err error) {
	if c.closed.Load() {
		return 0, net.ErrClosed
	}

	if c.writeErr != nil {
		return 0, c.writeErr
	}

	c.Written = append(c.Written, b...)
	return len(b), nil
}

func (c *Conn) Close() error {
	c.closed.Store(true)
	return nil
}

// Closed reports whether Close was called.
func (c *Conn) Closed() bool {
	return c.closed.Load()
}

func (c *Conn) LocalAddr() net.Addr {
	return addr
}

func (c *Conn) RemoteAddr() net.Addr {
	return addr
}

func (c *Conn) SetDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetReadDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetWriteDeadline(time.Time) error {
	return nil
}

var addr = &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 4221}
