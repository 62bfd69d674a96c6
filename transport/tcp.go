package transport

import (
	"errors"
	"net"
	"sync"
)

var _ Transport = new(TCP)

type TCP struct {
	mu      sync.Mutex
	l       net.Listener
	wg      sync.WaitGroup
	stopped bool
}

func NewTCP() *TCP {
	return new(TCP)
}

// Bind opens the listener. If Stop was already called, the listener is closed right away,
// so the following Listen returns immediately.
func (t *TCP) Bind(addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.l = l
	if t.stopped {
		return l.Close()
	}

	return nil
}

// Addr returns the address the listener is bound to. It's useful when binding to the port 0.
func (t *TCP) Addr() net.Addr {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.l == nil {
		return nil
	}

	return t.l.Addr()
}

// Listen accepts connections until Stop is called or the listener fails. Every connection
// is processed by the callback in a separate goroutine, so a slow client never blocks
// accepting the rest. The connection is closed once the callback returns, even if it panicked.
func (t *TCP) Listen(cb func(conn net.Conn)) error {
	t.mu.Lock()
	l := t.l
	t.mu.Unlock()

	if l == nil {
		return net.ErrClosed
	}

	for {
		conn, err := l.Accept()
		if err != nil {
			if t.isStopped() && errors.Is(err, net.ErrClosed) {
				return nil
			}

			var nerr net.Error
			if errors.As(err, &nerr) && nerr.Timeout() {
				continue
			}

			return err
		}

		t.wg.Add(1)
		go func(conn net.Conn) {
			defer t.wg.Done()
			defer conn.Close()
			cb(conn)
		}(conn)
	}
}

// Stop closes the listener. Connections being processed at the moment are left alone,
// use Wait to let them finish. Calling it more than once is fine.
func (t *TCP) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}

	t.stopped = true
	if t.l != nil {
		_ = t.l.Close()
	}
}

func (t *TCP) Wait() {
	t.wg.Wait()
}

func (t *TCP) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.stopped
}
