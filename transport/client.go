package transport

import (
	"net"
	"time"

	"github.com/indigo-web/oneshot/config"
)

// Client is a connection limited to what a single request-response exchange needs.
type Client interface {
	Read() ([]byte, error)
	Write([]byte) (int, error)
	Remote() net.Addr
	Close() error
}

type client struct {
	conn         net.Conn
	buff         []byte
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewClient(conn net.Conn, cfg config.NET) Client {
	return &client{
		conn:         conn,
		buff:         make([]byte, cfg.ReadBufferSize),
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,
	}
}

// Read does exactly one read from the connection and returns a piece of the internal buffer.
// Nothing is done to complete the data, so whatever didn't fit into the buffer or didn't
// arrive in time is lost. The returned slice is valid until the next call.
func (c *client) Read() ([]byte, error) {
	if err := deadline(c.conn.SetReadDeadline, c.readTimeout); err != nil {
		return nil, err
	}

	n, err := c.conn.Read(c.buff)
	return c.buff[:n], err
}

// Write writes data into the underlying connection.
func (c *client) Write(b []byte) (int, error) {
	if err := deadline(c.conn.SetWriteDeadline, c.writeTimeout); err != nil {
		return 0, err
	}

	return c.conn.Write(b)
}

// Remote returns the remote address of the connection.
func (c *client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

// Close closes the connection.
func (c *client) Close() error {
	return c.conn.Close()
}

func deadline(set func(time.Time) error, timeout time.Duration) error {
	if timeout <= 0 {
		return nil
	}

	return set(time.Now().Add(timeout))
}
