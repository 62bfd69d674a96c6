package transport

import "net"

// Transport accepts connections and hands each of them to the callback in its own goroutine.
type Transport interface {
	Bind(addr string) error
	Listen(cb func(conn net.Conn)) error
	Stop()
	Wait()
}
