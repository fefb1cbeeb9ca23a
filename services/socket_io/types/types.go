package socketio_types

import (
	"Damka/services/presence"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer bundles the socket.io server with the presence registry its
// handlers share.
type SocketServer struct {
	Sio_server *socket.Server
	Registry   *presence.Registry
}

// SocketConn adapts *socket.Socket to the presence.Conn interface so
// everything below the dispatch layer stays transport-agnostic.
type SocketConn struct {
	sock *socket.Socket
}

func WrapSocket(s *socket.Socket) SocketConn {
	return SocketConn{sock: s}
}

func (c SocketConn) ID() string {
	return string(c.sock.Id())
}

func (c SocketConn) Emit(event string, payload interface{}) error {
	return c.sock.Emit(event, payload)
}
