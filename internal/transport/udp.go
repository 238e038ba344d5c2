// Package transport sends control packets to the actuator over UDP.
//
// Delivery is fire-and-forget: there is no acknowledgement and a failed
// write is reported once to the caller and otherwise forgotten.
package transport

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"

	"github.com/Alia5/padlink/frame"
	"github.com/Alia5/padlink/internal/log"
)

// UDPSender writes each packet as one datagram to a fixed endpoint.
type UDPSender struct {
	conn   net.Conn
	raw    log.RawLogger
	logger *slog.Logger
}

// Dial resolves host:port once and binds a local socket to it. UDP "connect"
// sends nothing, so Dial succeeds even if the actuator is offline.
func Dial(host string, port int, raw log.RawLogger, logger *slog.Logger) (*UDPSender, error) {
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid remote port %d", port)
	}
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	logger.Info("Streaming to actuator", "remote", conn.RemoteAddr().String(), "local", conn.LocalAddr().String())
	return &UDPSender{conn: conn, raw: raw, logger: logger}, nil
}

// Send writes pkt as a single datagram.
func (s *UDPSender) Send(pkt frame.Packet) error {
	s.raw.Log(true, pkt)
	n, err := s.conn.Write(pkt)
	if err != nil {
		return err
	}
	if n != len(pkt) {
		return fmt.Errorf("short datagram write: %d of %d bytes", n, len(pkt))
	}
	return nil
}

func (s *UDPSender) RemoteAddr() net.Addr { return s.conn.RemoteAddr() }

func (s *UDPSender) Close() error { return s.conn.Close() }
