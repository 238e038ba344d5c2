package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/Alia5/padlink/internal/log"
)

// maxDatagram bounds a single read. Control packets are a few bytes; larger
// datagrams are truncated and still handed to the callback.
const maxDatagram = 1500

// UDPReceiver reads control packets, the actuator's side of the link.
type UDPReceiver struct {
	conn   net.PacketConn
	raw    log.RawLogger
	logger *slog.Logger
}

// Listen binds addr ("host:port" or ":port").
func Listen(addr string, raw log.RawLogger, logger *slog.Logger) (*UDPReceiver, error) {
	conn, err := net.ListenPacket("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	logger.Info("Listening for control packets", "addr", conn.LocalAddr().String())
	return &UDPReceiver{conn: conn, raw: raw, logger: logger}, nil
}

func (r *UDPReceiver) LocalAddr() net.Addr { return r.conn.LocalAddr() }

// Serve calls handle for every datagram until ctx is done or the receiver is
// closed. handle must not retain pkt.
func (r *UDPReceiver) Serve(ctx context.Context, handle func(pkt []byte, from net.Addr)) error {
	stop := context.AfterFunc(ctx, func() { _ = r.conn.Close() })
	defer stop()

	buf := make([]byte, maxDatagram)
	for {
		n, from, err := r.conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("read datagram: %w", err)
		}
		r.raw.Log(false, buf[:n])
		handle(buf[:n], from)
	}
}

func (r *UDPReceiver) Close() error { return r.conn.Close() }
