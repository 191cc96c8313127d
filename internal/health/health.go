// Package health probes driver readiness over TCP.
package health

import (
	"context"
	"fmt"
	"net"
	"time"
)

const probeInterval = 100 * time.Millisecond

// WaitTCP polls addr until a TCP connection succeeds or the timeout passes.
// Drivers accept connections on their listening port as soon as they are
// ready to serve sessions, so a successful dial is the readiness signal.
func WaitTCP(ctx context.Context, addr string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var dialer net.Dialer
	ticker := time.NewTicker(probeInterval)
	defer ticker.Stop()

	for {
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err == nil {
			conn.Close()
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for %s: %w", addr, ctx.Err())
		case <-ticker.C:
		}
	}
}
