package server

import (
	"context"
	"fmt"
	"net"
)

// Authorizer decides whether a remote client may reach the agent's
// endpoints. It runs before routing, so a denial covers /run and
// /read alike.
type Authorizer interface {
	Allow(ctx context.Context, remoteAddr string) error
}

// NoopAuthorizer admits every client. Used when no allowlist is
// configured.
type NoopAuthorizer struct{}

func (NoopAuthorizer) Allow(context.Context, string) error { return nil }

// AllowlistAuthorizer admits clients whose host, or full host:port,
// appears in Allowed. An empty list admits everyone so a bare config
// stays usable on localhost.
type AllowlistAuthorizer struct {
	Allowed []string
}

func (a AllowlistAuthorizer) Allow(_ context.Context, remoteAddr string) error {
	if len(a.Allowed) == 0 {
		return nil
	}
	host := clientHost(remoteAddr)
	for _, allowed := range a.Allowed {
		if allowed == remoteAddr || allowed == host {
			return nil
		}
	}
	return fmt.Errorf("client %s is not on the allowlist", remoteAddr)
}

// clientHost strips the ephemeral port from an addr like
// 127.0.0.1:54321 so allowlist entries can name bare hosts.
func clientHost(remoteAddr string) string {
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}
