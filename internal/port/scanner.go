package port

import (
	"fmt"
	"net"
)

// Scanner checks whether a TCP port is available on the host machine.
//
// It uses the operating system's network stack (net.Listen) to determine
// if a port is free. This is the most reliable method because it asks
// the OS directly, rather than parsing /proc/net/* or relying on
// external commands like `lsof` or `ss` which may require elevated
// permissions.
//
// The struct is currently stateless, but is defined as a struct (rather
// than bare functions) so that future options (e.g., bind address) can
// be added without breaking the API.
type Scanner struct{}

// NewScanner creates a new Scanner instance.
func NewScanner() *Scanner {
	return &Scanner{}
}

// IsAvailable checks whether a single TCP port is free on the host.
//
// It attempts net.Listen("tcp", ":port"). If the bind succeeds, the
// port is available — the listener is immediately closed. We bind to
// all interfaces (":port" rather than "127.0.0.1:port") because the
// application's HTTP server binds the wildcard address, so we probe the
// same address space.
//
// Returns false for ports outside 1-65535.
func (s *Scanner) IsAvailable(port int) bool {
	if port < 1 || port > 65535 {
		return false
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return false
	}
	defer func() { _ = listener.Close() }()
	return true
}
