package port

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsAvailable_FreePort verifies that a port nothing is listening on
// is reported as available. Binding :0 first lets the OS hand us a port
// that is known free, which we release before probing.
func TestIsAvailable_FreePort(t *testing.T) {
	listener, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	tcpAddr, ok := listener.Addr().(*net.TCPAddr)
	require.True(t, ok)
	port := tcpAddr.Port
	require.NoError(t, listener.Close())

	scanner := NewScanner()
	assert.True(t, scanner.IsAvailable(port), "port %d should be available after the listener closed", port)
}

// TestIsAvailable_UsedPort verifies that a port with an active listener
// is reported as in use. This simulates the application (or anything
// else) already serving on the port.
func TestIsAvailable_UsedPort(t *testing.T) {
	listener, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer func() { _ = listener.Close() }()

	tcpAddr, ok := listener.Addr().(*net.TCPAddr)
	require.True(t, ok)
	port := tcpAddr.Port

	scanner := NewScanner()
	assert.False(t, scanner.IsAvailable(port), "port %d has an active listener", port)
}

// TestIsAvailable_OutOfRange verifies fail-safe handling of impossible
// port numbers.
func TestIsAvailable_OutOfRange(t *testing.T) {
	scanner := NewScanner()
	assert.False(t, scanner.IsAvailable(0))
	assert.False(t, scanner.IsAvailable(-1))
	assert.False(t, scanner.IsAvailable(70000))
}
