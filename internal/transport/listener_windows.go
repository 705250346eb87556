//go:build windows

package transport

import (
	"net"

	"github.com/Microsoft/go-winio"
	"github.com/pkg/errors"
)

// securityDescriptor grants generic-all access to Everyone, since
// filesystem-style group ownership doesn't exist for named pipes; the
// pipe's ACL is the sole access-control layer on Windows.
const securityDescriptor = "D:(A;;GA;;;WD)"

// bindPlatform implements the Windows half of the bind-time contract:
// open a named pipe with the security descriptor attached. go-winio is
// already an indirect teacher dependency (via Microsoft/hcsshim) and is
// the library the containerd/Docker ecosystem reaches for here; promoted
// to direct use.
func bindPlatform(path string) (net.Listener, func() error, error) {
	cfg := &winio.PipeConfig{
		SecurityDescriptor: securityDescriptor,
		MessageMode:        false,
		InputBufferSize:    65536,
		OutputBufferSize:   65536,
	}
	ln, err := winio.ListenPipe(path, cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "listen on named pipe")
	}
	// Named pipes self-clean on close; no filesystem artifact to unlink.
	return ln, func() error { return nil }, nil
}
