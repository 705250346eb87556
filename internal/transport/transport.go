package transport

import (
	"net"

	"github.com/pkg/errors"
)

// Listener wraps the bound platform-local endpoint. Close releases the
// underlying transport and, on Unix, unlinks the socket file; named
// pipes clean themselves up.
type Listener struct {
	net.Listener
	path    string
	cleanup func() error
}

// Bind ensures the endpoint's access-control contract holds and returns
// a listener ready to be served with net/http. Grounded on the teacher's
// general os.MkdirAll + os.Chmod data-directory setup idiom
// (pkg/cli/cmds), generalized into the bind-time contract spec'd for
// this daemon's endpoint.
func Bind(path string) (*Listener, error) {
	ln, cleanup, err := bindPlatform(path)
	if err != nil {
		return nil, errors.Wrap(err, "bind listener")
	}
	return &Listener{Listener: ln, path: path, cleanup: cleanup}, nil
}

// Close closes the listener and runs the platform cleanup hook.
func (l *Listener) Close() error {
	err := l.Listener.Close()
	if l.cleanup != nil {
		if cerr := l.cleanup(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Path reports the bound endpoint path/name.
func (l *Listener) Path() string {
	return l.path
}
