//go:build linux || darwin

package transport

import (
	"net"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// bindPlatform implements the Unix bind-time contract: create the parent
// directory with the setgid bit and admin-group ownership, remove any
// stale socket, bind under a relaxed umask so the kernel doesn't strip
// group permission, then tighten the socket file's own mode.
// dirMode is rwxrws--- expressed the way os.Chmod actually honors it: a
// raw octal literal like 0o2770 only carries the low 9 permission bits
// through os.FileMode's syscall translation and silently drops the
// setgid bit, so the setgid flag must be OR'd in via os.ModeSetgid.
const dirMode = os.ModeSetgid | 0o770

func bindPlatform(path string) (net.Listener, func() error, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return nil, nil, errors.Wrap(err, "create endpoint directory")
	}

	gid := resolveAdminGID()
	if err := os.Chmod(dir, dirMode); err != nil {
		return nil, nil, errors.Wrap(err, "set endpoint directory mode")
	}
	if err := os.Chown(dir, -1, gid); err != nil {
		return nil, nil, errors.Wrap(err, "chown endpoint directory")
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, nil, errors.Wrap(err, "remove stale endpoint")
	}

	old := unix.Umask(0o007)
	ln, err := net.Listen("unix", path)
	unix.Umask(old)
	if err != nil {
		return nil, nil, errors.Wrap(err, "listen on unix socket")
	}

	if err := os.Chmod(path, 0o660); err != nil {
		ln.Close()
		return nil, nil, errors.Wrap(err, "set endpoint socket mode")
	}

	cleanup := func() error {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
	return ln, cleanup, nil
}

// resolveAdminGID implements the gid precedence from the bind-time
// contract: SUDO_GID env var, then (Linux) the first /run/user/<uid>
// entry in [1000, 65534), then (macOS) /dev/console's gid, then the
// process's own gid.
func resolveAdminGID() int {
	if v := os.Getenv("SUDO_GID"); v != "" {
		if gid, err := strconv.Atoi(v); err == nil {
			return gid
		}
	}

	if runtime.GOOS == "linux" {
		if gid, ok := gidFromRunUser(os.Getuid()); ok {
			return gid
		}
	}

	if runtime.GOOS == "darwin" {
		if info, err := os.Stat("/dev/console"); err == nil {
			if st, ok := info.Sys().(*unix.Stat_t); ok {
				return int(st.Gid)
			}
		}
	}

	return os.Getgid()
}

func gidFromRunUser(uid int) (int, bool) {
	dir := filepath.Join("/run/user", strconv.Itoa(uid))
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, false
	}
	for _, e := range entries {
		n, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}
		if n < 1000 || n >= 65534 {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		st, ok := info.Sys().(*unix.Stat_t)
		if !ok {
			continue
		}
		return int(st.Gid), true
	}
	return 0, false
}
