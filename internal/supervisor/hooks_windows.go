//go:build windows

package supervisor

// The mihomo control socket compatibility shim is Unix-only (spec'd
// against a Unix-domain socket path); Windows builds the core uses its
// own named-pipe ACL instead, so there is nothing to chmod here.
func runPostStartHook() {}

func runPostStopHook() {}
