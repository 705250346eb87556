package ipc

// AuthExpect is the compile-time shared secret every request must carry
// in the X-IPC-Magic header. It is not a cryptographic authentication
// scheme — filesystem permission on the endpoint is the primary access
// control (see spec's rationale) — so rotation means rebuilding, same as
// pkg/version.Version is injected via -ldflags:
//
//	go build -ldflags "-X github.com/verge-svc/daemon/pkg/ipc.AuthExpect=<secret>"
//
// The token is never logged.
var AuthExpect = ""
