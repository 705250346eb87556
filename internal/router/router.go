// Package router maps the wire contract's closed route set to handlers,
// gating every route, Magic included, behind the shared-secret auth header.
package router

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/verge-svc/daemon/internal/logio"
	"github.com/verge-svc/daemon/internal/supervisor"
	"github.com/verge-svc/daemon/pkg/ipc"
)

// Deps bundles what the handlers need to act on; built once at startup
// and closed over by each handler.
type Deps struct {
	Magic string
	Sup   *supervisor.Supervisor
	Ring  *logio.Ring
	Slot  *logio.WriterSlot
}

// New builds the top-level handler serving the wire contract's six routes.
// Grounded on the teacher's pkg/server/router.go (mux.NewRouter, explicit
// NotFoundHandler, one Path().Handler() registration per route).
func New(deps Deps) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFound)

	auth := authMiddleware(deps.Magic)

	// Every route, including Magic, is gated uniformly: the liveness probe
	// doubles as an auth probe rather than being exempt from the header.
	r.Handle(path(ipc.VerbMagic), auth(http.HandlerFunc(deps.handleMagic))).Methods(method(ipc.VerbMagic))
	r.Handle(path(ipc.VerbGetVersion), auth(http.HandlerFunc(deps.handleGetVersion))).Methods(method(ipc.VerbGetVersion))
	r.Handle(path(ipc.VerbStartClash), auth(http.HandlerFunc(deps.handleStartClash))).Methods(method(ipc.VerbStartClash))
	r.Handle(path(ipc.VerbStopClash), auth(http.HandlerFunc(deps.handleStopClash))).Methods(method(ipc.VerbStopClash))
	r.Handle(path(ipc.VerbGetClashLogs), auth(http.HandlerFunc(deps.handleGetClashLogs))).Methods(method(ipc.VerbGetClashLogs))
	r.Handle(path(ipc.VerbUpdateWriter), auth(http.HandlerFunc(deps.handleUpdateWriter))).Methods(method(ipc.VerbUpdateWriter))

	return r
}

func path(v ipc.Verb) string {
	for _, route := range ipc.Routes {
		if route.Verb == v {
			return route.Path
		}
	}
	panic("router: unknown verb " + string(v))
}

func method(v ipc.Verb) string {
	for _, route := range ipc.Routes {
		if route.Verb == v {
			return route.Method
		}
	}
	panic("router: unknown verb " + string(v))
}

// notFound leaves the body empty, per the wire contract's status mapping
// for an unknown route.
func notFound(rw http.ResponseWriter, req *http.Request) {
	rw.WriteHeader(http.StatusNotFound)
}

func writeJSON(rw http.ResponseWriter, status int, body interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(body)
}

func decodeBody(req *http.Request, dst interface{}) error {
	defer req.Body.Close()
	dec := json.NewDecoder(req.Body)
	return dec.Decode(dst)
}
