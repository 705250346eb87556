// Package ipc defines the wire-level verb table and JSON payload shapes
// shared by the service and its client: the closed set of routes the
// daemon exposes over its local transport.
package ipc

import "net/http"

// Verb identifies one entry in the closed set of routes the daemon serves.
type Verb string

const (
	VerbMagic        Verb = "magic"
	VerbGetVersion   Verb = "get_version"
	VerbStartClash   Verb = "start_clash"
	VerbStopClash    Verb = "stop_clash"
	VerbGetClashLogs Verb = "get_clash_logs"
	VerbUpdateWriter Verb = "update_writer"
)

// Route pairs a Verb with the HTTP method and path it is dispatched on.
type Route struct {
	Verb   Verb
	Method string
	Path   string
}

// Routes is the closed set of verbs the router registers, in the order
// they appear in the wire contract.
var Routes = []Route{
	{VerbMagic, http.MethodGet, "/magic"},
	{VerbGetVersion, http.MethodGet, "/version"},
	{VerbStartClash, http.MethodPost, "/clash/start"},
	{VerbStopClash, http.MethodDelete, "/clash/stop"},
	{VerbGetClashLogs, http.MethodGet, "/clash/logs"},
	{VerbUpdateWriter, http.MethodPut, "/writer"},
}

// AuthHeader is the shared-secret header every request must carry.
const AuthHeader = "X-IPC-Magic"

// LivenessBody is the fixed literal the liveness probe responds with.
const LivenessBody = "Tunglies!"
