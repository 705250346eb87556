package router

import (
	"net/http"

	"github.com/verge-svc/daemon/pkg/ipc"
	"github.com/verge-svc/daemon/pkg/version"
)

// handleMagic is both the liveness probe and, per the uniform-auth
// resolution, gated the same as every other route: reaching this
// handler at all already implies the header checked out.
func (d Deps) handleMagic(rw http.ResponseWriter, req *http.Request) {
	rw.Header().Set("Content-Type", "text/plain")
	rw.WriteHeader(http.StatusOK)
	_, _ = rw.Write([]byte(ipc.LivenessBody))
}

func (d Deps) handleGetVersion(rw http.ResponseWriter, req *http.Request) {
	v := version.Version
	writeJSON(rw, http.StatusOK, ipc.Ok("Success", &v))
}

func (d Deps) handleStartClash(rw http.ResponseWriter, req *http.Request) {
	var cfg ipc.ClashConfig
	if err := decodeBody(req, &cfg); err != nil {
		writeText(rw, http.StatusBadRequest, err.Error())
		return
	}
	if err := d.Sup.Start(cfg); err != nil {
		writeJSON(rw, http.StatusServiceUnavailable, ipc.Fail[struct{}](err.Error()))
		return
	}
	writeJSON(rw, http.StatusOK, ipc.Ok[struct{}]("Core started successfully", nil))
}

func (d Deps) handleStopClash(rw http.ResponseWriter, req *http.Request) {
	if err := d.Sup.Stop(); err != nil {
		writeJSON(rw, http.StatusServiceUnavailable, ipc.Fail[struct{}](err.Error()))
		return
	}
	writeJSON(rw, http.StatusOK, ipc.Ok[struct{}]("Core stopped successfully", nil))
}

func (d Deps) handleGetClashLogs(rw http.ResponseWriter, req *http.Request) {
	lines := d.Ring.Snapshot()
	writeJSON(rw, http.StatusOK, ipc.Ok("ok", &lines))
}

func (d Deps) handleUpdateWriter(rw http.ResponseWriter, req *http.Request) {
	var cfg ipc.WriterConfig
	if err := decodeBody(req, &cfg); err != nil {
		writeText(rw, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := d.Slot.Replace(cfg); err != nil {
		writeJSON(rw, http.StatusServiceUnavailable, ipc.Fail[struct{}](err.Error()))
		return
	}
	writeJSON(rw, http.StatusOK, ipc.Ok[struct{}]("updated", nil))
}

func writeText(rw http.ResponseWriter, status int, body string) {
	rw.Header().Set("Content-Type", "text/plain")
	rw.WriteHeader(status)
	_, _ = rw.Write([]byte(body))
}
