package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verge-svc/daemon/internal/logio"
	"github.com/verge-svc/daemon/internal/supervisor"
	"github.com/verge-svc/daemon/pkg/ipc"
)

const testSecret = "test-secret"

func newTestHandler() http.Handler {
	ring := logio.NewRing()
	slot := logio.NewWriterSlot()
	sup := supervisor.New(ring, slot)
	return New(Deps{Magic: testSecret, Sup: sup, Ring: ring, Slot: slot})
}

func doRequest(h http.Handler, method, path string, body []byte, withAuth bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if withAuth {
		req.Header.Set(ipc.AuthHeader, testSecret)
	}
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, req)
	return rw
}

func TestMagicRequiresAuth(t *testing.T) {
	h := newTestHandler()

	rw := doRequest(h, http.MethodGet, "/magic", nil, false)
	assert.Equal(t, http.StatusUnauthorized, rw.Code)

	rw = doRequest(h, http.MethodGet, "/magic", nil, true)
	assert.Equal(t, http.StatusOK, rw.Code)
	assert.Equal(t, ipc.LivenessBody, rw.Body.String())
}

func TestUnauthenticatedRequestCausesNoStateChange(t *testing.T) {
	ring := logio.NewRing()
	slot := logio.NewWriterSlot()
	sup := supervisor.New(ring, slot)
	h := New(Deps{Magic: testSecret, Sup: sup, Ring: ring, Slot: slot})

	body, err := json.Marshal(ipc.ClashConfig{
		CoreConfig: ipc.CoreConfig{CorePath: "/bin/does-not-matter"},
		LogConfig:  ipc.WriterConfig{Directory: t.TempDir(), MaxLogSize: 1024, MaxLogFiles: 1},
	})
	require.NoError(t, err)

	rw := doRequest(h, http.MethodPost, "/clash/start", body, false)
	assert.Equal(t, http.StatusUnauthorized, rw.Code)
	assert.Equal(t, supervisor.Idle, sup.State())
	assert.Equal(t, 0, ring.Len())
}

func TestGetVersionAuthed(t *testing.T) {
	h := newTestHandler()
	rw := doRequest(h, http.MethodGet, "/version", nil, true)
	assert.Equal(t, http.StatusOK, rw.Code)

	var resp ipc.Response[string]
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &resp))
	assert.Equal(t, uint16(0), resp.Code)
	require.NotNil(t, resp.Data)
}

func TestUnknownRouteIs404(t *testing.T) {
	h := newTestHandler()
	rw := doRequest(h, http.MethodGet, "/no-such-route", nil, true)
	assert.Equal(t, http.StatusNotFound, rw.Code)
}

func TestStartClashBadJSONIs400(t *testing.T) {
	h := newTestHandler()
	rw := doRequest(h, http.MethodPost, "/clash/start", []byte("not json"), true)
	assert.Equal(t, http.StatusBadRequest, rw.Code)
}

func TestGetClashLogsReturnsSnapshot(t *testing.T) {
	ring := logio.NewRing()
	slot := logio.NewWriterSlot()
	sup := supervisor.New(ring, slot)
	h := New(Deps{Magic: testSecret, Sup: sup, Ring: ring, Slot: slot})

	ring.Append("line one")
	ring.Append("line two")

	rw := doRequest(h, http.MethodGet, "/clash/logs", nil, true)
	assert.Equal(t, http.StatusOK, rw.Code)

	var resp ipc.Response[[]string]
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	assert.Equal(t, []string{"line one", "line two"}, *resp.Data)
}
