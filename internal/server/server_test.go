package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"rogue-engine/internal/engine"
	"rogue-engine/internal/network"
	"rogue-engine/pkg/api"
	"rogue-engine/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*httptest.Server, *engine.GameService) {
	t.Helper()
	cfg := engine.NewConfig()
	cfg.Seed = 77
	cfg.Width, cfg.Height = 40, 25

	ctx, cancel := context.WithCancel(context.Background())
	svc := engine.NewService(cfg, network.NewBroadcaster(), nil)
	ts := httptest.NewServer(New(ctx, svc, "0").Router())
	t.Cleanup(func() {
		ts.Close()
		cancel()
		svc.Shutdown()
	})
	return ts, svc
}

func readSnapshot(t *testing.T, conn *websocket.Conn) api.ServerResponse {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	var msg api.ServerResponse
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestHealthAndVersion(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	resp, err = http.Get(ts.URL + "/version")
	require.NoError(t, err)
	defer resp.Body.Close()
	var info map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Contains(t, info, "buildId")
	assert.Contains(t, info, "calculated")
}

func TestPreflight(t *testing.T) {
	ts, _ := newTestServer(t)

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/debug/instances", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestWebSocketSession(t *testing.T) {
	ts, svc := newTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(api.ClientCommand{Action: "INIT"}))

	initial := readSnapshot(t, conn)
	assert.Equal(t, "UPDATE", initial.Type)
	assert.Equal(t, 0, initial.Turn)
	require.NotEmpty(t, initial.Token)
	token := initial.Token

	welcome := readSnapshot(t, conn)
	require.Len(t, welcome.Logs, 1)
	assert.Contains(t, welcome.Logs[0].Text, "Welcome stranger!")
	assert.Equal(t, 0, welcome.Turn)

	require.NoError(t, conn.WriteJSON(api.ClientCommand{Action: "WAIT"}))
	waited := readSnapshot(t, conn)
	assert.Equal(t, 1, waited.Turn)

	// Отладочные эндпоинты видят партию
	resp, err := http.Get(ts.URL + "/debug/instances")
	require.NoError(t, err)
	var list []engine.InstanceSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	require.Len(t, list, 1)
	assert.Equal(t, token, list[0].ID)
	assert.Equal(t, int64(77), list[0].Seed)

	resp, err = http.Get(ts.URL + "/debug/instances/" + token)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/debug/instances/missing")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Битая команда: ERROR, партия жива
	require.NoError(t, conn.WriteJSON(api.ClientCommand{Action: "MOVE", Payload: json.RawMessage(`{"dx":5}`)}))
	bad := readSnapshot(t, conn)
	assert.Equal(t, "ERROR", bad.Type)

	require.NoError(t, conn.WriteJSON(api.ClientCommand{Action: "QUIT"}))
	last := readSnapshot(t, conn)
	assert.True(t, last.Done)

	// Сервер закрывает соединение после конца партии
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)

	assert.Eventually(t, func() bool { return svc.Count() == 0 }, 3*time.Second, 10*time.Millisecond)
}

func TestWebSocketDisconnectRemovesInstance(t *testing.T) {
	ts, svc := newTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.NoError(t, conn.WriteJSON(api.ClientCommand{Action: "INIT"}))
	readSnapshot(t, conn)
	require.Equal(t, 1, svc.Count())

	conn.Close()
	assert.Eventually(t, func() bool { return svc.Count() == 0 }, 3*time.Second, 10*time.Millisecond)
}
