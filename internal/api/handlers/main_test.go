package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dawitk/portfolio-relay/internal/logging"
	"github.com/dawitk/portfolio-relay/internal/service"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logging.InitLogger(&logging.LogConfig{
		File:       filepath.Join(os.TempDir(), "portfolio-relay-test.log"),
		MaxSize:    10,
		MaxBackups: 1,
		MaxAge:     1,
	}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// relayRecorder captures the messages a handler pushes through the Telegram
// stub so tests can assert on relay count and content.
type relayRecorder struct {
	mu    sync.Mutex
	texts []string
}

func (r *relayRecorder) record(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, text)
}

func (r *relayRecorder) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.texts...)
}

// newRelayStub returns a Telegram service wired to an in-process stub API.
func newRelayStub(t *testing.T) (*service.TelegramService, *relayRecorder) {
	t.Helper()
	rec := &relayRecorder{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var msg struct {
			Text string `json:"text"`
		}
		json.Unmarshal(body, &msg)
		rec.record(msg.Text)
		w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)

	return service.NewTelegramServiceAt(srv.URL, "test-token", "test-chat"), rec
}

// newFailingRelayStub returns a Telegram service whose upstream always fails.
func newFailingRelayStub(t *testing.T) *service.TelegramService {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"ok":false,"description":"upstream detail"}`))
	}))
	t.Cleanup(srv.Close)
	return service.NewTelegramServiceAt(srv.URL, "test-token", "test-chat")
}
