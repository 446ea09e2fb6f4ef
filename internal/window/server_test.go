package window

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/camino/internal/pages"
	"github.com/ziadkadry99/camino/internal/shell"
)

func setupTest(t *testing.T, cfg Config) (*Server, *shell.Shell) {
	t.Helper()

	loader := pages.NewLoader(fstest.MapFS{
		"page2.md": {Data: []byte("World")},
		"page1.md": {Data: []byte("# Hello")},
	}, "resources/md")
	sh, err := shell.New(loader, shell.Options{
		Title:       "Camino: Who was St James?",
		Width:       800,
		Height:      600,
		LabelPrefix: "page",
	})
	if err != nil {
		t.Fatalf("shell.New: %v", err)
	}
	srv := New(cfg, sh, loader)
	t.Cleanup(srv.Close)
	return srv, sh
}

func do(t *testing.T, srv *Server, method, path string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv, _ := setupTest(t, Config{})

	w := do(t, srv, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestWindowListsEntriesInOrder(t *testing.T) {
	srv, _ := setupTest(t, Config{})

	w := do(t, srv, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()

	if !strings.Contains(body, "<title>Camino: Who was St James?</title>") {
		t.Error("window title missing")
	}
	if !strings.Contains(body, "width: 800px; height: 600px") {
		t.Error("window size missing")
	}
	i1 := strings.Index(body, ">Page 1</button>")
	i2 := strings.Index(body, ">Page 2</button>")
	if i1 < 0 || i2 < 0 || i1 > i2 {
		t.Errorf("sidebar buttons missing or out of order (page1 at %d, page2 at %d)", i1, i2)
	}
	if strings.Contains(body, `class="active"`) {
		t.Error("no entry should be active before the first activation")
	}
}

func TestContentPlaceholderBeforeActivation(t *testing.T) {
	srv, _ := setupTest(t, Config{})

	w := do(t, srv, http.MethodGet, "/content", nil)
	if !strings.Contains(w.Body.String(), "Select a page") {
		t.Errorf("expected placeholder, got %s", w.Body.String())
	}
}

func TestActivateJSON(t *testing.T) {
	srv, sh := setupTest(t, Config{})

	w := do(t, srv, http.MethodPost, "/entries/page1", map[string]string{"Accept": "application/json"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var st stateResponse
	if err := json.NewDecoder(w.Body).Decode(&st); err != nil {
		t.Fatalf("decoding state: %v", err)
	}
	if st.Doc != "page1" || st.Children != 1 || st.View == "" {
		t.Errorf("unexpected state %+v", st)
	}

	cur, ok := sh.Region().Current()
	if !ok || cur.DocID != "page1" {
		t.Errorf("region shows %+v", cur)
	}

	content := do(t, srv, http.MethodGet, "/content", nil).Body.String()
	if !strings.Contains(content, "<h1>Hello</h1>") {
		t.Errorf("content = %s", content)
	}
}

func TestActivateFormRedirects(t *testing.T) {
	srv, _ := setupTest(t, Config{})

	w := do(t, srv, http.MethodPost, "/entries/page2", nil)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}

	body := do(t, srv, http.MethodGet, "/", nil).Body.String()
	if !strings.Contains(body, `data-id="page2" class="active"`) {
		t.Error("page2 should be marked active")
	}
	content := do(t, srv, http.MethodGet, "/content", nil).Body.String()
	if !strings.Contains(content, "<p>World</p>") {
		t.Errorf("content = %s", content)
	}
}

func TestActivateMissingDocumentFailsSoft(t *testing.T) {
	srv, sh := setupTest(t, Config{})

	w := do(t, srv, http.MethodPost, "/entries/page9", map[string]string{"Accept": "application/json"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	content := do(t, srv, http.MethodGet, "/content", nil).Body.String()
	if !strings.Contains(content, "File not found") || !strings.Contains(content, "page9.md") {
		t.Errorf("content = %s", content)
	}
	if sh.Region().Len() != 1 {
		t.Errorf("region has %d children, want 1", sh.Region().Len())
	}
}

func TestSequentialActivationsKeepOneChild(t *testing.T) {
	srv, sh := setupTest(t, Config{})

	for _, id := range []string{"page1", "page2", "page9", "page1"} {
		do(t, srv, http.MethodPost, "/entries/"+id, nil)
		var st stateResponse
		w := do(t, srv, http.MethodGet, "/api/state", nil)
		if err := json.NewDecoder(w.Body).Decode(&st); err != nil {
			t.Fatalf("decoding state: %v", err)
		}
		if st.Children != 1 || st.Doc != id {
			t.Errorf("after %s: state %+v", id, st)
		}
	}
	if cur, _ := sh.Region().Current(); cur.DocID != "page1" {
		t.Errorf("current = %s, want page1", cur.DocID)
	}
}

func TestPageDoesNotActivate(t *testing.T) {
	srv, sh := setupTest(t, Config{})

	w := do(t, srv, http.MethodGet, "/pages/page2", nil)
	if !strings.Contains(w.Body.String(), "<p>World</p>") {
		t.Errorf("page body = %s", w.Body.String())
	}
	if sh.Region().Len() != 0 {
		t.Error("rendering a page should not touch the content region")
	}
}

func TestEntriesEndpoint(t *testing.T) {
	srv, _ := setupTest(t, Config{})
	do(t, srv, http.MethodPost, "/entries/page2", nil)

	w := do(t, srv, http.MethodGet, "/api/entries", nil)
	var entries []entryResponse
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("decoding entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].ID != "page1" || entries[0].Label != "Page 1" || entries[0].Active {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].ID != "page2" || !entries[1].Active {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv, _ := setupTest(t, Config{AllowAll: true})

	w := do(t, srv, http.MethodOptions, "/healthz", map[string]string{
		"Origin":                        "http://example.com",
		"Access-Control-Request-Method": "GET",
	})
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestWebSocketRefresh(t *testing.T) {
	srv, _ := setupTest(t, Config{})
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var hello refreshMessage
	if err := conn.ReadJSON(&hello); err != nil {
		t.Fatalf("reading hello: %v", err)
	}
	if hello.Type != "hello" || hello.Doc != "" {
		t.Errorf("hello = %+v", hello)
	}
	if n := srv.hub.count(); n != 1 {
		t.Errorf("hub has %d clients, want 1", n)
	}

	resp, err := http.Post(ts.URL+"/entries/page1", "", nil)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()

	var msg refreshMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("reading refresh: %v", err)
	}
	if msg.Type != "refresh" || msg.Doc != "page1" || msg.Label != "Page 1" || msg.View == "" {
		t.Errorf("refresh = %+v", msg)
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	srv, _ := setupTest(t, Config{Port: 0})
	if err := srv.Listen(); err != nil {
		t.Fatalf("Listen: %v", err)
	}
	if !strings.HasPrefix(srv.URL(), "http://127.0.0.1:") {
		t.Errorf("URL = %q", srv.URL())
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	var resp *http.Response
	var err error
	for i := 0; i < 50; i++ {
		resp, err = http.Get(srv.URL() + "/healthz")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestRefreshSendsCurrentView(t *testing.T) {
	srv, sh := setupTest(t, Config{})
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var msg refreshMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("reading hello: %v", err)
	}

	stale := sh.Activate("page1")
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("reading refresh: %v", err)
	}
	latest := sh.Activate("page2")
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("reading refresh: %v", err)
	}

	// A late notification for an older swap still reports what is shown.
	srv.refresh(stale)
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("reading refresh: %v", err)
	}
	if msg.Doc != "page2" || msg.View != latest.ID || msg.Label != "Page 2" {
		t.Errorf("refresh = %+v, want page2 view %s", msg, latest.ID)
	}
}
