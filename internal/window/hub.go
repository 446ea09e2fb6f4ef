package window

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// refreshMessage is the outgoing WebSocket message format.
type refreshMessage struct {
	Type  string `json:"type"` // "hello" or "refresh"
	Doc   string `json:"doc,omitempty"`
	View  string `json:"view,omitempty"`
	Label string `json:"label,omitempty"`
}

// hub tracks connected windows. Writes happen under mu so each connection
// has a single writer.
type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func newHub() *hub {
	return &hub{clients: make(map[*websocket.Conn]struct{})}
}

// add registers conn and sends it the greeting under the same lock, so the
// greeting always precedes any refresh.
func (h *hub) add(conn *websocket.Conn, hello refreshMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
	if err := conn.WriteJSON(hello); err != nil {
		log.Printf("window: websocket write: %v", err)
	}
}

func (h *hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

func (h *hub) broadcast(msg refreshMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("window: websocket write: %v", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		conn.Close()
		delete(h.clients, conn)
	}
}

func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
