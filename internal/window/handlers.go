package window

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// entryResponse is one sidebar entry in the /api/entries response.
type entryResponse struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// stateResponse describes the content region.
type stateResponse struct {
	Doc      string `json:"doc,omitempty"`
	View     string `json:"view,omitempty"`
	Children int    `json:"children"`
}

func (s *Server) handleWindow(w http.ResponseWriter, r *http.Request) {
	width, height := s.shell.Size()
	data := windowData{
		Title:  s.shell.Title(),
		Width:  width,
		Height: height,
	}
	for _, e := range s.entries() {
		data.Entries = append(data.Entries, windowEntry{ID: e.ID, Label: e.Label, Active: e.Active})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := windowTmpl.Execute(w, data); err != nil {
		log.Printf("window: rendering window: %v", err)
	}
}

func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if e, ok := s.shell.Entry(id); ok {
		e.Activate()
	} else {
		// Not in the sidebar; still fail soft through the page loader.
		s.shell.Activate(id)
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, s.state())
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	v, ok := s.shell.Region().Current()
	if !ok {
		w.Write([]byte(placeholderHTML))
		return
	}
	w.Write([]byte(v.Page.HTML()))
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(s.renderer.Load(id).HTML()))
}

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.entries())
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.state())
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("window: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	st := s.state()
	s.hub.add(conn, refreshMessage{Type: "hello", Doc: st.Doc, View: st.View, Label: s.labelFor(st.Doc)})
	defer s.hub.remove(conn)

	// Windows never send anything meaningful; read until they go away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("window: websocket read: %v", err)
			}
			return
		}
	}
}

func (s *Server) entries() []entryResponse {
	cur, ok := s.shell.Region().Current()
	entries := s.shell.Entries()
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryResponse{
			ID:     e.ID,
			Label:  e.Label,
			Active: ok && cur.DocID == e.ID,
		})
	}
	return out
}

func (s *Server) state() stateResponse {
	region := s.shell.Region()
	st := stateResponse{Children: region.Len()}
	if v, ok := region.Current(); ok {
		st.Doc = v.DocID
		st.View = v.ID
	}
	return st
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
