// Package dashboard serves a live view of a rendering over HTTP: an index
// page with a canvas, and a websocket endpoint that streams grayscale bands
// to it as they are computed.
package dashboard

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mouse-blink/brot/internal/adapter"
	"github.com/mouse-blink/brot/internal/domain"
	m "github.com/mouse-blink/brot/internal/model"
)

// BandUpdate is one completed band pushed to the browser. Shades is the
// base64 encoding of the band's grayscale bytes in row-major order.
type BandUpdate struct {
	Top    int    `json:"top"`
	Rows   int    `json:"rows"`
	Width  int    `json:"width"`
	Shades string `json:"shades"`
}

// Server renders the configured viewport once per websocket connection and
// streams the bands to the client.
type Server struct {
	addr     string
	spec     domain.RenderSpec
	threads  int
	renderer domain.Renderer
	upgrader websocket.Upgrader
	server   *http.Server

	clientsMutex sync.Mutex
	clients      map[*websocket.Conn]bool
}

// NewServer creates a dashboard server listening on addr.
func NewServer(addr string, spec domain.RenderSpec, threads int) *Server {
	return &Server{
		addr:     addr,
		spec:     spec,
		threads:  threads,
		renderer: domain.NewBandRenderer(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Local tool: accept the page we served ourselves and
				// clients without an Origin header.
				origin := r.Header.Get("Origin")
				return origin == "" ||
					origin == "http://"+r.Host
			},
		},
		clients: make(map[*websocket.Conn]bool),
	}
}

// Handler returns the HTTP handler serving the index page and the
// websocket endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleWS)

	return mux
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("dashboard server failed: %w", err)
	}

	return nil
}

// Shutdown stops the HTTP server and closes remaining websocket clients.
func (s *Server) Shutdown(ctx context.Context) error {
	s.clientsMutex.Lock()
	for conn := range s.clients {
		_ = conn.Close()
	}
	s.clientsMutex.Unlock()

	if s.server == nil {
		return nil
	}

	return s.server.Shutdown(ctx)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprintf(w, indexHTML, s.spec.Frame.Width, s.spec.Frame.Height)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	s.addClient(conn)
	defer s.removeClient(conn)

	// One websocket write at a time; bands complete on render workers.
	var writeMu sync.Mutex

	onBand := func(rendering *m.Rendering, top, bottom int) {
		update := encodeBand(rendering, top, bottom)

		writeMu.Lock()
		defer writeMu.Unlock()

		_ = conn.WriteJSON(update)
	}

	if _, err := s.renderer.Render(r.Context(), s.spec, s.threads, onBand); err != nil {
		return
	}

	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "render complete"),
		time.Now().Add(time.Second),
	)
}

func (s *Server) addClient(conn *websocket.Conn) {
	s.clientsMutex.Lock()
	defer s.clientsMutex.Unlock()

	s.clients[conn] = true
}

func (s *Server) removeClient(conn *websocket.Conn) {
	s.clientsMutex.Lock()
	defer s.clientsMutex.Unlock()

	delete(s.clients, conn)
	_ = conn.Close()
}

func encodeBand(r *m.Rendering, top, bottom int) BandUpdate {
	shades := make([]byte, 0, (bottom-top)*r.Frame.Width)

	for y := top; y < bottom; y++ {
		for _, e := range r.Row(y) {
			shades = append(shades, adapter.Shade(e))
		}
	}

	return BandUpdate{
		Top:    top,
		Rows:   bottom - top,
		Width:  r.Frame.Width,
		Shades: base64.StdEncoding.EncodeToString(shades),
	}
}
