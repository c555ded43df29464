// Package server provides HTTP and WebSocket handlers
package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/png"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/corona10/goimagehash"
	"github.com/nfnt/resize"

	"github.com/GriffinCanCode/winlens/internal/config"
	"github.com/GriffinCanCode/winlens/internal/errors"
	"github.com/GriffinCanCode/winlens/internal/trace"
	"github.com/GriffinCanCode/winlens/pkg/capture"
)

// Message types.
type Message struct {
	Type string `json:"type"`
}

type CaptureMessage struct {
	Type    string `json:"type"`
	HWND    uint64 `json:"hwnd"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Mode    string `json:"mode,omitempty"`
	Thumb   int    `json:"thumb,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

type FrameMessage struct {
	Type   string `json:"type"`
	HWND   uint64 `json:"hwnd"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	PNG    string `json:"png"` // base64
}

type UnchangedMessage struct {
	Type string `json:"type"`
	HWND uint64 `json:"hwnd"`
}

type WindowListMessage struct {
	Type    string       `json:"type"`
	Windows []WindowInfo `json:"windows"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// rateLimiter tracks message timestamps using a sliding window.
type rateLimiter struct {
	limit      int
	window     time.Duration
	timestamps []time.Time
	mu         sync.Mutex
}

// allow checks if a message is allowed and records the timestamp if so.
func (r *rateLimiter) allow() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-r.window)

	// Prune old timestamps
	valid := r.timestamps[:0]
	for _, t := range r.timestamps {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	r.timestamps = valid

	if len(r.timestamps) >= r.limit {
		return false
	}

	r.timestamps = append(r.timestamps, now)
	return true
}

// wsSession holds per-connection state: the limiter and, per window,
// the perception hash of the last frame sent, used to elide unchanged
// frames. Hashes from different windows never compare against each
// other.
type wsSession struct {
	limiter  *rateLimiter
	mu       sync.Mutex
	lastHash map[uint64]*goimagehash.ImageHash
}

// Server handles HTTP and WebSocket connections.
type Server struct {
	backend  Backend
	cfg      *config.Config
	mu       sync.RWMutex
	sessions map[*websocket.Conn]*wsSession
}

// New creates a new server.
func New(backend Backend, cfg *config.Config) *Server {
	return &Server{
		backend:  backend,
		cfg:      cfg,
		sessions: make(map[*websocket.Conn]*wsSession),
	}
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// WebSocket endpoint
	mux.HandleFunc("/ws", s.handleWebSocket)

	// REST API
	mux.HandleFunc("GET /api/windows", s.handleWindows)
	mux.HandleFunc("GET /api/capture", s.handleCapture)

	// Apply middleware: trace -> CORS
	return corsMiddleware(trace.Middleware(mux))
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleWindows(w http.ResponseWriter, r *http.Request) {
	infos := s.backend.Windows()
	for i := range infos {
		infos[i].Title = truncateTitle(infos[i].Title, MaxWindowTitle)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(WindowListMessage{Type: "windows", Windows: infos})
}

func (s *Server) handleCapture(w http.ResponseWriter, r *http.Request) {
	ctx, span := trace.StartSpan(r.Context(), "http_capture")
	defer span.End()
	log := trace.Logger(ctx)

	q := r.URL.Query()
	hwnd, err := strconv.ParseUint(q.Get("hwnd"), 0, 64)
	if err != nil {
		http.Error(w, "hwnd required", http.StatusBadRequest)
		return
	}

	region := capture.Region{
		X:      queryInt(q.Get("x"), 0),
		Y:      queryInt(q.Get("y"), 0),
		Width:  queryInt(q.Get("w"), 0),
		Height: queryInt(q.Get("h"), 0),
	}
	mode := q.Get("mode")
	if mode == "" {
		mode = s.cfg.DefaultMode
	}
	span.SetAttr("hwnd", hwnd)
	span.SetAttr("mode", mode)

	buf, err := s.backend.Capture(ctx, uintptr(hwnd), region, mode)
	if err != nil {
		log.Error("capture error", "hwnd", hwnd, "error", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}

	img := s.frameImage(buf, queryInt(q.Get("thumb"), 0))
	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Debug("png write error", "error", err)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("websocket accept error", "error", err)
		return
	}
	defer func() { _ = conn.Close(websocket.StatusNormalClosure, "") }()

	sess := &wsSession{
		limiter: &rateLimiter{
			limit:  s.cfg.RateLimitMessages,
			window: time.Duration(s.cfg.RateLimitWindowSec) * time.Second,
		},
		lastHash: make(map[uint64]*goimagehash.ImageHash),
	}

	s.mu.Lock()
	s.sessions[conn] = sess
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.sessions, conn)
		s.mu.Unlock()
	}()

	// Get trace context from HTTP upgrade request
	baseCtx := r.Context()
	log := trace.Logger(baseCtx)
	log.Info("websocket connected", "remote", r.RemoteAddr)

	for {
		var msg json.RawMessage
		if err := wsjson.Read(baseCtx, conn, &msg); err != nil {
			log.Debug("websocket read error", "error", err)
			return
		}

		if !sess.limiter.allow() {
			log.Warn("rate limit exceeded", "remote", r.RemoteAddr)
			_ = wsjson.Write(baseCtx, conn, ErrorMessage{
				Type:    "error",
				Code:    "RATE_LIMITED",
				Message: "rate limit exceeded",
			})
			continue
		}

		var base Message
		if err := json.Unmarshal(msg, &base); err != nil {
			continue
		}

		switch base.Type {
		case "windows":
			ctx, _ := trace.EnsureContext(baseCtx)
			s.handleWindowsWS(ctx, conn)
		case "capture":
			var req CaptureMessage
			if err := json.Unmarshal(msg, &req); err != nil {
				continue
			}
			s.handleCaptureWS(trace.MessageContext(baseCtx, req.TraceID), conn, sess, req)
		}
	}
}

func (s *Server) handleWindowsWS(ctx context.Context, conn *websocket.Conn) {
	infos := s.backend.Windows()
	_ = wsjson.Write(ctx, conn, WindowListMessage{Type: "windows", Windows: infos})
}

func (s *Server) handleCaptureWS(ctx context.Context, conn *websocket.Conn, sess *wsSession, req CaptureMessage) {
	ctx, span := trace.StartSpan(ctx, "ws_capture")
	defer span.End()
	log := trace.Logger(ctx)

	mode := req.Mode
	if mode == "" {
		mode = s.cfg.DefaultMode
	}
	region := capture.Region{X: req.X, Y: req.Y, Width: req.Width, Height: req.Height}

	buf, err := s.backend.Capture(ctx, uintptr(req.HWND), region, mode)
	if err != nil {
		span.SetAttr("error", err.Error())
		log.Error("capture error", "hwnd", req.HWND, "error", err)
		_ = wsjson.Write(ctx, conn, ErrorMessage{Type: "error", Code: errorCode(err), Message: err.Error()})
		return
	}

	img := s.frameImage(buf, req.Thumb)

	if hash, err := goimagehash.PerceptionHash(img); err == nil {
		sess.mu.Lock()
		prev := sess.lastHash[req.HWND]
		sess.lastHash[req.HWND] = hash
		sess.mu.Unlock()

		if prev != nil {
			if dist, err := prev.Distance(hash); err == nil && dist <= MaxHashDistance {
				_ = wsjson.Write(ctx, conn, UnchangedMessage{Type: "unchanged", HWND: req.HWND})
				return
			}
		}
	}

	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		log.Error("png encode error", "error", err)
		_ = wsjson.Write(ctx, conn, ErrorMessage{Type: "error", Code: "INTERNAL", Message: "frame encode failed"})
		return
	}

	bounds := img.Bounds()
	_ = wsjson.Write(ctx, conn, FrameMessage{
		Type:   "frame",
		HWND:   req.HWND,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		PNG:    base64.StdEncoding.EncodeToString(out.Bytes()),
	})
}

// frameImage converts a pixel buffer to an image, downscaling when a
// thumbnail width was requested.
func (s *Server) frameImage(buf *capture.PixelBuffer, thumb int) image.Image {
	img := image.Image(buf.Image())
	if thumb <= 0 {
		return img
	}

	if thumb < ThumbWidthFloor {
		thumb = ThumbWidthFloor
	}
	limit := s.cfg.ThumbMaxWidth
	if limit <= 0 || limit > ThumbWidthCap {
		limit = ThumbWidthCap
	}
	if thumb > limit {
		thumb = limit
	}
	if thumb >= buf.Width {
		return img
	}
	return resize.Resize(uint(thumb), 0, img, resize.Lanczos3)
}

// truncateTitle cuts s to at most limit bytes without splitting a rune.
func truncateTitle(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func queryInt(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func httpStatus(err error) int {
	switch {
	case errors.IsCode(err, errors.CodeInvalidArgument):
		return http.StatusBadRequest
	case errors.IsCode(err, errors.CodeNotFound):
		return http.StatusNotFound
	case errors.IsCode(err, errors.CodeUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func errorCode(err error) string {
	return errors.CodeOf(err).String()
}
