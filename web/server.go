/* server.go
 * Contains the keep-alive HTTP server. Free hosting providers idle the process
 * when nothing hits it, so the bot exposes a trivial liveness surface and can
 * optionally ping its own public URL on an interval.
 */

package web

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const selfPingInterval = 5 * time.Minute

// Server is the liveness HTTP server that runs beside the gateway session.
type Server struct {
	cfg   Config
	srv   *http.Server
	start time.Time
}

// NewServer assembles the server from config, applying defaults.
// Preconditions: Receives the web config parsed from the environment
// Postconditions: Returns a pointer to a Server ready to Run
func NewServer(cfg Config) *Server {
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Log == nil {
		cfg.Log = slog.Default()
	}

	s := &Server{cfg: cfg, start: time.Now()}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)

	s.srv = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Run starts the self-ping loop (when configured) and blocks serving HTTP.
func (s *Server) Run() error {
	if s.cfg.SelfPing && s.cfg.SelfURL != "" {
		go s.selfPingLoop()
	}
	s.cfg.Log.Info("web server listening", "port", s.cfg.Port)
	return s.srv.ListenAndServe()
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	fmt.Fprint(w, "Bot is alive!")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(healthResponse{
		Status: "ok",
		Uptime: time.Since(s.start).Round(time.Second).String(),
	})
	if err != nil {
		s.cfg.Log.Error("failed to write health response", "err", err)
	}
}

// selfPingLoop hits the public URL on an interval so the host keeps the
// process warm. Failures are logged and the loop carries on.
func (s *Server) selfPingLoop() {
	client := &http.Client{Timeout: 10 * time.Second}
	ticker := time.NewTicker(selfPingInterval)
	defer ticker.Stop()

	for range ticker.C {
		resp, err := client.Get(s.cfg.SelfURL)
		if err != nil {
			s.cfg.Log.Warn("self ping failed", "url", s.cfg.SelfURL, "err", err)
			continue
		}
		resp.Body.Close()
	}
}
