// Package keepalive serves the tiny HTTP surface external uptime monitors
// ping. Three routes, no state, no auth.
package keepalive

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/MubtasimTazwer/utility-bot/internal/version"
)

// RunServer starts the liveness HTTP server and blocks until it exits or
// ctx is cancelled; run it in a goroutine.
func RunServer(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", handleRoot)
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/ping", handleHealth)

	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		log.Println("[INFO] Shutting down keepalive server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("[INFO] Keepalive server listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("[ERR] Keepalive server exited: %v", err)
	}
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	fmt.Fprintf(w, "%s - Online 24/7", version.AppName)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":    "online",
		"message":   fmt.Sprintf("%s is running", version.AppName),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
