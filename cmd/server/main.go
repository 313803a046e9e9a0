package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gov-tables/internal/crawler"
	"gov-tables/internal/datasets"
	"gov-tables/internal/ioformats"
	"gov-tables/internal/parser"
	"gov-tables/internal/pipeline"
	"gov-tables/pkg/logger"
)

type tablesReq struct {
	URL      string `json:"url"`
	Index    *int   `json:"index,omitempty"`
	Strategy string `json:"strategy,omitempty"`
}

func main() {
	l := logger.New()
	client := crawler.NewHTTPClient(crawler.Options{Timeout: 20 * time.Second, SizeCap: 10 * 1024 * 1024})

	addr := ":8080"
	if v := os.Getenv("ADDR"); v != "" {
		addr = v
	}
	srv := &http.Server{
		Addr:         addr,
		Handler:      logRequest(l, newMux(client, l)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		l.Infof("server listening on %s", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			l.Errorf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	l.Infof("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	l.Infof("bye")
}

func newMux(client *crawler.HTTPClient, l *logger.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// POST /tables  { "url": "https://...", "index": 0 }
	mux.HandleFunc("/tables", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
			return
		}
		var req tablesReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		strategy, err := parser.ParseStrategy(req.Strategy)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		run := pipeline.New(client, parser.New(strategy), l)

		if req.Index == nil {
			tables, err := run.Tables(r.Context(), req.URL)
			if err != nil {
				writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
				return
			}
			writeJSON(w, http.StatusOK, tables)
			return
		}
		t, err := run.Table(r.Context(), req.URL, *req.Index)
		if err != nil {
			writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, t)
	})

	// GET /datasets/{name}  -> mapped CSV, nothing written to disk
	mux.HandleFunc("/datasets/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
			return
		}
		name := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/datasets/"), ".csv")
		d, ok := datasets.Lookup(name)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown dataset"})
			return
		}
		if u := r.URL.Query().Get("url"); u != "" {
			d.URL = u
		}
		rs, err := pipeline.New(client, parser.New(parser.Tokenizer), l).Build(r.Context(), d)
		if err != nil {
			writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if err := ioformats.EncodeCSV(w, rs); err != nil {
			l.Errorf("write csv: %v", err)
		}
	})

	return mux
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, crawler.ErrFetch):
		return http.StatusBadGateway
	case errors.Is(err, parser.ErrNoTables), errors.Is(err, parser.ErrTableIndex):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func logRequest(l *logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		l.Infof("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
