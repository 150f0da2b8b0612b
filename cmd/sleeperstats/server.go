package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/omarshaarawi/sleeperstats/internal/mcptools"
	"github.com/omarshaarawi/sleeperstats/internal/metrics"
)

func newRouter(reports mcptools.Reports, mcpServer *mcp.Server) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Get("/health", healthCheckHandler)
	r.Handle("/metrics", metrics.Handler())

	mcpHandler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return mcpServer
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
	r.Handle("/mcp", mcpHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/matchups", func(w http.ResponseWriter, req *http.Request) {
			report, err := reports.MatchupReport(req.Context())
			writeJSON(w, report, err)
		})
		r.Get("/trades", func(w http.ResponseWriter, req *http.Request) {
			report, err := reports.TradeReport(req.Context())
			writeJSON(w, report, err)
		})
		r.Get("/waivers", func(w http.ResponseWriter, req *http.Request) {
			report, err := reports.WaiverReport(req.Context())
			writeJSON(w, report, err)
		})
		r.Get("/players/{name}", func(w http.ResponseWriter, req *http.Request) {
			season, err := reports.PlayerLookup(req.Context(), chi.URLParam(req, "name"))
			if err == nil && !season.Found {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"error": "no player matches " + season.Query})
				return
			}
			writeJSON(w, season, err)
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, v any, err error) {
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		slog.Error("Error building report", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
