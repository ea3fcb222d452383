// Command gaingrn-server provides a REST API for GAIN-domain detection
// and indexing.
//
// Usage:
//
//	gaingrn-server [options]
//
// Options:
//
//	-port     Port to listen on (default: 8080)
//	-host     Host to bind to (default: localhost)
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/gph82/GAIN-GRN/api/handlers"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	host := flag.String("host", "localhost", "Host to bind to")
	flag.Parse()

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/boundary", func(r chi.Router) {
			r.Post("/detect", handlers.DetectBoundaryHandler)
		})
		r.Route("/segments", func(r chi.Router) {
			r.Post("/group", handlers.GroupSegmentsHandler)
		})
		r.Route("/alignmap", func(r chi.Router) {
			r.Post("/build", handlers.BuildAlignMapHandler)
		})
		r.Route("/indexing", func(r chi.Router) {
			r.Post("/assign", handlers.IndexDomainHandler)
		})
	})

	addr := fmt.Sprintf("%s:%d", *host, *port)
	log.Printf("gaingrn-server listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
