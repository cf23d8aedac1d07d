//go:build ignore

// Simple static file server for the guesthouse Mini App frontend.
// Run: go run webapp/server.go (then expose with: ngrok http 3000)
package main

import (
	"log"
	"net/http"
	"os"
)

func main() {
	port := os.Getenv("WEBAPP_PORT")
	if port == "" {
		port = "3000"
	}

	fs := http.FileServer(http.Dir("webapp"))

	// Permissive CORS for local development behind ngrok.
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		fs.ServeHTTP(w, r)
	})

	log.Printf("Serving Mini App at http://localhost:%s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
