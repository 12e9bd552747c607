package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// StaticHandler serves the bundled UI for every path the API mux does
// not claim. Unknown paths fall back to index.html so the single-page
// client owns its own routing.
func StaticHandler(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if dir == "" {
			http.NotFound(w, r)
			return
		}

		// Never let a crafted path escape the asset directory.
		rel := filepath.Clean(strings.TrimPrefix(r.URL.Path, "/"))
		if rel == "." || rel == "" || strings.HasPrefix(rel, "..") {
			rel = "index.html"
		}

		name := filepath.Join(dir, rel)
		if info, err := os.Stat(name); err != nil || info.IsDir() {
			name = filepath.Join(dir, "index.html")
			if _, err := os.Stat(name); err != nil {
				http.NotFound(w, r)
				return
			}
		}
		http.ServeFile(w, r, name)
	}
}
