package api

import (
	"bytes"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"exercise-tracker/web"
)

func (a *API) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (a *API) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeContent(w, r, "index.html", time.Time{}, bytes.NewReader(web.IndexHTML()))
}

// static serves the public assets. Paths that name no file fall through to
// the not found response.
func (a *API) static() http.Handler {
	assets := web.Public()
	files := http.FileServerFS(assets)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/")
		info, err := fs.Stat(assets, name)
		if err != nil || info.IsDir() {
			a.notFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
