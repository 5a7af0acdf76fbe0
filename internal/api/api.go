// internal/api/api.go
//
// Router assembly for the BurzPage API.
//
/*
Context
--------
`New` receives the resolved configuration record, the content store, and
the process logger, then `Router` builds the chi mux:

  • `GET /`            – placeholder hello route.
  • `GET /health`      – liveness probe.
  • `/users`, `/articles`, `/comments` – REST resources (see the per-file
    handlers).
  • `GET /metrics`     – Prometheus exposition.
  • Documentation endpoints are mounted per the record: a nil value under
    `openapi_url`, `docs_url`, or `redoc_url` disables that endpoint.
  • Development only: the static asset directory is mounted under
    `/static/` (and must exist), and the RapiDoc UI is served on `/docs`
    even while the built-in `docs_url` stays disabled.

The record is read here once, during assembly.  Handlers never consult
the process environment; every toggle flows through the record.

Notes
-----
  • Oxford commas, two spaces after periods.
*/
package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Weburz/burzpage/internal/cache"
	"github.com/Weburz/burzpage/internal/config"
	"github.com/Weburz/burzpage/internal/content"
	"github.com/Weburz/burzpage/internal/metrics"
)

// API carries the dependencies shared by every handler.
type API struct {
	rec      config.Record
	store    *content.Store
	log      *zap.SugaredLogger
	validate *validator.Validate
	tmpl     *cache.LRU // parsed documentation templates, keyed by file name
}

// New wires the handler set.  The record is treated as read-only.
func New(rec config.Record, store *content.Store, log *zap.SugaredLogger) *API {
	return &API{
		rec:      rec,
		store:    store,
		log:      log,
		validate: validator.New(),
		tmpl:     cache.New(8),
	}
}

// Router assembles the mux.  It fails when a development asset directory
// named by the record does not exist at mount time.
func (a *API) Router() (*chi.Mux, error) {
	r := chi.NewRouter()

	// Inside the mux the route context is populated once a pattern has
	// matched, so the collectors see /users/{id} instead of raw paths.
	r.Use(metrics.Instrument)

	r.Get("/", a.hello)
	r.Get("/health", a.health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/users", func(r chi.Router) {
		r.Get("/", a.listUsers)
		r.Put("/new", a.createUser)
		r.Get("/{id}", a.getUser)
		r.Post("/{id}/edit", a.updateUser)
		r.Delete("/{id}/delete", a.deleteUser)
	})

	r.Route("/articles", func(r chi.Router) {
		r.Get("/", a.listArticles)
		r.Put("/new", a.createArticle)
		r.Get("/{id}", a.getArticle)
		r.Post("/{id}/edit", a.updateArticle)
		r.Delete("/{id}/delete", a.deleteArticle)
	})

	r.Route("/comments", func(r chi.Router) {
		r.Get("/", a.listComments)
		r.Put("/new", a.createComment)
		r.Get("/{id}", a.getComment)
		r.Post("/{id}/edit", a.updateComment)
		r.Delete("/{id}/delete", a.deleteComment)
	})

	a.mountDocs(r)
	if err := a.mountDevAssets(r); err != nil {
		return nil, err
	}

	return r, nil
}

// mountDocs wires the schema and documentation UIs per the record's
// optional URL fields.
func (a *API) mountDocs(r *chi.Mux) {
	if u := a.rec.OptString("openapi_url"); u != nil {
		r.Get(*u, a.openAPISchema)
	}
	if u := a.rec.OptString("docs_url"); u != nil {
		r.Get(*u, a.docsUI("docs.html"))
	}
	if u := a.rec.OptString("redoc_url"); u != nil {
		r.Get(*u, a.docsUI("redoc.html"))
	}

	// Development serves the custom RapiDoc UI on /docs while the
	// built-in docs_url stays nil.
	if a.rec.Environment() == config.Development && a.rec.OptString("docs_url") == nil {
		r.Get("/docs", a.docsUI("docs.html"))
	}
}

// mountDevAssets exposes the static directory in development.  The
// directory must exist at mount time.
func (a *API) mountDevAssets(r *chi.Mux) error {
	if a.rec.Environment() != config.Development {
		return nil
	}

	dir := a.rec.String("static_files_dir", "")
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return fmt.Errorf("static files dir %q does not exist", dir)
	}

	fs := http.StripPrefix("/static/", http.FileServer(http.Dir(dir)))
	r.Get("/static/*", func(w http.ResponseWriter, r *http.Request) {
		fs.ServeHTTP(w, r)
	})
	return nil
}

// templatesDir resolves where the documentation templates live.  The
// development record carries the path; other variants fall back to the
// project-root layout.
func (a *API) templatesDir() string {
	if dir := a.rec.String("templates_dir", ""); dir != "" {
		return filepath.FromSlash(dir)
	}
	return filepath.Join(config.Root(), "api", "templates")
}

/*──────────────────────────── tiny handlers ────────────────────────────────*/

// hello answers the placeholder root route.
func (a *API) hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello World!"})
}

// health is a liveness probe; it reports the active environment so
// operators can spot a mis-deployed selector at a glance.
func (a *API) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":      "ok",
		"environment": string(a.rec.Environment()),
	})
}
