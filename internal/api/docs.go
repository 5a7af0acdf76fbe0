// internal/api/docs.go
//
// Documentation endpoints: the machine-readable schema and the HTML UIs.
//
/*
Context
--------
The schema handler flattens the record's identity fields into a minimal
OpenAPI 3.1 document covering the mounted routes.  The UI handlers render
an HTML shell (`docs.html` for RapiDoc, `redoc.html` for Redoc) that
points the in-browser renderer at the schema URL.

Parsed templates are kept in the package-local LRU so the files are hit
once per process, not once per request.  A template that fails to parse
or execute is a 500; the record's `templates_dir` (development) or the
project-root fallback names the directory.
*/
package api

import (
	"html/template"
	"net/http"
	"path/filepath"
)

/*──────────────────────────────── UI shells ───────────────────────────────*/

// docsUI returns a handler rendering the named template from the
// templates directory.
func (a *API) docsUI(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tmpl, err := a.docTemplate(name)
		if err != nil {
			a.log.Errorw("parse docs template", "template", name, "err", err)
			writeError(w, http.StatusInternalServerError, "Unable to render documentation")
			return
		}

		schemaURL := "/openapi.json"
		if u := a.rec.OptString("openapi_url"); u != nil {
			schemaURL = *u
		}

		data := map[string]string{
			"Title":     a.rec.String("title", ""),
			"SchemaURL": schemaURL,
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			a.log.Errorw("execute docs template", "template", name, "err", err)
		}
	}
}

// docTemplate parses name from the templates directory, consulting the
// LRU first.
func (a *API) docTemplate(name string) (*template.Template, error) {
	if v, ok := a.tmpl.Get(name); ok {
		return v.(*template.Template), nil
	}

	tmpl, err := template.ParseFiles(filepath.Join(a.templatesDir(), name))
	if err != nil {
		return nil, err
	}
	a.tmpl.Add(name, tmpl)
	return tmpl, nil
}

/*──────────────────────────────── schema ──────────────────────────────────*/

// openAPISchema serves the generated OpenAPI document.  The identity
// block comes straight from the configuration record, so overlay
// overrides (title, contact, …) show up here without code changes.
func (a *API) openAPISchema(w http.ResponseWriter, r *http.Request) {
	info := map[string]any{
		"title":          a.rec.String("title", ""),
		"version":        a.rec.String("version", ""),
		"summary":        a.rec.String("summary", ""),
		"description":    a.rec.String("description", ""),
		"termsOfService": a.rec.String("terms_of_service", ""),
		"contact":        a.rec.Contact(),
	}

	doc := map[string]any{
		"openapi": "3.1.0",
		"info":    info,
		"tags":    a.rec.Tags(),
		"paths":   schemaPaths(),
	}
	writeJSON(w, http.StatusOK, doc)
}

// schemaPaths describes the mounted routes.  Kept deliberately coarse;
// response schemas live with the handlers, not here.
func schemaPaths() map[string]any {
	collection := func(resource string) map[string]any {
		return map[string]any{
			"get": map[string]any{
				"summary": "List " + resource,
				"responses": map[string]any{
					"200": map[string]any{"description": "OK"},
				},
			},
		}
	}
	item := func(resource string) map[string]any {
		return map[string]any{
			"get": map[string]any{
				"summary": "Fetch one " + resource + " by ID",
				"responses": map[string]any{
					"200": map[string]any{"description": "OK"},
					"404": map[string]any{"description": "Not Found"},
				},
			},
		}
	}

	return map[string]any{
		"/":              map[string]any{"get": map[string]any{"summary": "Hello World"}},
		"/health":        map[string]any{"get": map[string]any{"summary": "Liveness probe"}},
		"/users":         collection("users"),
		"/users/{id}":    item("user"),
		"/articles":      collection("articles"),
		"/articles/{id}": item("article"),
		"/comments":      collection("comments"),
		"/comments/{id}": item("comment"),
	}
}
