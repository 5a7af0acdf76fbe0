// internal/config/record_test.go
//
// Unit-tests for the flat Record accessors.

package config

import "testing"

func TestRecordAccessors(t *testing.T) {
	rec := Record{
		"environment": "staging",
		"title":       "BurzPage API",
		"port":        8000,
		"debug":       true,
		"origins":     []string{"http://localhost:3000"},
		"docs_url":    nil,
		"openapi_url": "/openapi.json",
		"contact":     map[string]string{"name": "Contact"},
	}

	if got := rec.Environment(); got != Staging {
		t.Errorf("Environment() = %q, want staging", got)
	}
	if got := rec.String("title", "x"); got != "BurzPage API" {
		t.Errorf("String(title) = %q", got)
	}
	if got := rec.String("missing", "fallback"); got != "fallback" {
		t.Errorf("String(missing) = %q, want fallback", got)
	}
	if got := rec.Int("port", 1); got != 8000 {
		t.Errorf("Int(port) = %d", got)
	}
	if got := rec.Int("title", 42); got != 42 {
		t.Errorf("Int on non-int = %d, want default", got)
	}
	if !rec.Bool("debug", false) {
		t.Errorf("Bool(debug) = false")
	}
	if got := rec.Strings("origins"); len(got) != 1 {
		t.Errorf("Strings(origins) = %v", got)
	}
	if u := rec.OptString("docs_url"); u != nil {
		t.Errorf("OptString(docs_url) = %q, want nil", *u)
	}
	if u := rec.OptString("openapi_url"); u == nil || *u != "/openapi.json" {
		t.Errorf("OptString(openapi_url) = %v", u)
	}
	if got := rec.Contact()["name"]; got != "Contact" {
		t.Errorf("Contact()[name] = %q", got)
	}
}
