// internal/config/model.go
//
// Typed configuration variants for BurzPage.
//
// Context
// -------
// The runtime configuration is a closed set of three variants, one per
// environment: development, staging, and production.  Each variant embeds
// the shared `Base` block and may add fields of its own; today only the
// development variant does.  Staging and production stay distinct types so
// either can grow fields later without touching the other.
//
// The loader in `resolver.go` builds exactly one variant per process:
//
//   • compiled defaults (constructors below),
//   • optional `conf/global.yaml` overlay,
//   • `BURZPAGE_`-prefixed environment overrides — highest precedence.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • `Description` is filled from `api/API.md` at resolve time; neither
//     YAML nor env may set it.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

import "path/filepath"

//
// Environment tag
//

// Environment names one member of the closed variant set.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// ParseEnvironment maps the ENVIRONMENT selector onto the closed set.
// Anything outside {"staging", "production"}, including the empty string,
// falls back to Development.  The fallback is deliberate, not an error.
func ParseEnvironment(v string) Environment {
	switch v {
	case "staging":
		return Staging
	case "production":
		return Production
	default:
		return Development
	}
}

//
// Base block (shared by every variant)
//

// Base holds the fields present in every variant.  Host and Port carry the
// bootstrap defaults explicitly, so the record never depends on hidden
// lookup fallbacks.
type Base struct {
	Title          string              `koanf:"title"            validate:"required"`
	Version        string              `koanf:"version"          validate:"required"`
	Contact        map[string]string   `koanf:"contact"          validate:"required"`
	Description    string              `koanf:"-"`
	Summary        string              `koanf:"summary"`
	TermsOfService string              `koanf:"terms_of_service" validate:"omitempty,url"`
	TagsMetadata   []map[string]string `koanf:"tags_metadata"`
	OpenAPIURL     *string             `koanf:"openapi_url"`
	DocsURL        *string             `koanf:"docs_url"`
	RedocURL       *string             `koanf:"redoc_url"`
	Host           string              `koanf:"host"             validate:"required"`
	Port           int                 `koanf:"port"             validate:"required,min=1,max=65535"`
}

//
// Variant structs
//

// DevelopmentVariant extends Base with local-only tunables: verbose
// diagnostics, asset directories, and the CORS allow-list.
type DevelopmentVariant struct {
	Base           `koanf:",squash"`
	Debug          bool     `koanf:"debug"`
	StaticFilesDir string   `koanf:"static_files_dir" validate:"required"`
	TemplatesDir   string   `koanf:"templates_dir"    validate:"required"`
	Origins        []string `koanf:"origins"`
}

// StagingVariant mirrors production for pre-release testing.  Currently
// base-only; extend here, not in Base, when staging diverges.
type StagingVariant struct {
	Base `koanf:",squash"`
}

// ProductionVariant is the live profile.  Currently base-only.
type ProductionVariant struct {
	Base `koanf:",squash"`
}

//
// Compiled defaults
//

const (
	defaultTitle   = "BurzPage API"
	defaultVersion = "v0.1.0"
	defaultSummary = "The BurzPage server-side API service to serve the " +
		"client-side services.\n"
	defaultTerms = "https://remington.bg/terms-of-service"
	defaultHost  = "localhost"
	defaultPort  = 8000

	developmentOpenAPIURL = "/openapi.json"
)

// baseDefaults returns the Base block every variant starts from.  The
// description text is read by the resolver and threaded in here so the
// constructors stay pure.
func baseDefaults(description string) Base {
	return Base{
		Title:          defaultTitle,
		Version:        defaultVersion,
		Contact:        map[string]string{"name": "Contact", "email": "somraj.saha@weburz.com"},
		Description:    description,
		Summary:        defaultSummary,
		TermsOfService: defaultTerms,
		TagsMetadata:   []map[string]string{},
		Host:           defaultHost,
		Port:           defaultPort,
	}
}

// newDevelopment builds the development defaults.  Asset directories are
// anchored at the resolved project root so `go run ./cmd/api` works from
// any sub-directory.
func newDevelopment(root, description string) *DevelopmentVariant {
	openapi := developmentOpenAPIURL
	b := baseDefaults(description)
	b.OpenAPIURL = &openapi
	return &DevelopmentVariant{
		Base:           b,
		Debug:          true,
		StaticFilesDir: filepath.Join(root, "api", "static"),
		TemplatesDir:   filepath.Join(root, "api", "templates"),
		Origins:        []string{"http://localhost:3000"},
	}
}

func newStaging(description string) *StagingVariant {
	return &StagingVariant{Base: baseDefaults(description)}
}

func newProduction(description string) *ProductionVariant {
	return &ProductionVariant{Base: baseDefaults(description)}
}

//
// Record flattening
//

// record flattens the shared block into the flat key→value form consumed
// by the bootstrap.  Optional URL fields keep their key with a nil value
// when disabled, matching the selector semantics of OptString.
func (b Base) record(env Environment) Record {
	r := Record{
		"environment":      string(env),
		"title":            b.Title,
		"version":          b.Version,
		"contact":          b.Contact,
		"description":      b.Description,
		"summary":          b.Summary,
		"terms_of_service": b.TermsOfService,
		"tags_metadata":    b.TagsMetadata,
		"openapi_url":      nil,
		"docs_url":         nil,
		"redoc_url":        nil,
		"host":             b.Host,
		"port":             b.Port,
	}
	if b.OpenAPIURL != nil {
		r["openapi_url"] = *b.OpenAPIURL
	}
	if b.DocsURL != nil {
		r["docs_url"] = *b.DocsURL
	}
	if b.RedocURL != nil {
		r["redoc_url"] = *b.RedocURL
	}
	return r
}

// Record implements Variant for the development profile.  Filesystem
// paths are flattened to plain strings at this boundary.
func (v *DevelopmentVariant) Record() Record {
	r := v.Base.record(Development)
	r["debug"] = v.Debug
	r["static_files_dir"] = filepath.ToSlash(v.StaticFilesDir)
	r["templates_dir"] = filepath.ToSlash(v.TemplatesDir)
	r["origins"] = v.Origins
	return r
}

func (v *StagingVariant) Record() Record    { return v.Base.record(Staging) }
func (v *ProductionVariant) Record() Record { return v.Base.record(Production) }

// Variant is one member of the closed configuration set.
type Variant interface {
	Record() Record
}
