// internal/config/resolver.go
//
// Environment-driven configuration resolution.
//
/*
Context
--------
`Resolve()` produces exactly one immutable Record per call from four
layers (highest precedence last):

  1. Compiled variant defaults, selected by the ENVIRONMENT variable:
     "staging" and "production" pick their variants; any other value,
     including unset, falls back to development.
  2. Optional `conf/.env` — dotenv values for local development.
  3. Optional `conf/global.yaml` overlay.
  4. Environment variables prefixed `BURZPAGE_`, where `__` maps to “.”
     (e.g., `BURZPAGE_PORT → port`, `BURZPAGE_CONTACT__NAME → contact.name`).

The overridable field set is exactly the koanf-tagged fields of the
variant structs: title, version, contact.*, summary, terms_of_service,
openapi_url, docs_url, redoc_url, host, port, and — development only —
debug, static_files_dir, templates_dir.  List-valued fields (origins,
tags_metadata) are YAML-only.  Nothing else is consumed from the process
environment, so the record's declared defaults and the ambient
environment stay visibly coupled.

The description text is read once per call from `<root>/api/API.md`.  A
missing file is a fatal startup error: Resolve returns the error before
any record exists, so a partial record is never observable.

Instrumentation
---------------
  • DEBUG spans — root discovery, YAML overlay, env overlay.
  • ERROR spans — description read, overlay, unmarshal, validation.
  • INFO  span  — final “config resolved” with key highlights.
  • Logs use the global *sugared* logger (`zap.S()`) so early boot issues
    surface even before the file logger is installed (bootstrap console).

Notes
-----
  • `rootDir()` climbs the cwd tree until it finds `api/API.md`; this
    lets `go run ./cmd/api` work from any sub-directory.
  • There is no package-level cached record on purpose.  The bootstrap
    calls Resolve once and passes the Record by reference; changing the
    active environment requires a restart.
  • Oxford commas, two spaces after periods.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

// envSelector is the one variable that picks the active variant.
const envSelector = "ENVIRONMENT"

// envPrefix namespaces the explicit field overrides.
const envPrefix = "BURZPAGE_"

/*──────────────────────────── root discovery ───────────────────────────────*/

// rootDir resolves BURZPAGE_ROOT or climbs directories until api/API.md
// is found.  Falls back to executable heuristic for production layout.
func rootDir() string {
	if r := os.Getenv("BURZPAGE_ROOT"); r != "" {
		return r
	}

	wd, _ := os.Getwd()
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "api", "API.md")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached filesystem root
			break
		}
		dir = parent
	}

	exe, _ := os.Executable()
	if filepath.Base(filepath.Dir(exe)) == "bin" {
		return filepath.Dir(filepath.Dir(exe))
	}
	return wd
}

// Root exposes the resolved project root for callers that anchor other
// paths (log directory, asset mounts) next to the configuration.
func Root() string { return rootDir() }

/*─────────────────────────────── resolver ─────────────────────────────────*/

// Resolve selects the active variant, applies the overlay layers,
// validates, and returns the flattened Record.  Identical environment and
// resource files yield field-for-field identical output.
func Resolve() (Record, error) {
	root := rootDir()
	zap.S().Debugw("config root resolved", "root", root)

	// .env (optional, no error if missing)
	_ = godotenv.Load(filepath.Join(root, "conf", ".env"))

	description, err := readDescription(root)
	if err != nil {
		zap.S().Errorw("config description read failed", "err", err)
		return nil, err
	}

	active := ParseEnvironment(os.Getenv(envSelector))

	var v Variant
	switch active {
	case Staging:
		s := newStaging(description)
		if err := overlay(root, s); err != nil {
			return nil, err
		}
		if err := validateStruct(s); err != nil {
			zap.S().Errorw("config validation failed", "environment", active, "err", err)
			return nil, err
		}
		v = s
	case Production:
		p := newProduction(description)
		if err := overlay(root, p); err != nil {
			return nil, err
		}
		if err := validateStruct(p); err != nil {
			zap.S().Errorw("config validation failed", "environment", active, "err", err)
			return nil, err
		}
		v = p
	default:
		d := newDevelopment(root, description)
		if err := overlay(root, d); err != nil {
			return nil, err
		}
		if err := validateStruct(d); err != nil {
			zap.S().Errorw("config validation failed", "environment", active, "err", err)
			return nil, err
		}
		v = d
	}

	rec := v.Record()
	zap.S().Infow("config resolved",
		"environment", active,
		"host", rec.String("host", defaultHost),
		"port", rec.Int("port", defaultPort),
	)
	return rec, nil
}

// readDescription loads the long-form service description.  Absence is a
// fatal startup error, surfaced to the caller instead of recovered.
func readDescription(root string) (string, error) {
	path := filepath.Join(root, "api", "API.md")
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read description %s: %w", path, err)
	}
	return string(raw), nil
}

/*──────────────────────────────── overlay ─────────────────────────────────*/

// overlay merges the optional YAML file and the BURZPAGE_ environment
// overrides into dst.  Keys absent from both layers keep their compiled
// defaults.
func overlay(root string, dst any) error {
	k := koanf.New(".")

	yamlPath := filepath.Join(root, "conf", "global.yaml")
	if _, err := os.Stat(yamlPath); err == nil {
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			zap.S().Errorw("config yaml overlay failed", "file", yamlPath, "err", err)
			return err
		}
		zap.S().Debugw("config yaml loaded", "file", yamlPath)
	}

	// Env overrides: BURZPAGE_CONTACT__NAME → contact.name
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(
			strings.ReplaceAll(strings.TrimPrefix(s, envPrefix), "__", "."))
	}), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return err
	}

	if err := k.Unmarshal("", dst); err != nil {
		zap.S().Errorw("config unmarshal failed", "err", err)
		return err
	}
	return nil
}
