// cmd/api/main.go
//
// BurzPage – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load env vars (jail-wide file → .env fallback).
//
//  2. Resolve the configuration record once: ENVIRONMENT picks the
//     variant, api/API.md supplies the description, BURZPAGE_ overrides
//     apply last.  A missing description file aborts startup.
//
//  3. Start daily rotating logger (tees to console when running in a TTY;
//     DEBUG level when the development record says so).
//
//  4. Open the GeoLite2 DB when GEOIP_DB is set (access-log enrichment).
//
//  5. Open the content DB.  The DSN may carry one %s verb for the
//     password; a `vault:` password reference is resolved first.
//
//  6. Assemble the router and wrap it:
//     security → requestinfo → access log → CORS → routes.  Prometheus
//     instrumentation runs inside the router, where chi's route
//     patterns are visible.
//
//  7. Serve on host:port from the record with hardened timeouts, and
//     drain gracefully on SIGINT/SIGTERM.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Weburz/burzpage/internal/api"
	"github.com/Weburz/burzpage/internal/config"
	"github.com/Weburz/burzpage/internal/content"
	"github.com/Weburz/burzpage/internal/database"
	"github.com/Weburz/burzpage/internal/logger"
	"github.com/Weburz/burzpage/internal/middleware"
	"github.com/Weburz/burzpage/internal/requestinfo"
	"github.com/Weburz/burzpage/internal/server"
	"github.com/Weburz/burzpage/internal/vault"
)

const serverEnvPath = "/usr/local/etc/burzpage/global.env"

// loadEnv prefers the jail-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	//
	// ── 1.  Configuration resolution ────────────────────────────────────
	//
	rec, err := config.Resolve()
	if err != nil {
		log.Fatalf("resolve configuration: %v", err)
	}

	logOut, err := logger.New(config.Root(), runningInTTY(), rec.Bool("debug", false))
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//
	// ── 2.  Optional GeoLite2 DB for access-log enrichment ──────────────
	//
	if path := os.Getenv("GEOIP_DB"); path != "" {
		if err := requestinfo.InitGeo(path); err != nil {
			logOut.Fatalf("open GeoLite2 DB: %v", err)
		}
		logOut.Infow("geoip online", "db", path)
	}

	//
	// ── 3.  Content DB connect (password may live in Vault) ─────────────
	//
	dsn := os.Getenv("BURZPAGE_DB_DSN")
	if dsn == "" {
		logOut.Fatal("BURZPAGE_DB_DSN is not set")
	}
	if pw := os.Getenv("BURZPAGE_DB_PASSWORD"); pw != "" {
		if vault.IsRef(pw) {
			cli, err := vault.New(ctx, logOut.Infof)
			if err != nil {
				logOut.Fatalf("vault client: %v", err)
			}
			if pw, err = cli.ResolveRef(ctx, pw); err != nil {
				logOut.Fatalf("resolve db password: %v", err)
			}
		}
		if strings.Contains(dsn, "%s") {
			dsn = fmt.Sprintf(dsn, pw)
		}
	}

	logOut.Infow("connecting to content DB")
	db, err := database.Open(dsn)
	if err != nil {
		logOut.Fatalf("connect content DB: %v", err)
	}
	defer db.Close()
	logOut.Infow("content DB online")

	//
	// ── 4.  Router assembly and middleware chain ────────────────────────
	//
	app := api.New(rec, content.NewStore(db), logOut)
	router, err := app.Router()
	if err != nil {
		logOut.Fatalf("assemble router: %v", err)
	}

	handler := middleware.Security(
		requestinfo.Enrich(
			middleware.Access(logOut)(
				middleware.CORS(rec.Strings("origins"))(router))))

	//
	// ── 5.  Serve until signalled ───────────────────────────────────────
	//
	addr := net.JoinHostPort(
		rec.String("host", "localhost"),
		strconv.Itoa(rec.Int("port", 8000)),
	)
	srv := server.New(addr, handler)

	logOut.Infow("listening",
		"addr", addr,
		"environment", string(rec.Environment()),
	)
	if err := server.Run(ctx, srv); err != nil {
		logOut.Fatalf("http server: %v", err)
	}
	logOut.Infow("server stopped")
}
