package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/maelvls/dungeonname/logutil"
	"github.com/maelvls/dungeonname/mockapi"
	"github.com/maelvls/dungeonname/namegen"
	"github.com/maelvls/undent"
	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"
)

const (
	requestIDHeader = "X-Request-Id"
	shutdownTimeout = 5 * time.Second
)

var validRequestID = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,128}$`)

func serveCmd(groupID string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve dungeon names and the mock API over HTTP",
		Long: undent.Undent(`
			Serve dungeon names and the mock API over HTTP until interrupted.

			Routes:
			  GET /name          a random name
			  GET /name?id=ID    a stable name derived from ID
			  GET /              welcome message
			  GET /data          sample items
			  GET /status        uptime and the list of endpoints

			Every response is a JSON object with a "status" field. Unknown
			paths get {"status":404,"error":"Endpoint not found"}.
		`),
		Example: undent.Undent(`
			dungeonname serve
			dungeonname serve --listen 127.0.0.1:9000
			DUNGEONNAME_LISTEN=:9000 dungeonname serve
		`),
		Args:          cobra.NoArgs,
		GroupID:       groupID,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := getToolConfig(cmd)
			if err != nil {
				return err
			}
			g, err := newGenerator(conf)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              conf.Listen,
				Handler:           newServeHandler(g, mockapi.New()),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return runServer(cmd.Context(), srv)
		},
	}

	cmd.Flags().String("listen", "", "Address to listen on (default :8080)")

	return cmd
}

// newServeHandler mounts /name next to the mock API routes.
func newServeHandler(g *namegen.Generator, api *mockapi.API) http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)

	r.Get("/name", func(w http.ResponseWriter, r *http.Request) {
		var name string
		if id := r.URL.Query().Get("id"); id != "" {
			name = g.Deterministic(id)
		} else {
			name = g.Generate()
		}

		data, err := sjson.Set("{}", "name", name)
		if err != nil {
			logutil.Errorf("while building /name response: %v", err)
			mockapi.WriteResponse(w, mockapi.Response{Status: http.StatusInternalServerError, Error: "Internal server error"})
			return
		}
		mockapi.WriteResponse(w, mockapi.Response{Status: http.StatusOK, Data: []byte(data)})
	})

	api.Routes(r)
	return r
}

// requestID echoes the caller's request ID, or a fresh one when the caller
// sent none or a malformed one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if !validRequestID.MatchString(id) {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		logutil.Debugf("serve: %s %s (request %s)", r.Method, r.URL.RequestURI(), id)
		next.ServeHTTP(w, r)
	})
}

// runServer serves until ctx is done, then gives in-flight requests a few
// seconds to finish.
func runServer(ctx context.Context, srv *http.Server) error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("while listening on %s: %w", srv.Addr, err)
	}
	logutil.Infof("listening on http://%s", ln.Addr())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("while shutting down: %w", err)
		}
		logutil.Infof("server stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("while serving: %w", err)
	}
}
