package authkit

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-safe-auth/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	callbackPath      = "/callback"
	shutdownTimeout   = 2 * time.Second
	callbackDoneHTML  = "<html><body><p>Login complete. You can close this window and return to the terminal.</p></body></html>"
	callbackErrorHTML = "<html><body><p>Login failed: %s. Return to the terminal for details.</p></body></html>"
)

type callbackResult struct {
	code string
	err  error
}

// callbackServer receives the single redirect of one login attempt on the
// loopback address.
type callbackServer struct {
	state    string
	listener net.Listener
	server   *http.Server
	results  chan callbackResult
	logger   *logger.Logger
}

func newCallbackServer(address, state string, log *logger.Logger) (*callbackServer, error) {
	ln, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", address, err)
	}

	s := &callbackServer{
		state:    state,
		listener: ln,
		results:  make(chan callbackResult, 1),
		logger:   log,
	}
	s.server = &http.Server{
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

func (s *callbackServer) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withLogger)

	router.Get(callbackPath, s.callback)

	return router
}

// redirectURL is the URL the issuer must send the browser back to.
func (s *callbackServer) redirectURL() string {
	return "http://" + s.listener.Addr().String() + callbackPath
}

func (s *callbackServer) serve() {
	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Err(err).Msg("callback server stopped")
	}
}

func (s *callbackServer) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Err(err).Msg("callback server shutdown")
	}
}

// wait blocks until the redirect arrives or ctx is done.
func (s *callbackServer) wait(ctx context.Context) (string, error) {
	select {
	case res := <-s.results:
		return res.code, res.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", ErrLoginTimeout
		}
		return "", ctx.Err()
	}
}

func (s *callbackServer) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := s.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", uuid.NewString())
		})
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

// callback handles the issuer's redirect. A request carrying a foreign state
// (a stale tab, another page) is answered with 400 and ignored: only a
// redirect for this attempt ends the wait.
func (s *callbackServer) callback(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	q := r.URL.Query()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if q.Get("state") != s.state {
		log.Warn().Err(ErrStateMismatch).Msg("login callback with foreign state ignored")
		writeCallbackError(w, ErrStateMismatch)
		return
	}

	var res callbackResult
	switch {
	case q.Get("error") != "":
		res.err = fmt.Errorf("%w: %s %s", ErrLoginCancelled, q.Get("error"), q.Get("error_description"))
	case q.Get("code") == "":
		res.err = ErrMissingAuthCode
	default:
		res.code = q.Get("code")
	}

	if res.err != nil {
		log.Warn().Err(res.err).Msg("login callback rejected")
		writeCallbackError(w, res.err)
	} else {
		log.Info().Msg("login callback received")
		_, _ = w.Write([]byte(callbackDoneHTML))
	}

	// Only the first redirect counts.
	select {
	case s.results <- res:
	default:
	}
}

func writeCallbackError(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusBadRequest)
	_, _ = fmt.Fprintf(w, callbackErrorHTML, html.EscapeString(err.Error()))
}
