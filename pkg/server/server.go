package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/openapi"
	"github.com/goliatone/go-contactform/pkg/render"
)

const maxFormMemory = 1 << 20

// Option configures the server.
type Option func(*Server)

// WithLogger sets the logger used for access lines and submit outcomes.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPath mounts the form at path instead of /contact.
func WithPath(path string) Option {
	return func(s *Server) {
		path = strings.TrimRight(strings.TrimSpace(path), "/")
		if path != "" {
			s.path = path
		}
	}
}

// WithAssets serves files under /assets/.
func WithAssets(files fs.FS) Option {
	return func(s *Server) {
		s.assets = files
	}
}

// WithRenderOptions sets the base options applied to every render. Action
// and Method are always derived from the mount path.
func WithRenderOptions(opts render.RenderOptions) Option {
	return func(s *Server) {
		s.renderOptions = opts
	}
}

// Server serves the contact form.
type Server struct {
	renderer      render.Renderer
	logger        *zap.Logger
	path          string
	assets        fs.FS
	renderOptions render.RenderOptions
	openapiJSON   []byte
}

// New wires a server around an HTML renderer.
func New(ctx context.Context, renderer render.Renderer, options ...Option) (*Server, error) {
	if renderer == nil {
		return nil, errors.New("server: renderer is required")
	}
	s := &Server{
		renderer: renderer,
		logger:   zap.NewNop(),
		path:     "/contact",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	doc, err := openapi.Document(ctx, openapi.Options{SubmitPath: s.path})
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	s.openapiJSON, err = openapi.MarshalJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("server: encode openapi: %w", err)
	}
	return s, nil
}

// Handler returns the routed handler wrapped in request id and access log
// middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+s.path, s.handleForm)
	mux.HandleFunc("POST "+s.path, s.handleSubmit)
	mux.HandleFunc("POST "+s.path+"/validate", s.handleValidate)
	mux.HandleFunc("GET /openapi.json", s.handleOpenAPI)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if s.assets != nil {
		mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServerFS(s.assets)))
	}
	return requestID(accessLog(s.logger, mux))
}

// Serve handles connections on ln until ctx is cancelled, then shuts down
// allowing in-flight requests up to grace to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener, grace time.Duration) error {
	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("listening", zap.String("addr", ln.Addr().String()), zap.String("path", s.path))

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	s.logger.Info("shutting down", zap.Duration("grace", grace))
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	<-errChan
	return nil
}

// Run listens on addr and calls Serve.
func (s *Server) Run(ctx context.Context, addr string, grace time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln, grace)
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.write(w, r, contact.New(), http.StatusOK)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, fmt.Sprintf("parse form: %v", err), http.StatusBadRequest)
		return
	}
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}

	form := contact.New()
	form.Fill(contact.FormState{
		FirstName: r.PostForm.Get(contact.FieldFirstName.String()),
		LastName:  r.PostForm.Get(contact.FieldLastName.String()),
		Email:     r.PostForm.Get(contact.FieldEmail.String()),
		Message:   r.PostForm.Get(contact.FieldMessage.String()),
	})

	status := http.StatusOK
	if _, ok := form.Submit(); ok {
		s.logger.Info("contact submitted", zap.String("request_id", RequestIDFrom(r.Context())))
	} else {
		status = http.StatusUnprocessableEntity
		s.logger.Info("contact rejected",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Stringers("invalid_fields", form.Errors().Fields()),
		)
	}
	s.write(w, r, form, status)
}

type changeRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type changeResponse struct {
	Field string `json:"field"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req changeRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10))
	if err := decoder.Decode(&req); err != nil {
		writeJSON(w, s.logger, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("decode body: %v", err)})
		return
	}

	field, err := contact.ParseField(req.Field)
	if err != nil {
		writeJSON(w, s.logger, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	form := contact.New()
	if err := form.Change(field, req.Value); err != nil {
		writeJSON(w, s.logger, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	message := form.Error(field)
	writeJSON(w, s.logger, http.StatusOK, changeResponse{
		Field: field.String(),
		Valid: message == "",
		Error: contact.DisplayError(message),
	})
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(s.openapiJSON); err != nil {
		s.logger.Warn("write openapi response", zap.Error(err))
	}
}

func (s *Server) write(w http.ResponseWriter, r *http.Request, form *contact.Form, status int) {
	opts := s.renderOptions
	opts.Action = s.path
	opts.Method = http.MethodPost
	if themeName := strings.TrimSpace(r.URL.Query().Get("theme")); themeName != "" {
		opts.ThemeName = themeName
	}
	if variant := strings.TrimSpace(r.URL.Query().Get("variant")); variant != "" {
		opts.ThemeVariant = variant
	}
	opts.Hidden = render.MergeHiddenFields(opts.Hidden, render.Hidden("_request_id", RequestIDFrom(r.Context())))

	output, err := s.renderer.Render(r.Context(), form, opts)
	if err != nil {
		s.logger.Error("render form", zap.Error(err), zap.String("request_id", RequestIDFrom(r.Context())))
		http.Error(w, "render form", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", s.renderer.ContentType())
	w.WriteHeader(status)
	if _, err := w.Write(output); err != nil {
		s.logger.Warn("write response", zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Warn("write json response", zap.Error(err))
	}
}
