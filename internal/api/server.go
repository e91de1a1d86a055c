// Package api exposes the editor over HTTP: source and music uploads plus
// the generate-edit endpoint that plans and renders in one call.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Aditya200247/Ai-Video-editor/internal/music"
	"github.com/Aditya200247/Ai-Video-editor/internal/ports"
	"github.com/Aditya200247/Ai-Video-editor/internal/usecase"
)

const (
	// maxUploadBytes bounds one multipart upload.
	maxUploadBytes  = 2 << 30 // 2 GiB
	shutdownTimeout = 10 * time.Second
)

type Server struct {
	uc      usecase.Usecase
	prober  ports.Prober
	uploads *uploadStore
	music   *music.Library
	outDir  string
	log     *slog.Logger
}

// NewServer lays out dataDir/{uploads,music,outputs} and wires the routes.
// prober supplies upload metadata for the upload response.
func NewServer(uc usecase.Usecase, prober ports.Prober, dataDir string, log *slog.Logger) (*Server, error) {
	if log == nil {
		log = slog.Default()
	}
	uploads, err := newUploadStore(filepath.Join(dataDir, "uploads"))
	if err != nil {
		return nil, err
	}
	lib, err := music.NewLibrary(filepath.Join(dataDir, "music"))
	if err != nil {
		return nil, err
	}
	outDir := filepath.Join(dataDir, "outputs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("api: create output dir: %w", err)
	}
	return &Server{uc: uc, prober: prober, uploads: uploads, music: lib, outDir: outDir, log: log}, nil
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/upload", s.handleUpload)
		r.Post("/music/upload", s.handleMusicUpload)
		r.Get("/music/list", s.handleMusicList)
		r.Post("/generate_edit", s.handleGenerateEdit)
	})
	return r
}

// ListenAndServe runs the server until ctx is cancelled, then drains.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
