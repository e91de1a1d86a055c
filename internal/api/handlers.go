package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Aditya200247/Ai-Video-editor/internal/director"
	"github.com/Aditya200247/Ai-Video-editor/internal/music"
	"github.com/Aditya200247/Ai-Video-editor/internal/types"
	"github.com/Aditya200247/Ai-Video-editor/internal/usecase"
)

type uploadResponse struct {
	FileID   string  `json:"file_id"`
	Filename string  `json:"filename"`
	Kind     string  `json:"kind"`
	Duration float64 `json:"duration"`
}

type musicListResponse struct {
	Tracks []music.Track `json:"tracks"`
}

type generateEditRequest struct {
	Prompt      string   `json:"prompt"`
	FileIDs     []string `json:"file_ids,omitempty"`
	MusicID     string   `json:"music_id,omitempty"`
	ReferenceID string   `json:"reference_id,omitempty"`
}

type generateEditResponse struct {
	OutputPath string    `json:"output_path"`
	EDL        types.EDL `json:"edl"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("missing file field: %w", err))
		return
	}
	defer file.Close()

	up, err := s.uploads.save(header.Filename, file)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	desc, err := s.prober.Probe(r.Context(), up.Path)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("unreadable media: %w", err))
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		FileID:   up.ID,
		Filename: up.Filename,
		Kind:     string(desc.Kind),
		Duration: desc.Duration,
	})
}

func (s *Server) handleMusicUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("missing file field: %w", err))
		return
	}
	defer file.Close()

	track, err := s.music.Save(header.Filename, file)
	if err != nil {
		if errors.Is(err, music.ErrUnsupportedFormat) {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, track)
}

func (s *Server) handleMusicList(w http.ResponseWriter, _ *http.Request) {
	tracks, err := s.music.List()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if tracks == nil {
		tracks = []music.Track{}
	}
	writeJSON(w, http.StatusOK, musicListResponse{Tracks: tracks})
}

func (s *Server) handleGenerateEdit(w http.ResponseWriter, r *http.Request) {
	var req generateEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if req.Prompt == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("prompt is required"))
		return
	}
	if len(req.FileIDs) == 0 {
		s.writeError(w, http.StatusBadRequest, errors.New("no files provided"))
		return
	}

	paths, err := s.resolveAssetPaths(req.FileIDs)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	var musicPath string
	if req.MusicID != "" {
		musicPath, err = s.music.Resolve(req.MusicID)
		if err != nil {
			s.writeError(w, statusFor(err), err)
			return
		}
	}

	var refPath string
	if req.ReferenceID != "" {
		refPath, err = s.uploads.resolve(req.ReferenceID)
		if err != nil {
			s.writeError(w, statusFor(err), err)
			return
		}
	}

	outPath := filepath.Join(s.outDir, "edit-"+uuid.NewString()+".mp4")
	res, err := s.uc.Run(r.Context(), usecase.Input{
		Intent:        req.Prompt,
		AssetPaths:    paths,
		ReferencePath: refPath,
		AudioTrack:    musicPath,
		OutPath:       outPath,
	})
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, generateEditResponse{
		OutputPath: res.Render.OutputPath,
		EDL:        res.Render.EDL,
	})
}

// resolveAssetPaths maps ids to stored paths.
func (s *Server) resolveAssetPaths(ids []string) ([]string, error) {
	paths := make([]string, 0, len(ids))
	for _, id := range ids {
		p, err := s.uploads.resolve(id)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUploadNotFound), errors.Is(err, music.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, director.ErrNoAssets):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= 500 {
		s.log.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
