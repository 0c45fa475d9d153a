package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/deckforge/deckforge/internal/adapters/secondary/pptx"
	"github.com/deckforge/deckforge/internal/domain/ports"
	"github.com/deckforge/deckforge/internal/domain/services"
)

// maxUploadBytes bounds the whole multipart request: deck source plus
// one cover image.
const maxUploadBytes = 32 << 20

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string    `json:"error"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// handleExport accepts a multipart deck upload and responds with the
// synthesized presentation package. Fields: "deck" (required markdown
// file), "image" (optional PNG), "name" and "date" (optional cover
// overrides).
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid multipart request", err)
		return
	}

	deckFile, deckHeader, err := r.FormFile("deck")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "missing deck file", err)
		return
	}
	defer func() { _ = deckFile.Close() }()

	markdown, err := io.ReadAll(deckFile)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "reading deck file", err)
		return
	}

	var imageBytes []byte
	if imageFile, _, err := r.FormFile("image"); err == nil {
		defer func() { _ = imageFile.Close() }()
		imageBytes, err = io.ReadAll(imageFile)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "reading image file", err)
			return
		}
	}

	archive, err := s.exporter.Export(r.Context(), ports.ExportRequest{
		Markdown:   markdown,
		ImageBytes: imageBytes,
		Name:       r.FormValue("name"),
		Date:       r.FormValue("date"),
	})
	if err != nil {
		var buildErr *pptx.BuildError
		switch {
		case errors.Is(err, services.ErrInvalidDeck):
			s.writeError(w, http.StatusUnprocessableEntity, "invalid deck", err)
		case errors.As(err, &buildErr) && buildErr.Type != pptx.ErrorTypeArchive:
			s.writeError(w, http.StatusUnprocessableEntity, "invalid deck", err)
		default:
			s.writeError(w, http.StatusInternalServerError, "export failed", err)
		}
		return
	}

	filename := exportFilename(deckHeader.Filename)

	w.Header().Set("Content-Type", pptx.MIMEType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(archive); err != nil {
		s.logger.Error("writing export response: %v", err)
	}
}

// handleHealth reports server liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Time: time.Now().UTC()})
}

// exportFilename derives the download name from the uploaded deck file
func exportFilename(uploadName string) string {
	base := filepath.Base(uploadName)
	if base == "." || base == "/" || base == "" {
		return "deck.pptx"
	}

	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	// Quotes would break the disposition header.
	base = strings.ReplaceAll(base, `"`, "")
	if base == "" {
		return "deck.pptx"
	}
	return base + ".pptx"
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string, err error) {
	s.logger.Warn("%s: %v", message, err)

	s.writeJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Time:    time.Now().UTC(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encoding JSON response: %v", err)
	}
}
