package http

import (
	"archive/zip"
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckforge/deckforge/internal/adapters/secondary/parser"
	"github.com/deckforge/deckforge/internal/adapters/secondary/pptx"
	"github.com/deckforge/deckforge/internal/domain/entities"
	"github.com/deckforge/deckforge/internal/domain/services"
)

const testDeckSource = `---
title: Q4
name: Jane
date: 1 Jan
---

# Q4 Review

---

# Agenda

- A
- B
`

func newTestServer(t *testing.T) *Server {
	t.Helper()

	service := services.NewDeckService(parser.NewDeckParser(), pptx.NewBuilder(), entities.CoverDefaults{})
	config := &entities.ServerConfig{
		Host:            "localhost",
		Port:            0,
		ReadTimeout:     5,
		WriteTimeout:    5,
		ShutdownTimeout: 1,
	}

	return NewServer(service, config, entities.LogLevelError)
}

// multipartBody builds a multipart request body with a deck file and
// optional extras
func multipartBody(t *testing.T, deck string, image []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if deck != "" {
		part, err := writer.CreateFormFile("deck", "quarterly.md")
		require.NoError(t, err)
		_, err = part.Write([]byte(deck))
		require.NoError(t, err)
	}

	if image != nil {
		part, err := writer.CreateFormFile("image", "cover.png")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestHandleExport_Success(t *testing.T) {
	server := newTestServer(t)

	body, contentType := multipartBody(t, testDeckSource, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/export", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	server.server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, pptx.MIMEType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="quarterly.pptx"`, rec.Header().Get("Content-Disposition"))

	archive := rec.Body.Bytes()
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, file := range reader.File {
		names[file.Name] = true
	}
	assert.True(t, names["ppt/slides/slide1.xml"])
	assert.True(t, names["ppt/slides/slide2.xml"])
}

func TestHandleExport_WithImageAndOverrides(t *testing.T) {
	server := newTestServer(t)

	image := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}, []byte("pixels")...)
	body, contentType := multipartBody(t, testDeckSource, image, map[string]string{
		"name": "Override",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/export", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	server.server.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	archive := rec.Body.Bytes()
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)

	for _, file := range reader.File {
		if file.Name == "ppt/slides/slide1.xml" {
			rc, err := file.Open()
			require.NoError(t, err)
			content, err := io.ReadAll(rc)
			require.NoError(t, err)
			require.NoError(t, rc.Close())
			assert.Contains(t, string(content), "Name : Override")
		}
	}
}

func TestHandleExport_MissingDeckFile(t *testing.T) {
	server := newTestServer(t)

	body, contentType := multipartBody(t, "", nil, map[string]string{"name": "Jane"})
	req := httptest.NewRequest(http.MethodPost, "/api/export", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	server.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing deck file")
}

func TestHandleExport_InvalidDeck(t *testing.T) {
	server := newTestServer(t)

	// A single slide cannot anchor a deck: no content slides.
	body, contentType := multipartBody(t, "# Lonely Cover\n", nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/export", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	server.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleExport_NonPNGImage(t *testing.T) {
	server := newTestServer(t)

	body, contentType := multipartBody(t, testDeckSource, []byte("GIF89a"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/export", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	server.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	server.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestExportFilename(t *testing.T) {
	tests := []struct {
		name   string
		upload string
		want   string
	}{
		{name: "markdown extension replaced", upload: "quarterly.md", want: "quarterly.pptx"},
		{name: "no extension", upload: "deck", want: "deck.pptx"},
		{name: "empty name", upload: "", want: "deck.pptx"},
		{name: "quotes stripped", upload: `"tricky".md`, want: "tricky.pptx"},
		{name: "path components dropped", upload: "../../etc/slides.md", want: "slides.pptx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exportFilename(tt.upload))
		})
	}
}
