package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mapforge/mapforge/pkg/errors"
	"github.com/mapforge/mapforge/pkg/mapfile"
	"github.com/mapforge/mapforge/pkg/pipeline"
)

// maxUploadBytes bounds the total multipart form size.
const maxUploadBytes = 32 << 20

var formatContentTypes = map[string]string{
	pipeline.FormatSVG: "image/svg+xml",
	pipeline.FormatPNG: "image/png",
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders uploaded map files. Files are read from the "files"
// multipart field in upload order, which is the draw order. Query
// parameters: format (svg or png, default png) and scale.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid multipart form"))
		return
	}

	uploads := r.MultipartForm.File["files"]
	if len(uploads) == 0 {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "no files uploaded"))
		return
	}

	loader := mapfile.NewLoader(s.logger)
	var items mapfile.MapItems
	for _, header := range uploads {
		f, err := header.Open()
		if err != nil {
			s.writeError(w, r, errors.Wrap(errors.ErrCodeIO, err, "reading upload %s", header.Filename))
			return
		}
		fileItems, err := loader.LoadReader(f)
		f.Close()
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		items = append(items, fileItems...)
	}

	opts, err := renderOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.Render(r.Context(), items, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := opts.Formats[0]
	w.Header().Set("Content-Type", formatContentTypes[format])
	w.Header().Set("X-Doc-Hash", result.DocHash)
	_, _ = w.Write(result.Artifacts[format])
}

// renderOptions extracts pipeline options from the request query.
func renderOptions(r *http.Request) (pipeline.Options, error) {
	opts := pipeline.Options{Formats: []string{pipeline.FormatPNG}}

	if format := r.URL.Query().Get("format"); format != "" {
		if !pipeline.ValidFormats[format] {
			return opts, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
		}
		opts.Formats = []string{format}
	}
	if scale := r.URL.Query().Get("scale"); scale != "" {
		v, err := strconv.ParseFloat(scale, 64)
		if err != nil || v <= 0 {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid scale %q", scale)
		}
		opts.Scale = v
	}
	return opts, nil
}

// writeError maps structured error codes onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidLine:
		status = http.StatusBadRequest
	case errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}

	s.logger.Error("request failed",
		"id", requestIDFrom(r.Context()),
		"status", status,
		"err", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"code":  string(errors.GetCode(err)),
		"error": errors.UserMessage(err),
	})
}
