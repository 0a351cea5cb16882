package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jonathan/resume-docx/internal/pipeline"
	"github.com/jonathan/resume-docx/internal/rendering"
	"github.com/jonathan/resume-docx/internal/types"
)

// DownloadFilename is the attachment name of every converted document.
const DownloadFilename = "output.docx"

// InfoResponse returns the body served on the root path.
func InfoResponse() types.InfoResponse {
	return types.InfoResponse{
		Message: "HTML to Word Converter API",
		Version: APIVersion,
	}
}

// handleHTMLToWord converts the posted HTML and returns the .docx as an attachment.
func (s *Server) handleHTMLToWord(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)

	var req types.ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := validateConvertRequest(&req); err != nil {
		s.errorResponse(w, HTTPStatus(err), "HTML content cannot be empty")
		return
	}

	data, err := s.convert(r, req.HTMLContent)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("[convert] Conversion failed: %v", err)
			s.errorResponse(w, status, "conversion failed: "+err.Error())
			return
		}
		s.errorResponse(w, status, err.Error())
		return
	}

	w.Header().Set("Content-Type", rendering.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+DownloadFilename)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("[convert] Error writing response: %v", err)
	}
}

// convert stages the document in a uniquely named temporary file, reads it
// back and removes it whether or not the conversion succeeded.
func (s *Server) convert(r *http.Request, htmlContent string) ([]byte, error) {
	path := filepath.Join(s.tempDir, "resume-"+uuid.NewString()+".docx")
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("[convert] Failed to remove temp file %s: %v", path, err)
		}
	}()

	result, err := pipeline.ConvertToFile(r.Context(), htmlContent, path, nil)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(result.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("reading converted document: %w", err)
	}

	log.Printf("[convert] Converted %d sections into %d bytes", len(result.Resume.Sections), len(data))
	return data, nil
}

// validateConvertRequest checks the request shape and rejects whitespace-only content.
func validateConvertRequest(req *types.ConvertRequest) error {
	if err := req.Validate(); err != nil {
		return &ErrValidation{Field: "html_content", Message: "is required"}
	}
	if err := pipeline.ValidateInput(req.HTMLContent); err != nil {
		return &ErrValidation{Field: "html_content", Message: "cannot be empty"}
	}
	return nil
}
