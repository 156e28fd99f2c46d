package handlers

import (
	"Bulletin/internal/core/images"
	"Bulletin/internal/core/validation"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxMultipartMemory bounds form parsing; file parts beyond it spill to disk
const MaxMultipartMemory = 8 << 20

// maxRequestBytes caps a multipart body at the image limit plus room for text fields
const maxRequestBytes = validation.MaxImageBytes + 1<<20

// ParseMultipart parses a multipart/form-data body with the upload size cap applied
func ParseMultipart(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := r.ParseMultipartForm(MaxMultipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return validation.New("image", "file must be 5MB or smaller")
		}
		return validation.New("body", "invalid multipart form")
	}
	return nil
}

// FormImage reads an optional image part from a parsed multipart form.
// A missing part returns nil.
func FormImage(r *http.Request, field string) (*images.Upload, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, validation.New(field, "invalid file upload")
	}
	defer func() {
		_ = file.Close()
	}()

	if header.Size > validation.MaxImageBytes {
		return nil, validation.New(field, "file must be 5MB or smaller")
	}

	data, err := io.ReadAll(io.LimitReader(file, validation.MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	return &images.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// DecodeJSON decodes a JSON body capped at maxBytes into v
func DecodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return validation.New("body", "invalid request body")
	}
	return nil
}
