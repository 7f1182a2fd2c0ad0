package handlers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rsaisankalp/ashram-assert/internal/api/dto"
	"github.com/rsaisankalp/ashram-assert/internal/api/middleware"
	"github.com/rsaisankalp/ashram-assert/internal/domain"
	"github.com/rsaisankalp/ashram-assert/internal/inventory"
	"github.com/rsaisankalp/ashram-assert/internal/storage"
)

// maxUploadBytes caps document uploads at 25 MiB.
const maxUploadBytes = 25 << 20

// DocumentHandler proxies uploads into the object store and records the
// resulting key on the asset; downloads stream back out through the same
// proxy so the store stays private.
type DocumentHandler struct {
	service *inventory.Service
	store   storage.ObjectStore
}

func NewDocumentHandler(service *inventory.Service, store storage.ObjectStore) *DocumentHandler {
	return &DocumentHandler{service: service, store: store}
}

// Upload handles multipart POST /assets/{id}/documents. Fields: file,
// name (optional, defaults to the filename), category.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid multipart body"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Missing file field"})
		return
	}
	defer file.Close()

	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := storage.DocumentKey(assetID, header.Filename)
	if err := h.store.Put(r.Context(), key, file, contentType); err != nil {
		writeJSON(w, http.StatusBadGateway, dto.ErrorResponse{Error: "Storing document failed"})
		return
	}

	asset, err := h.service.AttachDocument(r.Context(), inventory.AttachDocumentInput{
		AssetID:    assetID,
		Name:       name,
		URL:        key,
		Category:   domain.DocumentCategory(r.FormValue("category")),
		AttachedBy: middleware.GetUserID(r.Context()),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, asset)
}

// Link records an external document reference without an upload.
func (h *DocumentHandler) Link(w http.ResponseWriter, r *http.Request) {
	var req dto.DocumentLinkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	asset, err := h.service.AttachDocument(r.Context(), inventory.AttachDocumentInput{
		AssetID:    chi.URLParam(r, "id"),
		Name:       req.Name,
		URL:        req.URL,
		Category:   domain.DocumentCategory(req.Category),
		AttachedBy: middleware.GetUserID(r.Context()),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, asset)
}

// Download streams a stored document back to the client.
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	asset, err := h.service.FindAssetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	document := asset.DocumentByID(chi.URLParam(r, "documentID"))
	if document == nil {
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "document not found"})
		return
	}

	body, contentType, err := h.store.Get(r.Context(), document.URL)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, dto.ErrorResponse{Error: "Fetching document failed"})
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+document.Name+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, body)
}
