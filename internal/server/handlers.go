package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/alnah/go-brandprint"
	"github.com/alnah/go-brandprint/internal/fileutil"
	"github.com/alnah/go-brandprint/internal/order"
)

// Request errors reported as 400.
var (
	errUnknownAsset = errors.New("unknown asset type")
	errBadBody      = errors.New("invalid request body")
)

// generateRequest is the JSON body of /v1/preview and /v1/render.
type generateRequest struct {
	AssetID    string            `json:"assetId"`
	TemplateID string            `json:"templateId"`
	Fields     map[string]string `json:"fields"`
	Logo       string            `json:"logo"`
	Icon       string            `json:"icon"`
	Tagline    string            `json:"tagline"`
	Page       brandprint.Page   `json:"page"`
	Filename   string            `json:"filename"`
}

func (g generateRequest) toRequest() (brandprint.Request, error) {
	asset, ok := brandprint.LookupAssetType(g.AssetID)
	if !ok {
		return brandprint.Request{}, fmt.Errorf("%w: %q", errUnknownAsset, g.AssetID)
	}
	if err := g.Page.Validate(); err != nil {
		return brandprint.Request{}, err
	}
	req := brandprint.Request{
		Asset:      asset,
		TemplateID: g.TemplateID,
		Fields:     g.Fields,
		Logo:       g.Logo,
		Icon:       g.Icon,
		Tagline:    g.Tagline,
		Dark:       brandprint.ParseTemplateID(g.TemplateID).Theme == brandprint.ThemeDark,
		Page:       g.Page,
	}
	if err := req.ValidateMarks(); err != nil {
		return brandprint.Request{}, err
	}
	return req, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAssets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, brandprint.AssetTypes())
}

func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "assetID")
	asset, ok := brandprint.LookupAssetType(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("%w: %q", errUnknownAsset, id))
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	req, err := body.toRequest()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := s.renderer.Convert(r.Context(), brandprint.Input{Request: req, HTMLOnly: true})
	if err != nil {
		s.fail(w, r, http.StatusBadGateway, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.HTML)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	req, err := body.toRequest()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := s.renderer.Convert(r.Context(), brandprint.Input{Request: req})
	if err != nil {
		s.fail(w, r, http.StatusBadGateway, err)
		return
	}

	name := body.Filename
	if strings.TrimSpace(name) == "" {
		name = body.AssetID + "-" + body.TemplateID
	}
	name = fileutil.SanitizeFilename(name, "asset")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.PDF)
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	if s.orders == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("ordering is not configured"))
		return
	}

	var o order.Order
	if err := decodeJSON(w, r, &o); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	receipt, err := s.orders.Place(r.Context(), o)
	switch {
	case order.IsValidation(err):
		writeError(w, http.StatusBadRequest, err)
		return
	case err != nil:
		s.fail(w, r, http.StatusBadGateway, err)
		return
	}

	s.log.Info().
		Str("order_id", receipt.ID).
		Str("asset", receipt.AssetID).
		Int("quantity", receipt.Quantity).
		Msg("order placed")
	writeJSON(w, http.StatusCreated, receipt)
}

// fail logs err and answers with a generic message; collaborator errors may
// carry provider details that clients should not see.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	writeError(w, status, errors.New(strings.ToLower(http.StatusText(status))))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadBody, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data", errBadBody)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
