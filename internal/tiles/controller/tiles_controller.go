package controller

import (
	"cybertaxi/internal/service/logger"
	"cybertaxi/internal/service/middleware"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// TilesHandler forwards tile requests to the external renderer and serves
// font glyphs from the local filesystem. No retry, no caching.
type TilesHandler struct {
	upstream *url.URL
	fontsDir string
	client   *http.Client
}

func NewTilesHandler(upstreamURL, fontsDir string) (*TilesHandler, error) {
	parsed, err := url.Parse(upstreamURL)
	if err != nil {
		return nil, fmt.Errorf("invalid tile server url: %w", err)
	}
	return &TilesHandler{
		upstream: parsed,
		fontsDir: fontsDir,
		client:   &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (h *TilesHandler) GetTile(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	vars := mux.Vars(r)

	// Rewrite /tiles/{style}/{z}/{x}/{y}.{format} into the renderer's
	// /styles/{style}/{z}/{x}/{y}.{format} shape.
	target := *h.upstream
	target.Path = fmt.Sprintf("/styles/%s/%s/%s/%s.%s",
		vars["style"], vars["z"], vars["x"], vars["y"], vars["format"])

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, target.String(), nil)
	if err != nil {
		h.upstreamError(w, err, requestID)
		return
	}

	resp, err := h.client.Do(req)
	if err != nil {
		h.upstreamError(w, err, requestID)
		return
	}
	defer resp.Body.Close()

	for _, header := range []string{"Content-Type", "Content-Length", "Cache-Control"} {
		if v := resp.Header.Get(header); v != "" {
			w.Header().Set(header, v)
		}
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		logger.AccessLogger.Error("Failed to relay tile body",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}
}

func (h *TilesHandler) GetFont(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	vars := mux.Vars(r)

	name := filepath.Join(vars["fontstack"], vars["range"]+".pbf")
	full := filepath.Join(h.fontsDir, name)
	if !strings.HasPrefix(filepath.Clean(full), filepath.Clean(h.fontsDir)) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "Error", "message": "Invalid font path"})
		return
	}

	logger.AccessLogger.Info("Serving font",
		zap.String("request_id", requestID),
		zap.String("font", name),
	)
	w.Header().Set("Content-Type", "application/x-protobuf")
	http.ServeFile(w, r, full)
}

func (h *TilesHandler) upstreamError(w http.ResponseWriter, err error, requestID string) {
	logger.AccessLogger.Error("Tile server unreachable",
		zap.String("request_id", requestID),
		zap.Error(err),
	)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadGateway)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "Error",
		"message": "Tile server unavailable",
	})
}
