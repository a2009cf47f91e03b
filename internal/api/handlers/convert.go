package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nordgrid/sweref/internal/models"
)

// Converter is the conversion surface the handler needs; satisfied by
// converter.Converter.
type Converter interface {
	Convert(geo models.Geographic) (models.Projected, error)
	Mode() int
}

// ConvertHandler serves single-point conversions over HTTP.
type ConvertHandler struct {
	Converter Converter
	Log       *slog.Logger
}

// ConvertResponse is the JSON body for a successful conversion.
type ConvertResponse struct {
	North float64 `json:"north"` // Northing in metres (SWEREF99 TM)
	East  float64 `json:"east"`  // Easting in metres (SWEREF99 TM)
	Mode  int     `json:"mode"`  // Active transformation path: 0 static, 1 time-dependent
}

// Convert handles GET /convert?lat=..&lon=..[&epoch=..]. Malformed
// parameters are rejected with 400; a failed conversion (engine
// initialization failure or non-finite output) is reported as 502 so the
// caller never has to interpret a zero sentinel.
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, h.Log, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	query := r.URL.Query()

	lat, err := strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		writeError(w, r, h.Log, http.StatusBadRequest, "invalid or missing lat parameter")
		return
	}
	lon, err := strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		writeError(w, r, h.Log, http.StatusBadRequest, "invalid or missing lon parameter")
		return
	}

	var epoch float64
	if raw := query.Get("epoch"); raw != "" {
		epoch, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, r, h.Log, http.StatusBadRequest, "invalid epoch parameter")
			return
		}
	}

	projected, err := h.Converter.Convert(models.Geographic{Latitude: lat, Longitude: lon, Epoch: epoch})
	if err != nil {
		h.Log.Error("Conversion failed", "lat", lat, "lon", lon, "error", err)
		writeError(w, r, h.Log, http.StatusBadGateway, "conversion failed")
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, ConvertResponse{
		North: projected.North,
		East:  projected.East,
		Mode:  h.Converter.Mode(),
	})
}
