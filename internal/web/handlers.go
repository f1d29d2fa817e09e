package web

import (
	"fmt"
	"net/http"

	"github.com/JonMunkholm/census/internal/census"
	"github.com/JonMunkholm/census/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CountriesResponse lists recognized countries and the ones with a loader.
type CountriesResponse struct {
	Supported  []string `json:"supported"`
	Recognized []string `json:"recognized"`
}

// CensusResponse is the result of one load.
type CensusResponse struct {
	LoadID  string            `json:"loadId"`
	Country string            `json:"country"`
	Schema  string            `json:"schema"`
	Count   int               `json:"count"`
	Records census.Collection `json:"records"`
}

// RecordResponse carries a single record from a load.
type RecordResponse struct {
	LoadID string        `json:"loadId"`
	Key    string        `json:"key"`
	Record census.Record `json:"record"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListCountries(w http.ResponseWriter, r *http.Request) {
	resp := CountriesResponse{Supported: []string{}, Recognized: []string{}}
	for _, c := range census.Supported() {
		resp.Supported = append(resp.Supported, c.String())
	}
	for _, c := range census.KnownCountries() {
		resp.Recognized = append(resp.Recognized, c.String())
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLoadCensus(w http.ResponseWriter, r *http.Request) {
	ds, err := s.resolveDataset(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	loadID, records, err := s.load(r, ds)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, CensusResponse{
		LoadID:  loadID,
		Country: ds.Country.String(),
		Schema:  ds.Schema.String(),
		Count:   len(records),
		Records: records,
	})
}

func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	ds, err := s.resolveDataset(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	loadID, records, err := s.load(r, ds)
	if err != nil {
		respondError(w, r, err)
		return
	}

	key := chi.URLParam(r, "key")
	rec, ok := records[key]
	if !ok {
		respondError(w, r, fmt.Errorf("%w: %q", errRecordNotFound, key))
		return
	}

	writeJSON(w, http.StatusOK, RecordResponse{LoadID: loadID, Key: key, Record: rec})
}

// resolveDataset maps the {country} and {schema} URL parameters to a
// configured dataset.
func (s *Server) resolveDataset(r *http.Request) (census.Dataset, error) {
	country, err := census.ParseCountry(chi.URLParam(r, "country"))
	if err != nil {
		return census.Dataset{}, err
	}
	if _, ok := census.Lookup(country); !ok {
		return census.Dataset{}, &census.Error{Kind: census.ErrUnsupportedCountry, Detail: country.String()}
	}

	schema, err := census.ParseSchema(chi.URLParam(r, "schema"))
	if err != nil {
		return census.Dataset{}, fmt.Errorf("%w: %v", errUnknownSchema, err)
	}

	ds, ok := s.datasets[datasetKey{country, schema}]
	if !ok {
		return census.Dataset{}, fmt.Errorf("%w: %s/%s", errNoDataset, country, schema)
	}
	return ds, nil
}

// load reads the dataset fresh for every request so edits to the file are
// picked up without a restart.
func (s *Server) load(r *http.Request, ds census.Dataset) (string, census.Collection, error) {
	loadID := uuid.NewString()
	logger := logging.WithFields(r.Context(),
		"load_id", loadID,
		"country", ds.Country.String(),
		"schema", ds.Schema.String(),
	)

	records, err := ds.Load()
	if err != nil {
		logger.Warn("census load failed", "path", ds.Path, "error", err)
		return loadID, nil, err
	}

	logger.Info("census loaded", "records", len(records))
	return loadID, records, nil
}
