package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/census/internal/census"
	_ "github.com/JonMunkholm/census/internal/census/india"
	"github.com/JonMunkholm/census/internal/config"
)

func fixture(name string) string {
	return filepath.Join("..", "census", "testdata", name)
}

func newTestServer(datasets ...census.Dataset) *Server {
	if len(datasets) == 0 {
		datasets = []census.Dataset{
			{Country: census.India, Schema: census.SchemaPopulation, Path: fixture("IndiaStateCensusData.csv")},
			{Country: census.India, Schema: census.SchemaStateCode, Path: fixture("IndiaStateCode.csv")},
		}
	}
	return NewServer(config.ServerConfig{Port: 8080, ShutdownTimeout: time.Second}, datasets)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("Content-Type"))
}

func TestListCountries(t *testing.T) {
	rec := get(t, newTestServer(), "/api/countries")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[CountriesResponse](t, rec)
	assert.Contains(t, resp.Supported, "india")
	assert.NotContains(t, resp.Supported, "russia")
	assert.Equal(t, []string{"india", "russia", "canada"}, resp.Recognized)
}

func TestLoadCensus_Population(t *testing.T) {
	rec := get(t, newTestServer(), "/api/census/india/population")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[CensusResponse](t, rec)
	assert.Equal(t, 29, resp.Count)
	assert.Len(t, resp.Records, 29)
	assert.Equal(t, "india", resp.Country)
	assert.Equal(t, "population", resp.Schema)
	assert.NotEmpty(t, resp.LoadID)

	goa := resp.Records["Goa"]
	require.NotNil(t, goa.Population)
	assert.Equal(t, int64(1458545), goa.Population.Population)
}

func TestLoadCensus_StateCode(t *testing.T) {
	rec := get(t, newTestServer(), "/api/census/India/state_code")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[CensusResponse](t, rec)
	assert.Equal(t, 37, resp.Count)
	require.NotNil(t, resp.Records["GA"].Code)
	assert.Equal(t, "Goa", resp.Records["GA"].Code.RegionName)
}

func TestGetRecord(t *testing.T) {
	s := newTestServer()

	rec := get(t, s, "/api/census/india/state_code/WB")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[RecordResponse](t, rec)
	assert.Equal(t, "WB", resp.Key)
	assert.Equal(t, "West Bengal", resp.Record.Code.RegionName)

	rec = get(t, s, "/api/census/india/state_code/XX")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "API003", decode[ErrorResponse](t, rec).Code)
}

func TestLoadCensus_Errors(t *testing.T) {
	s := newTestServer(
		census.Dataset{Country: census.India, Schema: census.SchemaPopulation, Path: fixture("WrongHeaderIndiaStateCensusData.csv")},
		census.Dataset{Country: census.India, Schema: census.SchemaStateCode, Path: fixture("Missing.csv")},
	)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCode   string
	}{
		{"unknown country", "/api/census/brazil/population", http.StatusNotFound, "CEN005"},
		{"recognized but unsupported", "/api/census/russia/population", http.StatusNotFound, "CEN005"},
		{"unknown schema", "/api/census/india/districts", http.StatusNotFound, "API001"},
		{"incorrect header", "/api/census/india/population", http.StatusUnprocessableEntity, "CEN003"},
		{"missing file", "/api/census/india/state_code", http.StatusServiceUnavailable, "CEN001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, tt.path)
			assert.Equal(t, tt.wantStatus, rec.Code)

			resp := decode[ErrorResponse](t, rec)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestLoadCensus_NoDatasetConfigured(t *testing.T) {
	s := newTestServer(census.Dataset{Country: census.India, Schema: census.SchemaPopulation, Path: fixture("IndiaStateCensusData.csv")})

	rec := get(t, s, "/api/census/india/state_code")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "API002", decode[ErrorResponse](t, rec).Code)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&census.Error{Kind: census.ErrIncorrectDelimiter}, http.StatusUnprocessableEntity},
		{&census.Error{Kind: census.ErrDuplicateKey}, http.StatusUnprocessableEntity},
		{&census.Error{Kind: census.ErrInvalidFileType}, http.StatusUnprocessableEntity},
		{&census.Error{Kind: census.ErrFileNotFound}, http.StatusServiceUnavailable},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), "statusFor(%v)", tt.err)
	}
}
