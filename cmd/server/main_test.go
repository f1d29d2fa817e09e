package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/census/internal/census"
	"github.com/JonMunkholm/census/internal/config"
)

func testdataDir() string {
	return filepath.Join("..", "..", "internal", "census", "testdata")
}

func TestBuildDatasets_DataDir(t *testing.T) {
	datasets, err := buildDatasets(config.CensusConfig{Country: "india", DataDir: "data"})
	require.NoError(t, err)
	require.Len(t, datasets, 2)

	assert.Equal(t, census.SchemaPopulation, datasets[0].Schema)
	assert.Equal(t, filepath.Join("data", "IndiaStateCensusData.csv"), datasets[0].Path)
	assert.Equal(t, census.PopulationHeader, datasets[0].ExpectedHeader())
	assert.Equal(t, census.SchemaStateCode, datasets[1].Schema)
	assert.Equal(t, filepath.Join("data", "IndiaStateCode.csv"), datasets[1].Path)
}

func TestBuildDatasets_ExplicitPaths(t *testing.T) {
	datasets, err := buildDatasets(config.CensusConfig{
		Country:         "India",
		DataDir:         "data",
		StateCodePath:   "/srv/codes.csv",
		StateCodeHeader: "SrNo,Name,TIN,Code",
	})
	require.NoError(t, err)

	assert.Equal(t, census.India, datasets[1].Country)
	assert.Equal(t, "/srv/codes.csv", datasets[1].Path)
	assert.Equal(t, "SrNo,Name,TIN,Code", datasets[1].ExpectedHeader())
}

func TestBuildDatasets_UnknownCountry(t *testing.T) {
	_, err := buildDatasets(config.CensusConfig{Country: "atlantis", DataDir: "data"})
	assert.ErrorIs(t, err, census.ErrUnsupportedCountry)
}

func TestPreload(t *testing.T) {
	datasets, err := buildDatasets(config.CensusConfig{Country: "india", DataDir: testdataDir()})
	require.NoError(t, err)
	assert.NoError(t, preload(datasets))
}

func TestPreload_FailsOnBadDataset(t *testing.T) {
	datasets, err := buildDatasets(config.CensusConfig{
		Country:        "india",
		DataDir:        testdataDir(),
		PopulationPath: filepath.Join(testdataDir(), "WrongHeaderIndiaStateCensusData.csv"),
	})
	require.NoError(t, err)
	assert.ErrorIs(t, preload(datasets), census.ErrIncorrectHeader)
}

func TestPreload_UnsupportedCountry(t *testing.T) {
	datasets, err := buildDatasets(config.CensusConfig{Country: "canada", DataDir: testdataDir()})
	require.NoError(t, err)
	assert.ErrorIs(t, preload(datasets), census.ErrUnsupportedCountry)
}
