// Package india registers the Indian state census loader.
// Import it for side effects to make census.India loadable.
package india

import "github.com/JonMunkholm/census/internal/census"

// Conventional file names of the published datasets.
const (
	StateCensusFile = "IndiaStateCensusData.csv"
	StateCodeFile   = "IndiaStateCode.csv"
)

func init() {
	census.Register(census.India, census.CSVLoader{})
}
