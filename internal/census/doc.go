// Package census loads census CSV files into keyed record collections.
//
// Loading is a fixed pipeline with a distinct failure at every stage:
//
//  1. The file must exist, be a regular file and carry the ".csv" extension.
//  2. Its first line must equal the expected header exactly (no trimming,
//     no BOM removal).
//  3. Every following line must contain the "," delimiter and at least as
//     many fields as the schema needs.
//  4. Each parsed row is inserted under its key; a repeated key fails the load.
//
// # Countries
//
// Callers choose a [Country]. Each country is served by a [Loader] registered
// at init time, the same way tables are wired in other importers:
//
//	func init() {
//	    census.Register(census.India, census.CSVLoader{})
//	}
//
// Countries without a registered loader fail with [ErrUnsupportedCountry].
//
// # Schemas
//
// The record variant is picked by the caller through a [Schema], never by
// looking at the path or the row content:
//
//	records, err := census.Load(census.India, path, census.SchemaPopulation.Header(), census.SchemaPopulation)
//
// # Error Handling
//
// Every failure is a *[Error] whose Kind is one of the Err* sentinels, so
// callers branch with errors.Is. [MapError] turns any error into a
// [UserMessage] with a support code (CEN001-CEN008, ERR000).
package census
