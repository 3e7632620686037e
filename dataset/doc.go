// Package dataset reads delimited (year, language) tables into records.
//
// The expected shape is two columns with a header row: an integer year
// followed by a language name. Malformed rows (non-integer years, empty
// names, wrong column counts) surface as *model.ErrInvalidRecord carrying
// the 1-based input line, before any record reaches an index.
//
// Tables can be read from any io.Reader, a local file, or a
// blobstore.BlobStore; FetchAll loads sharded tables concurrently while
// preserving shard order in the concatenated result.
package dataset
