// Package langtab provides an embedded year→language creation index for Go.
//
// Langtab answers two questions over a table of (year, language) records:
// when a programming language first appeared, and how many languages appeared
// in a given year. The same record set can be held in three interchangeable
// backing representations that trade memory layout for query cost:
//
//   - flatscan: the raw record sequence, both queries scan it
//   - columnar: parallel year/language columns, queries scan one column
//   - grouped: precomputed year→languages mapping with per-year bitmaps
//
// All backends answer both queries identically over the same input, so
// callers can switch representations without behavior changes.
//
// # Quick Start
//
//	ctx := context.Background()
//
//	lt, _ := langtab.New(index.KindGrouped)
//	_ = lt.Insert(ctx, model.Record{Year: 2012, Language: "Julia"})
//
//	year, err := lt.YearCreated(ctx, "Julia") // 2012
//	if langtab.IsNotFound(err) {
//	    // language not in the table
//	}
//	n := lt.CountCreatedInYear(ctx, 2012)
//
// Build from an existing table:
//
//	records, _ := dataset.ReadFile("languages.csv")
//	lt, _ := langtab.FromRecords(index.KindFlatScan, records)
//
// # Persistence
//
// Indexes snapshot to any BlobStore (local disk, in-memory, S3, MinIO):
//
//	store := blobstore.NewLocalStore("./data")
//	_ = lt.SaveSnapshot(ctx, store, "languages.ltb")
//	lt2, _ := langtab.LoadSnapshot(ctx, store, "languages.ltb")
//
// Snapshots are self-describing: they record the backend kind, codec, and
// compression, and verify a payload checksum on load.
package langtab
