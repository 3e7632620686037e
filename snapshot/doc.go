// Package snapshot persists index contents as self-describing blobs.
//
// A snapshot stores the ordered record sequence, not the backing data
// structures: any backend rebuilds from it, and the file stays valid across
// backend-internal layout changes. The fixed header records the codec name,
// compression scheme, and backend kind; a CRC32 over the compressed payload
// trails the file so corruption is detected before decoding.
package snapshot
