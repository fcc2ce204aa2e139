// Package avatar provides the user-profile avatar API: file entries through
// Service and their binary content through Streams.
//
// Reads and uploads expand route templates. Updates and unlinks follow the
// put and unlink links of a previously fetched file entry.
package avatar
