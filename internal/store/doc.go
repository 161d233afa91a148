// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of specific database technologies or persistence details.
//
// It also defines ConnectionState, the process-wide view of the link to the
// backing store. Only the storage connector writes it; everything else reads
// it through ConnectionStateReader.
package store
