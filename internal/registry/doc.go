// Package registry provides the keyed stores that own the parsed content
// records.
//
// Each Store holds one kind of record (hulls, parts) by unique name. The
// parser produces a store's collection asynchronously during startup, so a
// store is configured with a pending handle rather than a finished
// collection; the first query blocks until the parse completes and installs
// the result atomically. From then on the collection is immutable and every
// query, including the aggregate checksum, reads it without locking.
//
// Configuring a store before first use is the application's responsibility.
// Querying a store that never received content is a programming error and
// panics rather than returning an error, preventing a silently empty content
// set from masquerading as a valid one.
package registry
