// Package monitor provides point-in-time answers to "how busy is this
// machine" and "what category of foreground activity is happening", by
// polling OS-level counters and process listings on demand.
//
// A Monitor owns a single handle to the OS process/resource enumeration
// facility through the ResourceProbe abstraction. Every read performs its own
// narrow refresh; there is no caching TTL and no dirty tracking. All access
// is serialized through an internal mutex, so a Monitor is safe for
// concurrent use from multiple goroutines and no two refreshes interleave.
package monitor
