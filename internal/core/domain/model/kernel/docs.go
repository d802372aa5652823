// Package kernel holds the value objects shared by the station aggregates.
//
// UUID identifies ledger entries. Users and packages use allocator-issued
// integers instead, so they never appear here.
package kernel
