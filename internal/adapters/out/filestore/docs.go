// Package filestore keeps the station records in memory and persists them as
// versioned CSV documents in a gocloud blob bucket.
//
// Layout of the bucket:
//
//	users.csv     users, newest registration first
//	packages.csv  packages, newest intake first
//	finances.csv  ledger entries, newest first
//	max_ids.csv   next user and package IDs
//
// A missing document loads as an empty collection. Production opens the
// bucket with fileblob on the data directory, whose writes go through a
// temporary file and a rename; tests use memblob.
//
// Mutations go through a UnitOfWork, which holds the store lock from Begin to
// Commit or Rollback and stages changes on cloned tables.
package filestore
