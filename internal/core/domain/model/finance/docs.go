// Package finance holds the append-only station ledger entries.
package finance
