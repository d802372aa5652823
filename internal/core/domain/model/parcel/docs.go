// Package parcel models packages held at the station.
//
// The package includes:
//   - Package: the aggregate tracking a parcel from intake to release
//   - Status: the one-way state machine InStock -> PickedUp | Exception
//   - Attributes: the physical and shipping properties recorded at intake
//
// Key business rules:
//   - the storage fee is frozen once, at intake
//   - only InStock packages can be picked up or marked as an exception
//   - pickup requires an exact, case-sensitive pickup code match
package parcel
