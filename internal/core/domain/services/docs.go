// Package services holds the domain services of the station: the storage fee
// pricing engine and the generators that hand out pickup and shelf codes.
//
// These rules read several aggregates at once (a user and a package) or keep
// process-wide state, so they live outside the aggregates themselves.
package services
