// Package user models station customers and their membership tier.
//
// The package includes:
//   - User: the aggregate holding identity, contact data and purchase history
//   - Tier: the membership level (New, Silver, Gold)
//   - NextTier: the promotion/demotion rules applied by RecomputeMembership
//
// Key business rules:
//   - total spend never decreases
//   - last purchase is set at registration and on every pickup
//   - promotion needs recent activity, inactivity demotes one level per pass
package user
