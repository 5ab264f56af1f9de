// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the ordering system. It implements business
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - PricingService: A domain service computing order totals and the VIP discount
//
// Domain services coordinate between aggregates and value objects, following
// Domain-Driven Design principles.
package services
