// Package domain contains the core domain entities and types used by the
// FoodTrace backend: accounts, the consumer health profile (Swasth Wallet),
// products with their allergen and nutrition records, the traceability hash
// chain, recalls, reviews and the health issues produced for a consumer.
// These types are free of infrastructure concerns so they can be shared
// across packages.
package domain
