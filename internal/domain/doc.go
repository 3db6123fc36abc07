// Package domain defines the core data models and contracts shared across travelbook.
// It contains plain types (contacts, trips, field values, errors) and interfaces only.
package domain
