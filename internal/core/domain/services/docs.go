// Package services holds domain logic that spans more than one aggregate:
// the menu price-consistency rule and the cascade that applies it after a
// product price change.
package services
