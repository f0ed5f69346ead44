// Package kernel holds the value objects shared by every kitchenpos aggregate:
// UUID identifiers and Money amounts. Both are immutable and reject zero values
// through Validate.
package kernel
