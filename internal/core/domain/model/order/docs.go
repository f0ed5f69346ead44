// Package order models the Order aggregate: its fulfillment Type, its Status
// state machine and its LineItems.
//
// Status flow:
//
//	Waiting -> Accepted -> Served -> Completed                        (EatIn, Takeout)
//	Waiting -> Accepted -> Served -> Delivering -> Delivered -> Completed  (Delivery)
//
// Every forbidden transition fails with errs.ErrStateIsInvalid. Type never
// changes after creation. A Delivery order always carries an address and an
// EatIn order always references a table; no other type carries either.
package order
