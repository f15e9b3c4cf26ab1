// Package policy composes the engine's decision functions into ordered
// per-route check chains.
//
// Instead of framework annotations, each route receives an explicit list
// of Check functions run before the handler; the first denial stops the
// chain. Checks read the acting principal and resolved tenant context
// from the request context, so the chain declaration stays free of
// request plumbing:
//
//	protected := policy.Middleware(
//	    guard.Permission("orders", "create"),
//	    guard.Feature(entitlement.FeatureOrderManagement),
//	    guard.WithinLimit(plan.ResourceOrders),
//	)(createOrderHandler)
//
// Near-limit usage warnings collected during the chain surface as
// response metadata without blocking the request.
package policy
