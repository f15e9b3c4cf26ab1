// Package entitlement resolves which features and modules an organization
// may use, based on its business model (organization type), subscription
// tier, and explicit capability flags.
//
// Resolution is a pure, total function over three static tables loaded at
// compile time:
//
//   - organization type → candidate modules (what that business model
//     could ever use)
//   - tier → baseline features and modules
//   - capability flag → incremental feature/module additions
//
// The result is the intersection of the candidate and tier module sets,
// unioned with the flag-derived additions. Unknown tiers resolve as
// TierFree and unknown organization types yield a well-formed FeatureSet
// limited to flag additions; resolution never fails. Two calls with equal
// inputs return set-equal results.
package entitlement
