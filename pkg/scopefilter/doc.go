// Package scopefilter is the hierarchical data-filtering engine of the
// authorization core. Given a request's UserScope it narrows what a data
// operation may touch, in four forms:
//
//   - ScopedParams / ApplyToURL: outbound request parameters for downstream
//     data services.
//   - FilterCollection: in-memory collection filtering.
//   - ApplyToConstraints / RenderWhere: equality constraints for the query
//     layer, keyed through a caller-supplied FieldMap.
//   - Validate / CanAccess: point-wise access decisions for a single entity.
//
// Two cross-cutting rules apply everywhere: MASTER_MANAGER bypasses all
// narrowing, and a company-id mismatch between scope and target rejects
// regardless of role.
//
// # Asymmetric defaults
//
// When an identifying field is absent, the engine's defaults differ by role
// and by operation. FilterCollection denies a salesperson any item with no
// matching identifying field but allows managers items not scoped at their
// level; Validate allows a salesperson any target without a userId. These
// asymmetries reproduce observed production behavior and are covered by
// tests; do not unify them without a product decision.
//
// Every operation is a pure function with no error path: missing optional
// data always selects a defined default rather than failing.
package scopefilter
