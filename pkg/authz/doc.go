// Package authz provides the capability layer of the sales-platform
// authorization core: the role-to-permission registry, pt-BR translations,
// and pure permission-check functions.
//
// # Roles and permissions
//
// The platform has a closed five-level hierarchy of roles (Vendedor up to
// Administrador Master) and a flat set of roughly seventy permission tokens
// grouped by functional domain (users, portfolio, clients, sellers,
// dashboards, RFV segmentation, AI insights, reporting, agenda/funnel, and
// system administration).
//
// Manager permission sets are built by growing the next-narrower role's set,
// so every capability a branch manager holds is also held by a regional
// manager, and so on up the chain. The one deliberate exception is the
// system-administration group, which only MASTER_MANAGER holds.
//
// # Capability vs. data scope
//
// Nothing in this package looks at hierarchy identifiers. Whether a role may
// perform an action at all is decided here; what slice of data the action may
// touch is decided by the scopefilter package. A role either holds a
// capability everywhere inside its eventual data scope, or nowhere.
//
// # Failure behavior
//
// Lookups never return errors. An unknown role has an empty permission set,
// which callers must treat as "deny everything". Guards return structured
// Decision values with translated denial messages rather than raising.
//
// All tables in this package are built at process start and are read-only
// afterwards; they may be shared freely across goroutines.
package authz
