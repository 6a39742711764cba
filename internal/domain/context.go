package domain

type ContextKey string

// ClaimsContextKey carries the authenticated admin claims through the
// request context.
const ClaimsContextKey ContextKey = "claims"
