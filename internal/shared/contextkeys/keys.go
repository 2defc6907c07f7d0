package contextkeys

// contextKey is an unexported type to prevent collisions with context keys defined in
// other packages.
type contextKey string

// String makes contextKey satisfy the Stringer interface to assist with debugging.
func (c contextKey) String() string {
	return "fixturehub context key " + string(c)
}

// RequestIDKey is the key for the request ID in context.Context
const RequestIDKey = contextKey("requestID")

// DatabaseKey is the key for the target database name in context.Context
const DatabaseKey = contextKey("database")

// FixtureKey is the key for the fixture name in context.Context
const FixtureKey = contextKey("fixture")

// CollectionKey is the key for the collection name in context.Context
const CollectionKey = contextKey("collection")

// ComponentKey is the key for the component name in context.Context
const ComponentKey = contextKey("component")

// OperationKey is the key for the operation name in context.Context
const OperationKey = contextKey("operation")
