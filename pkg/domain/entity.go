package domain

// Entity is an object with an identity that outlives changes to its other
// fields. Repositories match entities by EntityID alone.
type Entity interface {
	EntityID() ValueObject
	ToJSON() map[string]any
}

// SameIdentity reports whether a and b carry equal identities, regardless of
// any other field.
func SameIdentity(a, b Entity) bool {
	return a.EntityID().Equals(b.EntityID())
}
