package domain

// Entity is implemented by every persisted catalog type.
type Entity interface {
	EntityID() int64
}
