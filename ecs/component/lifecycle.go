package component

// Lifecycle carries the pending-deletion flag. Pending entities are ignored by
// collision resolution and destroyed by the cleanup pass.
type Lifecycle struct {
	PendingDeletion bool
}

var LifecycleComponent = NewComponent[Lifecycle]()
