package component

// Owner links a world object to the object that owns it, e.g. a body part to
// its actor.
type Owner struct {
	Parent uint64
}

var OwnerComponent = NewComponent[Owner]()
