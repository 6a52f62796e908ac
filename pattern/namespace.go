package pattern

// Namespace is an ordered, module-like collection of members.
//
// A Namespace may hold anything; when an actor learns a Namespace, it
// keeps the tagged Callables (in this order) and silently skips the
// rest.  Implements core.Namespace.
type Namespace struct {
	name    string
	members []interface{}
}

// NewNamespace makes a namespace with the given members.
func NewNamespace(name string, members ...interface{}) *Namespace {
	return &Namespace{
		name:    name,
		members: members,
	}
}

// Name returns the namespace's name.
func (n *Namespace) Name() string {
	return n.name
}

// Add appends members, preserving order.
func (n *Namespace) Add(members ...interface{}) *Namespace {
	n.members = append(n.members, members...)
	return n
}

// Members returns the members in their natural enumeration order.
// The returned slice is a copy.
func (n *Namespace) Members() []interface{} {
	acc := make([]interface{}, len(n.members))
	copy(acc, n.members)
	return acc
}
