package core

// Bucket is an ordered mapping from behavior name to Callable.  An
// actor has one bucket per kind.
//
// Adding a Callable whose name is already present overwrites the
// value in place: the entry keeps its original position, and the
// bucket's length doesn't change.
type Bucket struct {
	names     []string
	callables map[string]*Callable
}

// NewBucket makes an empty bucket.
func NewBucket() *Bucket {
	return &Bucket{
		names:     make([]string, 0, 8),
		callables: make(map[string]*Callable, 8),
	}
}

// Add stores c under c.Name, preserving position on overwrite.
func (b *Bucket) Add(c *Callable) {
	if _, have := b.callables[c.Name]; !have {
		b.names = append(b.names, c.Name)
	}
	b.callables[c.Name] = c
}

// Get returns the named Callable.
func (b *Bucket) Get(name string) (*Callable, bool) {
	if b == nil {
		return nil, false
	}
	c, have := b.callables[name]
	return c, have
}

// Names returns the behavior names in insertion order.  The returned
// slice is a copy.
func (b *Bucket) Names() []string {
	if b == nil {
		return nil
	}
	acc := make([]string, len(b.names))
	copy(acc, b.names)
	return acc
}

// Len returns the number of behaviors in the bucket.
func (b *Bucket) Len() int {
	if b == nil {
		return 0
	}
	return len(b.names)
}

// Do calls f for each Callable in insertion order, stopping at the
// first error, which is returned.
func (b *Bucket) Do(f func(c *Callable) error) error {
	if b == nil {
		return nil
	}
	for _, name := range b.names {
		if err := f(b.callables[name]); err != nil {
			return err
		}
	}
	return nil
}

// AddAll merges another bucket's entries, in the donor's order, using
// the same overwrite-in-place rule as Add.
func (b *Bucket) AddAll(donor *Bucket) {
	donor.Do(func(c *Callable) error {
		b.Add(c)
		return nil
	})
}
