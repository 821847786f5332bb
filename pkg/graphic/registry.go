package graphic

import (
	"iter"
	"slices"

	"github.com/ggekit/gge/pkg/errors"
)

// Registry holds a node's children by unique name and remembers attach
// order so that layer ties resolve deterministically.
type Registry struct {
	owner *Node
	byName map[string]*Node
	order  []*Node
}

func newRegistry(owner *Node) *Registry {
	return &Registry{
		owner:  owner,
		byName: make(map[string]*Node),
	}
}

// Attach adds child under name and fixes the child's parent pointer and
// name in one step. A child can only ever be attached once; detach it
// with [Registry.Remove] before re-attaching.
func (r *Registry) Attach(name string, child *Node) error {
	if child == nil {
		return errors.New(errors.ErrCodeNotAGraphic,
			"cannot attach nil as child %q of node %s", name, r.owner.Path())
	}
	if err := errors.ValidateNodeName(name); err != nil {
		return err
	}
	if _, exists := r.byName[name]; exists {
		return errors.New(errors.ErrCodeDuplicateName,
			"node %s already has a child named %q", r.owner.Path(), name)
	}
	if child.parent != nil {
		return errors.New(errors.ErrCodeAlreadyParented,
			"node %s is already attached; remove it from its parent first", child.Path())
	}
	if child.isAncestorOf(r.owner) {
		return errors.New(errors.ErrCodeInvalidArgument,
			"attaching %q to node %s would create a cycle", name, r.owner.Path())
	}

	child.parent = r.owner
	child.name = name
	r.byName[name] = child
	r.order = append(r.order, child)
	r.owner.image = nil
	return nil
}

// Remove detaches the child under name and returns it. The detached
// node keeps its own subtree and can be re-attached elsewhere.
func (r *Registry) Remove(name string) (*Node, error) {
	child, ok := r.byName[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound,
			"node %s has no child named %q", r.owner.Path(), name)
	}
	delete(r.byName, name)
	r.order = slices.DeleteFunc(r.order, func(n *Node) bool { return n == child })
	child.parent = nil
	child.name = ""
	r.owner.image = nil
	return child, nil
}

// Get looks up a child by name.
func (r *Registry) Get(name string) (*Node, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Len returns the number of attached children.
func (r *Registry) Len() int { return len(r.order) }

// Names returns child names in attach order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	for i, c := range r.order {
		names[i] = c.name
	}
	return names
}

// InLayerOrder yields children sorted by ascending layer, with attach
// order breaking ties. The sequence is computed over a snapshot, so
// mutating the registry mid-iteration does not affect the current pass.
func (r *Registry) InLayerOrder() iter.Seq[*Node] {
	snapshot := slices.Clone(r.order)
	slices.SortStableFunc(snapshot, func(a, b *Node) int {
		return a.layer - b.layer
	})
	return func(yield func(*Node) bool) {
		for _, c := range snapshot {
			if !yield(c) {
				return
			}
		}
	}
}
