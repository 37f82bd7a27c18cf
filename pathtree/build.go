package pathtree

// Config controls a Builder.
type Config struct {
	// Ordering selects the canonical processing order.
	Ordering Ordering
}

// DefaultConfig returns the configuration used by Build.
func DefaultConfig() Config {
	return Config{
		Ordering: OrderingJoined,
	}
}

// Builder assembles entries into a Node. A Builder holds no state between
// calls and is safe for concurrent use.
type Builder struct {
	config Config
}

// New returns a Builder using config.
func New(config Config) *Builder {
	return &Builder{config: config}
}

// Build assembles entries with DefaultConfig.
func Build(entries []Entry) (Node, error) {
	return New(DefaultConfig()).Build(entries)
}

// Build assembles entries into a new Node.
//
// Entries are applied in canonical order; at every slot the entry applied
// last wins. An entry with an empty path aborts the build with an
// *InvalidPathError naming the first such entry in canonical order.
func (b *Builder) Build(entries []Entry) (Node, error) {
	ordered := canonicalize(entries, b.config.Ordering)

	for i := range ordered {
		if len(ordered[i].Path) == 0 {
			return nil, &InvalidPathError{Index: ordered[i].index, Value: ordered[i].Value}
		}
	}

	root := Node{}
	for i := range ordered {
		assign(root, ordered[i].Path, ordered[i].Value)
	}

	return root, nil
}

// assign writes value at path below n, replacing whatever stands in the way.
func assign(n Node, path Path, value Scalar) {
	for _, seg := range path[:len(path)-1] {
		child, ok := n[seg].(Node)
		if !ok {
			child = Node{}
			n[seg] = child
		}

		n = child
	}

	n[path[len(path)-1]] = Leaf{Scalar: value}
}
