package pathtree

import "fmt"

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind identifies the type held by a Scalar.
type Kind int

const (
	KindString Kind = iota // string
	KindBool               // bool
	KindNumber             // number

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// KindNames returns the name of every kind in declaration order.
func KindNames() []string {
	names := make([]string, 0, KindTotal)
	for k := range Kind(KindTotal) {
		names = append(names, k.String())
	}

	return names
}

// ParseKind returns the Kind with the given name ("string", "bool", "number").
func ParseKind(name string) (Kind, error) {
	for k := range Kind(KindTotal) {
		if k.String() == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown kind %q", name)
}
