// Package packageresolver owns the limits applied when resolving types
// from on-chain packages.
package packageresolver

import "fmt"

// Limits bound the work the package resolver will do for a single
// request, so adversarial type queries cannot pin the service.
type Limits struct {
	// MaxTypeArgumentDepth bounds the nesting of type arguments.
	MaxTypeArgumentDepth int

	// MaxTypeArgumentWidth bounds the number of type arguments at any
	// one level.
	MaxTypeArgumentWidth int

	// MaxTypeNodes bounds the total size of one type layout.
	MaxTypeNodes int

	// MaxMoveValueDepth bounds the nesting of values constructed against
	// a layout.
	MaxMoveValueDepth int
}

// Validate returns an error if the limits are unusable.
func (l Limits) Validate() error {
	if l.MaxTypeArgumentDepth <= 0 {
		return fmt.Errorf("package_resolver.max_type_argument_depth must be positive")
	}
	if l.MaxTypeArgumentWidth <= 0 {
		return fmt.Errorf("package_resolver.max_type_argument_width must be positive")
	}
	if l.MaxTypeNodes <= 0 {
		return fmt.Errorf("package_resolver.max_type_nodes must be positive")
	}
	if l.MaxMoveValueDepth <= 0 {
		return fmt.Errorf("package_resolver.max_move_value_depth must be positive")
	}
	return nil
}
