package builder

import (
	"fmt"
	"reflect"
)

// Fault reports a node the builder cannot dispatch: a nil entry or a variant
// outside the closed families of the scene graph model.
type Fault struct {
	// Family names the variant family, such as "layer" or "shape content".
	Family string
	// Value is the offending value.
	Value any
}

func (f *Fault) Error() string {
	if isNil(f.Value) {
		return fmt.Sprintf("unreachable: nil %s", f.Family)
	}
	return fmt.Sprintf("unreachable: unknown %s variant %T", f.Family, f.Value)
}

// fault aborts the current build. It is recovered by guard.
func fault(family string, v any) {
	panic(&Fault{Family: family, Value: v})
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
