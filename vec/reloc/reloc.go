// Package reloc classifies element types for the vec storage engine: a
// relocatable type may live in resource-acquired raw memory, invisible to the
// garbage collector, and migrate between buffers by plain byte copy.
//
// Types built only from numeric kinds, bools and uintptrs (including arrays
// and structs of them) are relocatable automatically. Anything carrying a Go
// reference (pointer, slice, map, string, channel, interface, function)
// defaults to GC-visible storage instead. Register is the escape hatch for
// reference-bearing types whose referents are provably kept reachable through
// other paths.
package reloc

import (
	"reflect"
	"sync"
)

var classes sync.Map // reflect.Type -> bool

// For reports whether values of type T may be stored in raw, unscanned
// memory and migrated by byte copy. Results are cached per type.
func For[T any]() bool { return Is(reflect.TypeFor[T]()) }

// Is is the reflect.Type form of For.
func Is(t reflect.Type) bool {
	if v, ok := classes.Load(t); ok {
		return v.(bool)
	}
	r := pointerFree(t)
	classes.Store(t, r)
	return r
}

// Register marks T relocatable regardless of its kind structure.
//
// Registering a type that carries Go references asserts two things the
// runtime cannot check: every referent stays reachable through some path
// other than the container for as long as the container holds it, and no
// value of T depends on its own address. Violating either corrupts memory.
// Registration cannot be undone.
func Register[T any]() { classes.Store(reflect.TypeFor[T](), true) }

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// Pointer, slice, map, string, chan, interface, func and
		// unsafe.Pointer all carry references the collector must see.
		return false
	}
}
