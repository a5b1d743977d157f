// Package nodyn provides directives for tagged-union code generation.
//
// Nodyn generates the full type-safe API around a closed union over a fixed
// set of payload types: the union type itself, upcast constructors, fallible
// downcasts, delegated methods shared by all payloads, introspection helpers,
// variant predicates and accessors, and an optional companion slice wrapper
// with per-variant convenience methods.
//
// To start with Nodyn, declare the union in a file guarded by a build
// constraint:
//
//	//go:build nodyn
//
//	package shapes
//
//	// Value holds one JSON scalar.
//	type Value struct{ nodyn.Union }
//
//	var _ = nodyn.Define[Value](
//		nodyn.Type[int64](),
//		nodyn.TypeNamed[string]("Text"),
//		nodyn.Type[[]byte](),
//	)
//
// Then run the nodyn command. It generates nodyn_gen.go for your package:
//
//	go run github.com/franklaranja/nodyn/cmd/nodyn
//
// The generated file carries a "//go:build !nodyn" constraint, so it replaces
// the declaration file in regular builds. It contains (simplified):
//
//	type Value struct { ... }              // tagged union over the payloads
//	func ValueFromInt64(v int64) Value     // upcast, one per variant
//	func NewValue[T ValuePayload](v T) Value
//	func (v Value) TryIntoText() (string, bool)
//	const ValueCount = 3
//	func ValueTypes() []string
//	func (v Value) TypeName() string
//	func (v Value) IsText() bool
//	func (v *Value) TryAsText() (*string, bool)
//
// Variant names are derived from the payload type expression (int64 becomes
// Int64, *bytes.Buffer becomes BufferRef, []byte becomes ByteSlice). Two
// payloads deriving the same name is a generation-time error; resolve it with
// [TypeNamed]. Nodyn never renames silently.
//
// # Delegation
//
// When every payload type supports a method set, the union can forward calls
// to the active payload. Declare the shared surface as an interface:
//
//	var _ = nodyn.Define[Node](
//		nodyn.Type[Leaf](),
//		nodyn.Type[Branch](),
//		nodyn.Impl[fmt.Stringer](),
//	)
//
// Nodyn emits one method per interface method, dispatching on the variant tag
// with no runtime indirection:
//
//	// generated: (simplified)
//	func (v Node) String() string {
//		switch v.tag {
//		case nodeTagLeaf:
//			return v.leaf.String()
//		default:
//			return v.branch.String()
//		}
//	}
//	var _ fmt.Stringer = Node{}
//
// Every payload must implement the interface through either method set;
// nodyn reports a payload that falls short at the Impl option before any
// code is generated. Use an anonymous interface for ad-hoc methods that do
// not belong to a named interface, and [ImplPtr] when the methods must see
// the payload through a pointer.
//
// Custom method bodies need no directive at all: any declaration other than
// the Define var and the placeholder type in a "//go:build nodyn" file is
// copied verbatim into the generated file, so custom methods on the union are
// written as plain Go methods next to the declaration.
//
// # Slice wrapper
//
// [Vec] requests a companion wrapper around an ordered slice of union values
// with implicit-upcast insertion and per-variant
// Count/Iter/Enumerate/First/Last/Any/All methods:
//
//	var _ = nodyn.Define[Value](
//		nodyn.Type[int64](),
//		nodyn.TypeNamed[string]("Text"),
//		nodyn.Vec("Values"),
//	)
//
//	vs := shapes.NewValues(shapes.NewValue(int64(42)))
//	vs.PushText("hello")
//	vs.CountText() // 1
package nodyn

// Union is the marker embedded in a union placeholder type. The placeholder
// declares the union's name and doc comment; the generator replaces it with
// the real tagged type:
//
//	type Value struct{ nodyn.Union }
type Union struct{}

type (
	// option configures a [Define] directive. All options are produced by the
	// exported directive functions; there is no other way to construct one.
	option interface{ nodynOption() }

	// Feature selects an optional generated method group. See [Features].
	Feature int
)

// Optional method groups. Without a [Features] option all three are enabled.
const (
	// TryInto generates the fallible per-variant downcasts
	// (TryIntoX() (T, bool)).
	TryInto Feature = iota + 1

	// IsAs generates the per-variant predicates (IsX() bool) and reference
	// accessors (TryAsX() (*T, bool)).
	IsAs

	// Introspection generates the variant count constant, the payload type
	// listing, and the TypeName method.
	Introspection
)

// Define declares a tagged union named after the placeholder type U. U must
// be a struct type in the same package embedding [Union] and nothing else.
// The directive must be assigned to the blank identifier at package level:
//
//	var _ = nodyn.Define[Value](
//		nodyn.Type[int64](),
//		nodyn.Type[string](),
//	)
//
// Payload declaration order is significant: it fixes the variant tag order,
// the introspection listing order, and the order of generated per-variant
// methods.
func Define[U any](opts ...option) bool {
	panic("nodyn: not generated")
}

// Type appends a wrapped payload type as the next variant. The variant name
// is derived from the type expression; use [TypeNamed] when the derivation
// collides or reads poorly.
func Type[T any]() option {
	panic("nodyn: not generated")
}

// TypeNamed appends a wrapped payload type with an explicit variant name.
// The name must be a string literal and a valid exported identifier.
func TypeNamed[T any](name string) option {
	panic("nodyn: not generated")
}

// Into marks the variant wrapping T as additionally convertible to the
// payload type U in the consuming downcast: a union holding T also satisfies
// TryIntoX for U's variant through the Go conversion U(v). The conversion
// must be legal Go; if it is not, the compiler rejects the generated file.
func Into[T, U any]() option {
	panic("nodyn: not generated")
}

// Impl declares a capability block: I must be an interface type, and every
// method of I is emitted on the union as a value-receiver method forwarding
// to the active payload. When I is a named interface the union is asserted to
// implement it; an anonymous interface yields loose methods.
func Impl[I any]() option {
	panic("nodyn: not generated")
}

// ImplPtr is [Impl] with pointer-receiver methods, for capability blocks that
// mutate the payload in place. The interface assertion, if any, is made
// against the pointer type.
func ImplPtr[I any]() option {
	panic("nodyn: not generated")
}

// Features limits the optional generated method groups to the given set.
// Upcast constructors are always generated.
func Features(features ...Feature) option {
	panic("nodyn: not generated")
}

// Vec requests the companion slice wrapper. With no argument the wrapper is
// named after the union with a "Vec" suffix; a single string literal argument
// overrides the name and must be a valid exported identifier. At most one Vec
// per union.
func Vec(name ...string) option {
	panic("nodyn: not generated")
}
