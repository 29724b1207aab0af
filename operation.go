package incremental

// An Operation transforms a derived node's value from the resolved state of
// its dependencies. The input type R is the dependencies' [Input] form (a
// [DepRef] or a DepRefN bundle) and the target type T is the node's value,
// mutated in place.
//
// The name labels edges in graph visualisations; by convention it is the
// capitalised verb of the transform ("Sum", "Multiply").
type Operation[R, T any] struct {
	name   string
	update func(target T, input R) error
}

// NewOperation returns a named operation around the given update function.
// Returning a non-nil error from update — conventionally via [Exit] — aborts
// the enclosing resolve and surfaces to the caller:
//
//	var sum = incremental.NewOperation("Sum",
//		func(target *Number, input incremental.DepRef2[*Number, *Number]) error {
//			target.Value = input.D0.Value().Value + input.D1.Value().Value
//			return nil
//		})
func NewOperation[R, T any](name string, update func(target T, input R) error) Operation[R, T] {
	return Operation[R, T]{name: name, update: update}
}

// Name returns the operation's display name.
func (o Operation[R, T]) Name() string {
	return o.name
}
