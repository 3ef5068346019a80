package xl

// Option tracks whether a formatting field was explicitly set.
// The zero value is unset. Option is comparable, so structs built from
// Options copy by value and can be used as map keys.
type Option[T comparable] struct {
	v   T
	set bool
}

func None[T comparable]() Option[T] {
	return Option[T]{}
}

func Some[T comparable](v T) Option[T] {
	return Option[T]{v: v, set: true}
}

func (o Option[T]) Has() bool {
	return o.set
}

func (o Option[T]) Value() T {
	var zero T
	return o.ValueOrDefault(zero)
}

func (o Option[T]) ValueOrDefault(v T) T {
	if o.set {
		return o.v
	}
	return v
}

// overlay returns o when it is set, otherwise base.
func overlay[T comparable](base, o Option[T]) Option[T] {
	if o.set {
		return o
	}
	return base
}
