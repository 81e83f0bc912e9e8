package box

// Visit invokes f on the contained value and returns its result. If the
// box is empty, f is not invoked and ok is false.
func Visit[T, R any](b *Box[T], f func(T) R) (r R, ok bool) {
	if !b.Present() {
		return
	}
	return f(*b.Value()), true
}
