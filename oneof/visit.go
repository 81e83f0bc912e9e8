package oneof

// candidate defers the handler call of one alternative behind its
// timestamp, so resolution can compare all slots before touching any
// value.
type candidate[R any] struct {
	ts   uint64
	call func() R
}

// resolve folds over the candidates keeping the greatest timestamp above
// after. Timestamps are unique, so at most one candidate wins and the
// outcome does not depend on traversal order.
func resolve[R any](after uint64, cands ...candidate[R]) (r R, ok bool) {
	best := -1
	for i, c := range cands {
		if c.ts > after {
			after = c.ts
			best = i
		}
	}
	if best < 0 {
		return
	}
	return cands[best].call(), true
}

// Visit1 invokes fa on the slot value if its timestamp exceeds after, and
// returns the handler result. after = 0 means "ever assigned"; if no slot
// qualifies, ok is false and no handler is invoked.
func Visit1[A, R any](o *Of1[A], after uint64, fa func(A) R) (R, bool) {
	return resolve(after,
		candidate[R]{o.a.Timestamp(), func() R { return fa(*o.a.Get()) }},
	)
}

// Visit2 invokes the handler of the most recently assigned alternative
// whose timestamp exceeds after, and returns the handler result. after = 0
// means "ever assigned"; if no slot qualifies, ok is false and no handler
// is invoked.
func Visit2[A, B, R any](o *Of2[A, B], after uint64, fa func(A) R, fb func(B) R) (R, bool) {
	return resolve(after,
		candidate[R]{o.a.Timestamp(), func() R { return fa(*o.a.Get()) }},
		candidate[R]{o.b.Timestamp(), func() R { return fb(*o.b.Get()) }},
	)
}

// Visit3 is Visit2 over three alternatives.
func Visit3[A, B, C, R any](o *Of3[A, B, C], after uint64, fa func(A) R, fb func(B) R, fc func(C) R) (R, bool) {
	return resolve(after,
		candidate[R]{o.a.Timestamp(), func() R { return fa(*o.a.Get()) }},
		candidate[R]{o.b.Timestamp(), func() R { return fb(*o.b.Get()) }},
		candidate[R]{o.c.Timestamp(), func() R { return fc(*o.c.Get()) }},
	)
}

// Visit4 is Visit2 over four alternatives.
func Visit4[A, B, C, D, R any](o *Of4[A, B, C, D], after uint64, fa func(A) R, fb func(B) R, fc func(C) R, fd func(D) R) (R, bool) {
	return resolve(after,
		candidate[R]{o.a.Timestamp(), func() R { return fa(*o.a.Get()) }},
		candidate[R]{o.b.Timestamp(), func() R { return fb(*o.b.Get()) }},
		candidate[R]{o.c.Timestamp(), func() R { return fc(*o.c.Get()) }},
		candidate[R]{o.d.Timestamp(), func() R { return fd(*o.d.Get()) }},
	)
}
