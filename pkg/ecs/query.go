package ecs

import "iter"

// View enumerates the entities matched by a query together with access to
// their components. It is random access so iteration can be partitioned.
// A View is valid until the next structural change of the World.
type View[R any] interface {
	Len() int
	At(i int) (Entity, R)
}

// Query builds a View over the component tuple R.
type Query[R any] func(w *World) (View[R], error)

// Iter adapts a View to a range-over-func iterator.
func Iter[R any](v View[R]) iter.Seq2[Entity, R] {
	return func(yield func(Entity, R) bool) {
		n := v.Len()
		for i := 0; i < n; i++ {
			e, row := v.At(i)
			if !yield(e, row) {
				return
			}
		}
	}
}

type view[R any] struct {
	entities []Entity
	fetch    func(Entity) R
}

func (v *view[R]) Len() int {
	return len(v.entities)
}

func (v *view[R]) At(i int) (Entity, R) {
	e := v.entities[i]
	return e, v.fetch(e)
}

// match intersects the dense sets of stores, driving from the smallest one.
func match(stores ...TypedStore) []Entity {
	driver := 0
	for i, s := range stores {
		if s.Len() < stores[driver].Len() {
			driver = i
		}
	}

	candidates := stores[driver].GetEntities()
	result := make([]Entity, 0, len(candidates))

outer:
	for _, e := range candidates {
		for i, s := range stores {
			if i != driver && !s.HasEntity(e) {
				continue outer
			}
		}
		result = append(result, e)
	}
	return result
}

// ==================================================================
// Rows
// ==================================================================

type Row1[A any] struct {
	A *A
}

type Row2[A, B any] struct {
	A *A
	B *B
}

type Row3[A, B, C any] struct {
	A *A
	B *B
	C *C
}

// Query1 matches every entity holding an A.
func Query1[A any](w *World) (View[Row1[A]], error) {
	s1, err := getStoreFromWorld[A](w)
	if err != nil {
		return nil, err
	}

	return &view[Row1[A]]{
		entities: s1.GetEntities(),
		fetch: func(e Entity) Row1[A] {
			return Row1[A]{A: s1.Get(e)}
		},
	}, nil
}

// Query2 matches every entity holding both an A and a B.
func Query2[A, B any](w *World) (View[Row2[A, B]], error) {
	s1, err := getStoreFromWorld[A](w)
	if err != nil {
		return nil, err
	}
	s2, err := getStoreFromWorld[B](w)
	if err != nil {
		return nil, err
	}

	return &view[Row2[A, B]]{
		entities: match(s1, s2),
		fetch: func(e Entity) Row2[A, B] {
			return Row2[A, B]{A: s1.Get(e), B: s2.Get(e)}
		},
	}, nil
}

// Query3 matches every entity holding an A, a B and a C.
func Query3[A, B, C any](w *World) (View[Row3[A, B, C]], error) {
	s1, err := getStoreFromWorld[A](w)
	if err != nil {
		return nil, err
	}
	s2, err := getStoreFromWorld[B](w)
	if err != nil {
		return nil, err
	}
	s3, err := getStoreFromWorld[C](w)
	if err != nil {
		return nil, err
	}

	return &view[Row3[A, B, C]]{
		entities: match(s1, s2, s3),
		fetch: func(e Entity) Row3[A, B, C] {
			return Row3[A, B, C]{A: s1.Get(e), B: s2.Get(e), C: s3.Get(e)}
		},
	}, nil
}
