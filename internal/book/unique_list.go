package book

// uniqueList is an ordered collection that rejects an element when it is
// "the same" as an element already present or shares its stable key.
type uniqueList[T any, K comparable] struct {
	items []T
	key   func(T) K
	same  func(a, b T) bool
}

func (l *uniqueList[T, K]) indexOf(k K) int {
	for i, x := range l.items {
		if l.key(x) == k {
			return i
		}
	}
	return -1
}

func (l *uniqueList[T, K]) get(k K) (T, bool) {
	if i := l.indexOf(k); i >= 0 {
		return l.items[i], true
	}
	var zero T
	return zero, false
}

func (l *uniqueList[T, K]) contains(x T) bool {
	for _, existing := range l.items {
		if l.same(existing, x) {
			return true
		}
	}
	return false
}

func (l *uniqueList[T, K]) add(x T, dup error) error {
	if l.contains(x) || l.indexOf(l.key(x)) >= 0 {
		return dup
	}
	l.items = append(l.items, x)
	return nil
}

// replace swaps the element keyed by target for edited, keeping its position.
func (l *uniqueList[T, K]) replace(target K, edited T, notFound, dup error) error {
	i := l.indexOf(target)
	if i < 0 {
		return notFound
	}
	for j, other := range l.items {
		if j == i {
			continue
		}
		if l.same(other, edited) || l.key(other) == l.key(edited) {
			return dup
		}
	}
	l.items[i] = edited
	return nil
}

func (l *uniqueList[T, K]) remove(k K, notFound error) error {
	i := l.indexOf(k)
	if i < 0 {
		return notFound
	}
	l.items = append(l.items[:i:i], l.items[i+1:]...)
	return nil
}

// setAll replaces the contents only if xs is internally duplicate-free.
func (l *uniqueList[T, K]) setAll(xs []T, dup error) error {
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if l.same(xs[i], xs[j]) || l.key(xs[i]) == l.key(xs[j]) {
				return dup
			}
		}
	}
	l.items = append([]T(nil), xs...)
	return nil
}

func (l *uniqueList[T, K]) all() []T {
	return append([]T(nil), l.items...)
}
