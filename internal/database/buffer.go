package database

// Buffer stages items in arrival order, one per primary key. Staging an item
// whose key is already staged replaces it in place, so a batch never carries
// the same key twice.
type Buffer[T Item] struct {
	order []string
	items map[string]T
}

func NewBuffer[T Item]() *Buffer[T] {
	return &Buffer[T]{items: make(map[string]T)}
}

// Add stages item and returns the number of staged items.
func (b *Buffer[T]) Add(item T) int {
	if b.items == nil {
		b.items = make(map[string]T)
	}
	key := item.PrimaryKey()
	if _, ok := b.items[key]; !ok {
		b.order = append(b.order, key)
	}
	b.items[key] = item
	return len(b.order)
}

func (b *Buffer[T]) Len() int { return len(b.order) }

// Drain returns the staged items in arrival order and empties the buffer.
func (b *Buffer[T]) Drain() []T {
	out := make([]T, 0, len(b.order))
	for _, k := range b.order {
		out = append(out, b.items[k])
	}
	b.order = nil
	b.items = make(map[string]T)
	return out
}
