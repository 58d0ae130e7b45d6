package entity

// Slot хранит значение или пусто. Уничтоженный корабль и выбитая ячейка строя хранятся как пустые слоты.
type Slot[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Slot[T] {
	return Slot[T]{value: v, present: true}
}

// Get возвращает указатель на значение внутри слота, чтобы его можно было двигать.
func (s *Slot[T]) Get() (*T, bool) {
	if !s.present {
		return nil, false
	}
	return &s.value, true
}

func (s *Slot[T]) Present() bool {
	return s.present
}

func (s *Slot[T]) Set(v T) {
	s.value = v
	s.present = true
}

// Clear опустошает слот. Повторный вызов ничего не делает и возвращает false.
func (s *Slot[T]) Clear() bool {
	if !s.present {
		return false
	}
	var zero T
	s.value = zero
	s.present = false
	return true
}
