package world

import (
	"sort"

	"github.com/Ruselmi/mine-and-cheet/internal/vec"
	"github.com/Ruselmi/mine-and-cheet/internal/world/block"
)

// Voxel представляет занятую ячейку мира
type Voxel struct {
	Position vec.Vec3      `json:"position"`
	Block    block.BlockID `json:"block"`
}

// column хранит сводку колонки (X, Z) для быстрого HeightAt
type column struct {
	count int // Количество твёрдых вокселей в колонке
	top   int // Наибольший Y среди них (валиден при count > 0)
}

// Store - разреженная карта занятости вокселей.
// Отсутствие ключа означает воздух. Хранилище является единственным источником
// истины и для физики, и для отрисовки.
//
// Store не потокобезопасен: все чтения и записи выполняются в потоке тика.
type Store struct {
	blocks    map[vec.Vec3]block.BlockID
	columns   map[vec.Vec2]*column
	listeners []Listener
}

// NewStore создаёт пустое хранилище
func NewStore() *Store {
	return &Store{
		blocks:  make(map[vec.Vec3]block.BlockID),
		columns: make(map[vec.Vec2]*column),
	}
}

// Subscribe регистрирует слушателя изменений
func (s *Store) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Get возвращает блок в позиции; false означает воздух
func (s *Store) Get(pos vec.Vec3) (block.BlockID, bool) {
	id, ok := s.blocks[pos]
	return id, ok
}

// IsSolid проверяет, занята ли позиция
func (s *Store) IsSolid(pos vec.Vec3) bool {
	_, ok := s.blocks[pos]
	return ok
}

// Set вставляет или перезаписывает блок. Установка воздуха равносильна Remove.
func (s *Store) Set(pos vec.Vec3, id block.BlockID) {
	if id == block.AirBlockID {
		s.Remove(pos)
		return
	}

	prev, existed := s.blocks[pos]
	if existed && prev == id {
		return
	}
	s.blocks[pos] = id

	if !existed {
		key := pos.Column()
		col, ok := s.columns[key]
		if !ok {
			col = &column{top: pos.Y}
			s.columns[key] = col
		}
		col.count++
		if pos.Y > col.top {
			col.top = pos.Y
		}
	}

	s.emit(BlockEvent{
		Type:     EventTypeBlockSet,
		Position: pos,
		Block:    id,
		Previous: prev,
	})
}

// Remove удаляет блок. Отсутствующий блок - не ошибка, а no-op.
// Возвращает true, если блок действительно был удалён.
func (s *Store) Remove(pos vec.Vec3) bool {
	prev, existed := s.blocks[pos]
	if !existed {
		return false
	}
	delete(s.blocks, pos)

	key := pos.Column()
	col := s.columns[key]
	col.count--
	switch {
	case col.count == 0:
		delete(s.columns, key)
	case pos.Y == col.top:
		// Ниже гарантированно есть хотя бы один воксель
		y := pos.Y - 1
		for !s.IsSolid(key.At(y)) {
			y--
		}
		col.top = y
	}

	s.emit(BlockEvent{
		Type:     EventTypeBlockRemove,
		Position: pos,
		Block:    block.AirBlockID,
		Previous: prev,
	})
	return true
}

// HeightAt возвращает наибольший Y с твёрдым вокселем в колонке.
// false означает пустую колонку ("земли нет").
func (s *Store) HeightAt(x, z int) (int, bool) {
	col, ok := s.columns[vec.Vec2{X: x, Z: z}]
	if !ok {
		return 0, false
	}
	return col.top, true
}

// Len возвращает количество занятых вокселей
func (s *Store) Len() int {
	return len(s.blocks)
}

// Voxels возвращает снимок всех вокселей в детерминированном порядке
func (s *Store) Voxels() []Voxel {
	out := make([]Voxel, 0, len(s.blocks))
	for pos, id := range s.blocks {
		out = append(out, Voxel{Position: pos, Block: id})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position.Less(out[j].Position) })
	return out
}

// Range вызывает fn для каждого вокселя в произвольном порядке, пока fn возвращает true
func (s *Store) Range(fn func(pos vec.Vec3, id block.BlockID) bool) {
	for pos, id := range s.blocks {
		if !fn(pos, id) {
			return
		}
	}
}

func (s *Store) emit(ev BlockEvent) {
	for _, l := range s.listeners {
		l(ev)
	}
}
