package block

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	registry = make(map[BlockID]BlockBehavior)
	byName   = make(map[string]BlockID)
)

// Register добавляет поведение блока в регистр
func Register(id BlockID, behavior BlockBehavior) {
	registry[id] = behavior
	byName[strings.ToLower(behavior.Name())] = id
}

// Get возвращает поведение для указанного ID
func Get(id BlockID) (BlockBehavior, bool) {
	behavior, exists := registry[id]
	return behavior, exists
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}

// Lookup ищет ID блока по имени (без учёта регистра)
func Lookup(name string) (BlockID, bool) {
	id, exists := byName[strings.ToLower(strings.TrimSpace(name))]
	return id, exists
}

// All возвращает все зарегистрированные поведения, упорядоченные по ID
func All() []BlockBehavior {
	result := make([]BlockBehavior, 0, len(registry))
	for _, behavior := range registry {
		result = append(result, behavior)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })
	return result
}

// BlockID представляет идентификатор блока
type BlockID uint16

// Константы ID блоков
const (
	AirBlockID    BlockID = iota // 0 - отсутствие блока
	GrassBlockID                 // 1
	DirtBlockID                  // 2
	LogBlockID                   // 3 - ствол дерева
	LeafBlockID                  // 4 - листва кроны
	StoneBlockID                 // 5
	SandBlockID                  // 6
	PlanksBlockID                // 7
)

// String возвращает имя блока в нижнем регистре
func (id BlockID) String() string {
	if behavior, ok := registry[id]; ok {
		return strings.ToLower(behavior.Name())
	}
	return "block(" + strconv.Itoa(int(id)) + ")"
}

// MarshalText кодирует блок его именем (JSON, YAML)
func (id BlockID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText разбирает имя блока или его числовой ID
func (id *BlockID) UnmarshalText(text []byte) error {
	s := string(text)
	if parsed, ok := Lookup(s); ok {
		*id = parsed
		return nil
	}
	if n, err := strconv.ParseUint(s, 10, 16); err == nil && IsValidBlockID(BlockID(n)) {
		*id = BlockID(n)
		return nil
	}
	return fmt.Errorf("неизвестный тип блока %q", s)
}
