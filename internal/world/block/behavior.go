package block

// Faces описывает ключи текстур граней блока для рендерера
type Faces struct {
	Top    string `json:"top"`
	Side   string `json:"side"`
	Bottom string `json:"bottom"`
}

// Uniform возвращает одинаковую текстуру для всех граней
func Uniform(texture string) Faces {
	return Faces{Top: texture, Side: texture, Bottom: texture}
}

// BlockBehavior определяет описание типа блока.
// Кроме тега типа блок ничего не хранит, поэтому поведение сводится к справочным данным.
type BlockBehavior interface {
	ID() BlockID
	Name() string
	Faces() Faces
}
