package entity

// Category clasificación cerrada de items. El texto es la codificación persistida.
type Category string

// Categorías válidas.
const (
	CategoryStaff Category = "Staff"
	CategorySword Category = "Sword"
)

// Categories devuelve el conjunto cerrado de categorías.
func Categories() []Category {
	return []Category{CategoryStaff, CategorySword}
}

// ParseCategory decodifica s por coincidencia exacta. Textos desconocidos devuelven false.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryStaff:
		return CategoryStaff, true
	case CategorySword:
		return CategorySword, true
	default:
		return "", false
	}
}

func (c Category) String() string { return string(c) }

// Valid indica si c pertenece al conjunto cerrado.
func (c Category) Valid() bool {
	_, ok := ParseCategory(string(c))
	return ok
}
