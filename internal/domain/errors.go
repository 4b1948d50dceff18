package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrMissingID    = errors.New("el almacenamiento no devolvió id")
)

// Sentinelas de la taxonomía de errores de items; ItemError.Is los reconoce.
var (
	ErrInvalidCategory   = errors.New("categoría inválida")
	ErrItemAlreadyExists = errors.New("el item ya existe")
	ErrAddingItem        = errors.New("error al agregar item")
	ErrItemNotFound      = errors.New("item no encontrado")
)

// ItemErrorKind identifica la variante de ItemError.
type ItemErrorKind int

const (
	KindInvalidCategory ItemErrorKind = iota + 1
	KindItemAlreadyExists
	KindAddingItem
	KindItemNotFound
)

func (k ItemErrorKind) String() string {
	switch k {
	case KindInvalidCategory:
		return "InvalidCategory"
	case KindItemAlreadyExists:
		return "ItemAlreadyExists"
	case KindAddingItem:
		return "AddingItemError"
	case KindItemNotFound:
		return "ItemNotFound"
	default:
		return fmt.Sprintf("ItemErrorKind(%d)", int(k))
	}
}

// ItemError es el conjunto cerrado de fallos del caso de uso de creación de items.
// Sólo el campo correspondiente a Kind viene informado.
type ItemError struct {
	Kind     ItemErrorKind
	Name     string // ItemAlreadyExists
	Category string // InvalidCategory (texto crudo)
	ID       int64  // ItemNotFound
	Err      error  // causa subyacente (AddingItemError, y la lectura fallida en ItemNotFound)
}

// InvalidCategory construye el error para una categoría desconocida.
func InvalidCategory(raw string) *ItemError {
	return &ItemError{Kind: KindInvalidCategory, Category: raw}
}

// ItemAlreadyExists construye el error para un nombre ya registrado.
func ItemAlreadyExists(name string) *ItemError {
	return &ItemError{Kind: KindItemAlreadyExists, Name: name}
}

// AddingItemError envuelve un fallo del almacenamiento durante la creación.
func AddingItemError(err error) *ItemError {
	return &ItemError{Kind: KindAddingItem, Err: err}
}

// ItemNotFound indica que el item recién insertado no pudo releerse.
func ItemNotFound(id int64, cause error) *ItemError {
	return &ItemError{Kind: KindItemNotFound, ID: id, Err: cause}
}

func (e *ItemError) Error() string {
	switch e.Kind {
	case KindInvalidCategory:
		return fmt.Sprintf("%s: %s", ErrInvalidCategory, e.Category)
	case KindItemAlreadyExists:
		return fmt.Sprintf("%s: %s", ErrItemAlreadyExists, e.Name)
	case KindAddingItem:
		return fmt.Sprintf("%s: %v", ErrAddingItem, e.Err)
	case KindItemNotFound:
		return fmt.Sprintf("%s: %d", ErrItemNotFound, e.ID)
	default:
		return "error de item desconocido"
	}
}

func (e *ItemError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, domain.ErrItemAlreadyExists) y similares.
func (e *ItemError) Is(target error) bool {
	switch target {
	case ErrInvalidCategory:
		return e.Kind == KindInvalidCategory
	case ErrItemAlreadyExists:
		return e.Kind == KindItemAlreadyExists
	case ErrAddingItem:
		return e.Kind == KindAddingItem
	case ErrItemNotFound:
		return e.Kind == KindItemNotFound
	}
	return false
}

// StoreError es un fallo de la capa de persistencia. Op identifica la operación.
type StoreError struct {
	Op  string
	Err error
}

// NewStoreError envuelve err como fallo de la operación op.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
