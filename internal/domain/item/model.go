package item

import (
	"time"
)

// Item описывает элемент панели пользователя.
type Item struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        Type      `json:"type"`
	Color       Color     `json:"color"`
	IsPinned    bool      `json:"is_pinned"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Fields служит телом запросов создания и обновления.
type Fields struct {
	Title       string `json:"title" validate:"required,max=255" doc:"Заголовок" example:"Купить молоко"`
	Description string `json:"description" validate:"required,max=1000" doc:"Описание"`
	Type        Type   `json:"type" doc:"Вид: note, task, link, reminder"`
	Color       Color  `json:"color" doc:"Цвет: blue, green, red, yellow, purple, orange"`
}

// Defaults возвращает значения формы создания по умолчанию.
func Defaults() Fields {
	return Fields{Type: TypeNote, Color: ColorBlue}
}

// Position задает новую позицию элемента при переупорядочивании.
type Position struct {
	ID       int `json:"id" validate:"gt=0" doc:"ID элемента"`
	Position int `json:"position" validate:"gte=0" doc:"Новая позиция"`
}

type ReorderRequest struct {
	Items []Position `json:"items" validate:"required,dive"`
}

type ListResponse struct {
	Records []Item `json:"records"`
	Total   int    `json:"total"`
}

func (i Item) GetID() int { return i.ID }

func (i Item) GetPosition() int { return i.Position }

// EditableFields возвращает копию полей для рабочего буфера.
func (i Item) EditableFields() Fields {
	return Fields{
		Title:       i.Title,
		Description: i.Description,
		Type:        i.Type,
		Color:       i.Color,
	}
}

// DisplayFields возвращает поля для текстового поиска.
func (i Item) DisplayFields() []string {
	return []string{i.Title, i.Description}
}

// Classes возвращает поля-перечисления для точной фильтрации.
func (i Item) Classes() map[string]string {
	return map[string]string{
		"type":  string(i.Type),
		"color": string(i.Color),
	}
}

// Flagged сообщает, закреплен ли элемент.
func (i Item) Flagged() bool { return i.IsPinned }

// Apply переносит поля в элемент.
func (i *Item) Apply(f Fields) {
	i.Title = f.Title
	i.Description = f.Description
	i.Type = f.Type
	i.Color = f.Color
}
