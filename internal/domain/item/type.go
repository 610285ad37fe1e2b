package item

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

// Type задает вид элемента панели.
type Type string

const (
	TypeNote     Type = "note"
	TypeTask     Type = "task"
	TypeLink     Type = "link"
	TypeReminder Type = "reminder"
)

// Types перечисляет допустимые виды в порядке отображения.
var Types = []Type{TypeNote, TypeTask, TypeLink, TypeReminder}

func (Type) Schema(huma.Registry) *huma.Schema {
	enum := make([]any, len(Types))
	for i, t := range Types {
		enum[i] = string(t)
	}
	return &huma.Schema{
		Type:        huma.TypeString,
		Enum:        enum,
		Description: "Вид элемента",
		Examples:    []any{TypeNote},
	}
}

// Validate проверяет принадлежность перечислению.
func (t Type) Validate() error {
	switch t {
	case TypeNote, TypeTask, TypeLink, TypeReminder:
		return nil
	}
	return fmt.Errorf("неверный вид элемента: %q", string(t))
}

func (t Type) String() string {
	return string(t)
}

// DisplayName возвращает человекочитаемое название вида.
func (t Type) DisplayName() string {
	switch t {
	case TypeNote:
		return "Заметка"
	case TypeTask:
		return "Задача"
	case TypeLink:
		return "Ссылка"
	case TypeReminder:
		return "Напоминание"
	default:
		return "Неизвестный вид"
	}
}

type Color string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
)

var Colors = []Color{ColorBlue, ColorGreen, ColorRed, ColorYellow, ColorPurple, ColorOrange}

func (Color) Schema(huma.Registry) *huma.Schema {
	enum := make([]any, len(Colors))
	for i, c := range Colors {
		enum[i] = string(c)
	}
	return &huma.Schema{
		Type:        huma.TypeString,
		Enum:        enum,
		Description: "Цвет карточки",
		Examples:    []any{ColorBlue},
	}
}

func (c Color) Validate() error {
	for _, known := range Colors {
		if c == known {
			return nil
		}
	}
	return fmt.Errorf("неверный цвет: %q", string(c))
}

func (c Color) String() string {
	return string(c)
}

// ParseType приводит строку к Type с проверкой.
func ParseType(s string) (Type, error) {
	t := Type(s)
	return t, t.Validate()
}

// ParseColor приводит строку к Color с проверкой.
func ParseColor(s string) (Color, error) {
	c := Color(s)
	return c, c.Validate()
}
