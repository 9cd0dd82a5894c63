// Package message defines a closed set of message variants.
// Exactly one variant is active per value; the set is sealed so
// no other package can add a case.
package message

import (
	"fmt"

	"github.com/samber/lo"
)

type Kind string

const (
	KindQuit        Kind = "quit"
	KindMove        Kind = "move"
	KindWrite       Kind = "write"
	KindChangeColor Kind = "change_color"
)

// Message is the sum type. The unexported method keeps the variant set closed.
type Message interface {
	Kind() Kind
	// Call is the placeholder behavior every variant carries.
	// It returns normally and has no observable effect.
	Call()

	isMessage()
}

// Quit carries no payload.
type Quit struct{}

func (Quit) Kind() Kind { return KindQuit }
func (Quit) Call()      {}
func (Quit) isMessage() {}

// Move carries a target position.
type Move struct {
	X int
	Y int
}

func (Move) Kind() Kind { return KindMove }
func (Move) Call()      {}
func (Move) isMessage() {}

// Write carries a text payload.
type Write struct {
	Text string
}

func (Write) Kind() Kind { return KindWrite }
func (Write) Call()      {}
func (Write) isMessage() {}

// ChangeColor carries an RGB triple.
type ChangeColor struct {
	R int
	G int
	B int
}

func (ChangeColor) Kind() Kind { return KindChangeColor }
func (ChangeColor) Call()      {}
func (ChangeColor) isMessage() {}

// Describe renders one human-readable line per variant.
// Dispatch is a type switch over the closed set.
func Describe(m Message) string {
	switch v := m.(type) {
	case Quit:
		return "Quit"
	case Move:
		return fmt.Sprintf("Move to (%d, %d)", v.X, v.Y)
	case Write:
		return fmt.Sprintf("Write %q", v.Text)
	case ChangeColor:
		return fmt.Sprintf("ChangeColor(%d, %d, %d)", v.R, v.G, v.B)
	default:
		// Unreachable while the set stays sealed.
		return fmt.Sprintf("unknown message %T", m)
	}
}

// DescribeAll maps Describe over a batch, preserving order.
func DescribeAll(messages []Message) []string {
	return lo.Map(messages, func(m Message, _ int) string {
		return Describe(m)
	})
}
