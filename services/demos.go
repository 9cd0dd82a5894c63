package services

import (
	"fmt"
	"io"

	"type-lab/domain/geometry"
	"type-lab/domain/message"
	"type-lab/domain/user"
	"type-lab/restaurant"
)

// describeHandler prints every message flowing through the chain.
type describeHandler struct {
	out io.Writer
}

func (h describeHandler) Handle(m message.Message) {
	fmt.Fprintf(h.out, "message: %s\n", message.Describe(m))
}

func runEnums(out io.Writer) error {
	dispatcher, err := message.NewDispatcher(describeHandler{out: out})
	if err != nil {
		return err
	}

	// One value per variant of the closed set.
	batch := []message.Message{
		message.Quit{},
		message.Move{X: 10, Y: 20},
		message.Write{Text: "Go enums"},
		message.ChangeColor{R: 255, G: 0, B: 127},
	}
	for _, m := range batch {
		dispatcher.Dispatch(m)
	}

	fmt.Fprintf(out, "dispatched %d messages\n", len(dispatcher.History()))
	return nil
}

func runRectangles(out io.Writer) error {
	rectOne := geometry.Rectangle{Width: 30, Height: 50}
	rectTwo := geometry.Rectangle{Width: 10, Height: 40}
	rectThree := geometry.Rectangle{Width: 60, Height: 45}

	fmt.Fprintf(out, "rect_one is %s\n", rectOne)
	fmt.Fprintf(out, "The area of the rectangle is %d\n", rectOne.Area())
	fmt.Fprintf(out, "Can rect_one hold rect_two? %t\n", rectOne.CanHold(rectTwo))
	fmt.Fprintf(out, "Can rect_one hold rect_three? %t\n", rectOne.CanHold(rectThree))
	return nil
}

func runStructures(out io.Writer) error {
	// One read-only snapshot, one mutable copy of the same record.
	// Records are values: the mutation stays on the copy.
	snapshot := user.BuildUser("someone@example.com", "someusername123")
	mutable := snapshot
	mutable.Email = "anotheremail@example.com"

	fmt.Fprintf(out, "snapshot is %s\n", snapshot)
	fmt.Fprintf(out, "mutable copy is %s\n", mutable)

	second := snapshot.WithIdentity("another@example.com", "anotherusername567")
	fmt.Fprintf(out, "second user is %s\n", second)

	err := user.ValidateRegister(user.RegisterRequest{
		Email:    second.Email,
		Username: second.Username,
	})
	fmt.Fprintf(out, "second user validates? %t\n", err == nil)
	return nil
}

func runRestaurant(out io.Writer) error {
	restaurant.EatAtRestaurant()
	fmt.Fprintln(out, "walked front of house and back of house, nothing happened")
	return nil
}
