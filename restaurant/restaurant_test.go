package restaurant

import (
	"testing"

	"type-lab/restaurant/backofhouse/cleaning"
	"type-lab/restaurant/backofhouse/cooking"
	"type-lab/restaurant/backofhouse/preparing"
	"type-lab/restaurant/frontofhouse/hosting"
	"type-lab/restaurant/frontofhouse/serving"

	"github.com/stretchr/testify/require"
)

// Every stub must return immediately with no observable effect,
// however often it is called.
func TestStubsAreIdempotentNoOps(t *testing.T) {
	stubs := []struct {
		name string
		fn   func()
	}{
		{name: "hosting.AddToWaitlist", fn: hosting.AddToWaitlist},
		{name: "hosting.SeatAtTable", fn: hosting.SeatAtTable},
		{name: "serving.TakeOrder", fn: serving.TakeOrder},
		{name: "serving.ServeOrder", fn: serving.ServeOrder},
		{name: "serving.TakePayment", fn: serving.TakePayment},
		{name: "cooking.SelectIngredients", fn: cooking.SelectIngredients},
		{name: "cooking.CutVegetables", fn: cooking.CutVegetables},
		{name: "preparing.PrepareDish", fn: preparing.PrepareDish},
		{name: "cleaning.CleanDishes", fn: cleaning.CleanDishes},
		{name: "cleaning.CleanFloor", fn: cleaning.CleanFloor},
	}

	for _, stub := range stubs {
		t.Run(stub.name, func(t *testing.T) {
			req := require.New(t)
			req.NotPanics(stub.fn)
			req.NotPanics(stub.fn)
		})
	}
}

func TestEatAtRestaurant(t *testing.T) {
	require.NotPanics(t, EatAtRestaurant)
}
