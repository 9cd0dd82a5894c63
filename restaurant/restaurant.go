// Package restaurant groups the organizational namespaces of a
// restaurant. The sub-packages carry no state and no behavior; the
// tree only demonstrates hierarchical grouping and visibility.
package restaurant

import (
	"type-lab/restaurant/backofhouse/cleaning"
	"type-lab/restaurant/backofhouse/cooking"
	"type-lab/restaurant/backofhouse/preparing"
	"type-lab/restaurant/frontofhouse/hosting"
	"type-lab/restaurant/frontofhouse/serving"
)

// EatAtRestaurant walks the whole hierarchy once, front of house then
// back of house. Every call is an idempotent no-op.
func EatAtRestaurant() {
	hosting.AddToWaitlist()
	hosting.SeatAtTable()

	serving.TakeOrder()
	serving.ServeOrder()
	serving.TakePayment()

	cooking.SelectIngredients()
	cooking.CutVegetables()
	preparing.PrepareDish()

	cleaning.CleanDishes()
	cleaning.CleanFloor()
}
