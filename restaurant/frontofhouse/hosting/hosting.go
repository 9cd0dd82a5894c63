// Package hosting greets and seats customers.
package hosting

func AddToWaitlist() {}

func SeatAtTable() {}
