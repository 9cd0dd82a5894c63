// Package serving takes orders and payments.
package serving

func TakeOrder() {}

func ServeOrder() {}

func TakePayment() {}
