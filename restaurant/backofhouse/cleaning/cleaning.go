package cleaning

func CleanDishes() {}

func CleanFloor() {}
