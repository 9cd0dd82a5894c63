package cooking

func SelectIngredients() {}

func CutVegetables() {}
