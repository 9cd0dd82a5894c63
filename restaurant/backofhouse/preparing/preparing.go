package preparing

func PrepareDish() {}
