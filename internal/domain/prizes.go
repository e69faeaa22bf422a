package domain

// MaxPrizePositions is the number of prizes drawn per house.
const MaxPrizePositions = 3

func PrizeType(position int) string {
	switch position {
	case 1:
		return "House"
	case 2:
		return "Cash"
	case 3:
		return "Voucher"
	}
	return "Other"
}

func PrizeValue(position int, housePrice int64) int64 {
	switch position {
	case 1:
		return housePrice
	case 2:
		return 10000
	case 3:
		return 1000
	}
	return 0
}

func PrizeDescription(position int, houseTitle string) string {
	switch position {
	case 1:
		return "Grand Prize: " + houseTitle
	case 2:
		return "Second Prize: $10,000 Cash"
	case 3:
		return "Third Prize: $1,000 Shopping Voucher"
	}
	return "Consolation Prize"
}
