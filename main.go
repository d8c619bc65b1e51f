package main

import (
	"fmt"
	"log"

	"github.com/meenmo/bondcalc/bond"
)

func main() {
	b := bond.New(bond.Terms{
		FaceValue:       1000,
		CouponRate:      0.06,
		YieldToMaturity: 0.08,
		MaturityYears:   5,
		PaymentsPerYear: 1,
	})

	a, err := b.Analytics()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Bond Price: %.2f\n", a.Price)
	fmt.Printf("Macaulay Duration: %.4f years\n", a.MacaulayDuration)
	fmt.Printf("Modified Duration: %.4f\n", a.ModifiedDuration)
	fmt.Printf("Convexity: %.4f\n", a.Convexity)

	const deltaYield = 0.01
	change, err := b.PricePercentageChange(deltaYield)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Approximate Price Change for 1%% yield increase: %.2f%%\n", change*100)
}
