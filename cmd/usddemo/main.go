// Command usddemo prints the result of a single illustrative computation:
// subtracting a bill from an empty balance.
package main

import (
	"fmt"

	"github.com/centval/usd"
)

func main() {
	balance := usd.New(0, 0)
	bill := usd.New(15, 31)
	fmt.Println(balance.Sub(bill))
}
