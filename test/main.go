package main

import (
	"fmt"

	"github.com/henderiw/timespan/pkg/datespan"
	"github.com/henderiw/timespan/pkg/timespan"
)

func main() {
	opening, err := timespan.ParseFormat(
		"from 09.00 to 17.00 on Monday",
		"from {start} to {end} on Monday",
		"%H.%M", "%H.%M",
	)
	if err != nil {
		panic(err)
	}
	fmt.Println("opening hours:", opening)
	fmt.Println("duration:", opening.Duration())

	lunch, err := timespan.Parse("12:00:00 - 13:00:00")
	if err != nil {
		panic(err)
	}
	fmt.Println("lunch inside opening hours:", lunch.IsSubset(opening))

	morning, afternoon, err := opening.SplitOff(timespan.Clock(12, 0, 0))
	if err != nil {
		panic(err)
	}
	fmt.Println("morning:", morning)
	fmt.Println("afternoon:", afternoon)

	fmt.Println(timespan.Format(opening, "open {start}, closed {end}", "%H:%M", "%H:%M"))

	holidays, err := datespan.Parse("2017-12-24 - 2017-12-26")
	if err != nil {
		panic(err)
	}
	fmt.Println("holidays contain the 25th:", holidays.Contains(datespan.YMD(2017, 12, 25)))
}
