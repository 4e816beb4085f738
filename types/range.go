package types

type Range string

const (
	OneDay    Range = "1D"
	OneWeek   Range = "1W"
	OneMonth  Range = "1M"
	OneYear   Range = "1Y"
	FiveYears Range = "5Y"
)

var RangeToDays = map[Range]int{
	OneDay:    1,
	OneWeek:   7,
	OneMonth:  30,
	OneYear:   365,
	FiveYears: 1825,
}

var ConvertRange = map[string]Range{
	"1D": OneDay,
	"1W": OneWeek,
	"1M": OneMonth,
	"1Y": OneYear,
	"5Y": FiveYears,
}

// Ranges lists the supported ranges in display order.
var Ranges = []Range{OneDay, OneWeek, OneMonth, OneYear, FiveYears}
