package adherence

import (
	"regexp"
	"strconv"
)

// DefaultDailyDoses se usa cuando la frecuencia no trae ningún número
// ("once daily", "as needed"). Es una imprecisión conocida: "twice daily"
// también cuenta como 1.
const DefaultDailyDoses = 1

// MaxDailyDoses acota números absurdos ("25000000000000000 times daily").
const MaxDailyDoses = 1000

var firstNumber = regexp.MustCompile(`\d+`)

// DailyDoses devuelve el primer entero del texto de frecuencia.
// "3 times daily" => 3, "every 8 hours" => 8, "once daily" => 1.
func DailyDoses(frequency string) int {
	m := firstNumber.FindString(frequency)
	if m == "" {
		return DefaultDailyDoses
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		// overflow
		return DefaultDailyDoses
	}
	if n > MaxDailyDoses {
		return MaxDailyDoses
	}
	return n
}
