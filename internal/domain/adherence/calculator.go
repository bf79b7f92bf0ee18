// Package adherence calcula dosis esperadas vs. tomadas en una ventana
// de días hacia atrás.
package adherence

import (
	"math"
	"time"

	"medguardian/internal/domain/intake"
	"medguardian/internal/domain/medications"
)

type Stats struct {
	TotalExpected int
	TotalTaken    int
	AdherenceRate int // porcentaje redondeado; puede pasar de 100
	Days          int
}

// Compute es puro: mismas entradas, mismo resultado. Nunca falla.
//
// TotalTaken cuenta todas las tomas en [now-days, now] sin mirar a qué
// medicamento pertenecen, así que una toma extra de un medicamento compensa
// la falta de otro.
func Compute(meds []medications.Medication, records []intake.Record, days int, now time.Time) Stats {
	if days < 0 {
		days = 0
	}

	perDay := 0
	for _, m := range meds {
		perDay = satAdd(perDay, DailyDoses(m.Frequency))
	}
	expected := satMul(perDay, days)

	from := now.AddDate(0, 0, -days)
	taken := 0
	for _, r := range records {
		if r.Timestamp.Before(from) || r.Timestamp.After(now) {
			continue
		}
		taken++
	}

	return Stats{
		TotalExpected: expected,
		TotalTaken:    taken,
		AdherenceRate: Rate(taken, expected),
		Days:          days,
	}
}

// Rate = round(taken/expected*100); 0 si no hay dosis esperadas.
func Rate(taken, expected int) int {
	if expected <= 0 {
		return 0
	}
	return int(math.Round(float64(taken) / float64(expected) * 100))
}

// satAdd y satMul operan sobre enteros no negativos y se quedan en math.MaxInt.
func satAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func satMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}
