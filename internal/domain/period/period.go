// Package period resuelve tokens de período ("hoy", "mes", "trimestre"…)
// a rangos de fechas concretos con semántica de calendario local, y filtra
// ventas por rango comparando fechas como strings YYYY-MM-DD para evitar
// corrimientos de día por zona horaria.
package period

import (
	"time"

	"github.com/akax-pajomel/ventas-api/internal/domain/entity"
)

// Tokens de período aceptados. Se aceptan los nombres en español de la UI
// y sus equivalentes en inglés.
const (
	Today     = "hoy"
	Yesterday = "ayer"
	Week      = "semana"
	Month     = "mes"
	Quarter   = "trimestre"
	Year      = "ano"
	Last7     = "ultimos7"
	Last30    = "ultimos30"
	Last90    = "ultimos90"
	All       = "todo"
)

// DateRange rango de fechas inclusivo en ambos extremos.
type DateRange struct {
	From time.Time
	To   time.Time
}

// normalize traduce alias en inglés al token canónico en español.
func normalize(token string) string {
	switch token {
	case "today":
		return Today
	case "yesterday":
		return Yesterday
	case "week":
		return Week
	case "month":
		return Month
	case "quarter":
		return Quarter
	case "year":
		return Year
	case "last7":
		return Last7
	case "last30":
		return Last30
	case "last90":
		return Last90
	case "all":
		return All
	}
	return token
}

// ResolveRange convierte un token de período en un rango concreto relativo a
// now. Devuelve nil para "todo" (sin filtro) y para tokens desconocidos.
// La semana empieza en domingo; el trimestre en el primer mes del bloque de 3
// que contiene a now. To es el fin del día de now (23:59:59.999) salvo "ayer",
// que corre ambos extremos un día atrás.
func ResolveRange(token string, now time.Time) *DateRange {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24*time.Hour - time.Millisecond)

	from := startOfDay
	to := endOfDay

	switch normalize(token) {
	case Today:
		// hoy a hoy
	case Yesterday:
		from = startOfDay.AddDate(0, 0, -1)
		to = endOfDay.AddDate(0, 0, -1)
	case Week:
		// domingo de esta semana
		from = startOfDay.AddDate(0, 0, -int(now.Weekday()))
	case Month:
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case Quarter:
		firstMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		from = time.Date(now.Year(), firstMonth, 1, 0, 0, 0, 0, now.Location())
	case Year:
		from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	case Last7:
		from = startOfDay.AddDate(0, 0, -6)
	case Last30:
		from = startOfDay.AddDate(0, 0, -29)
	case Last90:
		from = startOfDay.AddDate(0, 0, -89)
	default:
		return nil
	}

	return &DateRange{From: from, To: to}
}

// localDay formatea una fecha como YYYY-MM-DD en su propia zona horaria.
func localDay(t time.Time) string {
	return t.Format("2006-01-02")
}

// Days cuenta los días del rango, ambos extremos incluidos.
func (r *DateRange) Days() int {
	from := time.Date(r.From.Year(), r.From.Month(), r.From.Day(), 0, 0, 0, 0, r.From.Location())
	to := time.Date(r.To.Year(), r.To.Month(), r.To.Day(), 0, 0, 0, 0, r.To.Location())
	return int(to.Sub(from).Hours()/24) + 1
}

// Contains reporta si la fecha cae dentro del rango, comparando por día de
// calendario (string ISO), nunca por timestamp crudo.
func (r *DateRange) Contains(t time.Time) bool {
	day := localDay(t)
	return day >= localDay(r.From) && day <= localDay(r.To)
}

// FilterByRange devuelve las ventas cuya fecha cae en el rango, inclusivo en
// ambos extremos y preservando el orden original. range nil = sin filtro.
func FilterByRange(ventas []entity.Sale, r *DateRange) []entity.Sale {
	if r == nil {
		return ventas
	}
	out := make([]entity.Sale, 0, len(ventas))
	for _, v := range ventas {
		if r.Contains(v.Date) {
			out = append(out, v)
		}
	}
	return out
}
