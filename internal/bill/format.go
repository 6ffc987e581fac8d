package bill

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

var frenchMonths = [12]string{
	"Jan.", "Fév.", "Mar.", "Avr.", "Mai", "Juin",
	"Juil.", "Aoû.", "Sep.", "Oct.", "Nov.", "Déc.",
}

// FormatDate converts a stored YYYY-MM-DD date into the short French display
// form, e.g. "2004-04-04" becomes "4 Avr. 04". Malformed input is returned
// unchanged.
func FormatDate(raw string) string {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return raw
	}
	return fmt.Sprintf("%d %s %02d", t.Day(), frenchMonths[t.Month()-1], t.Year()%100)
}

// FormatStatus maps a stored status to its display label. Unrecognized values
// pass through verbatim so records from older store versions still render.
func FormatStatus(raw string) string {
	switch raw {
	case StatusPending:
		return "En attente"
	case StatusAccepted:
		return "Accepté"
	case StatusRefused:
		return "Refusé"
	default:
		return raw
	}
}
