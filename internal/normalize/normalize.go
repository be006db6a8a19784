// Package normalize maps loosely-formatted user input tokens (pet type,
// age unit, contact channel, date strings) to the canonical codes stored
// in the database. All functions are pure; the only failure mode is
// "no match", reported as an empty string or a zero time.
package normalize

import (
	"strings"
	"time"

	"github.com/camivalenzuela/adopciones/internal/models"
)

// Accepted datetime layouts for user-supplied timestamps. The first is
// what datetime-local inputs produce; the second is the display format.
const (
	LayoutEntrada   = "2006-01-02T15:04"
	LayoutRespuesta = "2006-01-02 15:04"
)

// Tipo normalizes a pet-kind token to 'gato' or 'perro'. Unrecognized
// input returns "" and must be treated as a validation error by the
// caller, never silently defaulted.
func Tipo(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "gato", "gatito":
		return models.TipoGato
	case "perro", "perrito":
		return models.TipoPerro
	}
	return ""
}

// Unidad normalizes an age-unit token to 'm' (months) or 'a' (years).
// Unrecognized input returns "".
func Unidad(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "m", "mes", "meses":
		return models.UnidadMeses
	case "a", "año", "años", "ano", "anos":
		return models.UnidadAnios
	}
	return ""
}

// Via normalizes a contact-channel token. 'x' and 'twitter' map to the
// canonical "X"; known channels pass through lowercased; anything else
// falls back to "otra". Unlike Tipo and Unidad this function is total:
// an unknown channel is not a validation failure.
func Via(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "x", "twitter":
		return "X"
	case "whatsapp":
		return "whatsapp"
	case "telegram":
		return "telegram"
	case "instagram":
		return "instagram"
	case "tiktok":
		return "tiktok"
	}
	return "otra"
}

// ParseFecha parses a user-supplied timestamp in either accepted layout.
// Timestamps are naive local time; no timezone handling. Returns the
// zero time and false when neither layout matches.
func ParseFecha(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	for _, layout := range []string{LayoutEntrada, LayoutRespuesta} {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatFecha renders a timestamp in the response format ("YYYY-MM-DD HH:MM").
func FormatFecha(t time.Time) string {
	return t.Format(LayoutRespuesta)
}

// UnidadLabel maps the stored unit code to the label used in responses:
// 'm' -> "meses", 'a' -> "años".
func UnidadLabel(unidad string) string {
	switch unidad {
	case models.UnidadMeses:
		return "meses"
	case models.UnidadAnios:
		return "años"
	}
	return ""
}
