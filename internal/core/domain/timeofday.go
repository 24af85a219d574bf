package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// The wire format stores appointment times as localized 12-hour strings with
// a language-specific suffix; exactly two forms occur: "a. m." and "p. m.".
// Hora12 and Hora24 are the two-way mapping between that form and the
// 24-hour "hh:mm" used by edit forms. They are pure and inverse of each
// other for every valid input.

const (
	sufijoAM = "a. m."
	sufijoPM = "p. m."
)

// Hora12 converts a 24-hour "hh:mm" string to its 12-hour wire form:
// "09:09" → "09:09 a. m.", "15:30" → "03:30 p. m.", "00:10" → "12:10 a. m.".
func Hora12(hhmm string) (string, error) {
	h, m, err := parseHoraMinuto(hhmm)
	if err != nil {
		return "", err
	}
	sufijo := sufijoAM
	if h >= 12 {
		sufijo = sufijoPM
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h12, m, sufijo), nil
}

// Hora24 converts a 12-hour wire string back to 24-hour "hh:mm":
// "09:09 a. m." → "09:09", "03:30 p. m." → "15:30", "12:00 a. m." → "00:00".
func Hora24(hora string) (string, error) {
	s := strings.TrimSpace(hora)
	var pm bool
	switch {
	case strings.HasSuffix(s, sufijoAM):
		s = strings.TrimSpace(strings.TrimSuffix(s, sufijoAM))
	case strings.HasSuffix(s, sufijoPM):
		pm = true
		s = strings.TrimSpace(strings.TrimSuffix(s, sufijoPM))
	default:
		return "", fmt.Errorf("hora %q: falta el sufijo a. m./p. m.", hora)
	}

	h, m, err := parseHoraMinuto(s)
	if err != nil {
		return "", err
	}
	if h < 1 || h > 12 {
		return "", fmt.Errorf("hora %q: la hora en formato 12h debe estar entre 1 y 12", hora)
	}
	if pm && h != 12 {
		h += 12
	}
	if !pm && h == 12 {
		h = 0
	}
	return fmt.Sprintf("%02d:%02d", h, m), nil
}

func parseHoraMinuto(s string) (h, m int, err error) {
	partes := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(partes) != 2 {
		return 0, 0, fmt.Errorf("hora %q: se espera el formato hh:mm", s)
	}
	h, err = strconv.Atoi(partes[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, fmt.Errorf("hora %q: hora inválida", s)
	}
	m, err = strconv.Atoi(partes[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("hora %q: minutos inválidos", s)
	}
	return h, m, nil
}
