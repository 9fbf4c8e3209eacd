package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate lê uma data YYYY-MM-DD de query string; vazio retorna nil
func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, fmt.Errorf("data inválida %q, use AAAA-MM-DD", dateStr)
	}

	return &date, nil
}

// ParseMonth aceita YYYY-MM ou YYYY-MM-DD e retorna o primeiro dia do mês em UTC
func ParseMonth(monthStr string) (time.Time, error) {
	monthStr = strings.TrimSpace(monthStr)
	if monthStr == "" {
		return time.Time{}, nil
	}

	for _, layout := range []string{"2006-01", time.DateOnly} {
		if t, err := time.Parse(layout, monthStr); err == nil {
			return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("mês inválido %q, use AAAA-MM", monthStr)
}
