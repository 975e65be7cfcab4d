package utils

import "time"

// ParseOptionalDate interpreta datas opcionais no formato YYYY-MM-DD:
// ponteiro nulo ou string vazia retornam nil sem erro.
func ParseOptionalDate(dateStr *string) (*time.Time, error) {
	if dateStr == nil || *dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", *dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
