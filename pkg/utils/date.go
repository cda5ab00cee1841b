package utils

import "time"

// ParseDate interpreta datas "2006-01-02" vindas da query string.
// String vazia é válida e vira a data zero (sem filtro).
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
