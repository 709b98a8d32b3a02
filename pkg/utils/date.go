package utils

import "time"

// ParseDate converte uma data no formato YYYY-MM-DD. String vazia
// retorna nil sem erro (datas opcionais).
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// FormatDate formata uma data opcional como YYYY-MM-DD, nil permanece nil
func FormatDate(date *time.Time) *string {
	if date == nil {
		return nil
	}

	formatted := date.Format("2006-01-02")
	return &formatted
}
