package utils

import "time"

// DateKeyLayout é o formato usado nas chaves de snapshot e no marcador de
// último dia verificado.
const DateKeyLayout = "2006-01-02"

// DateKey converte um instante para a chave do dia civil correspondente.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// StartOfDay retorna a meia-noite local do dia civil de t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek retorna a meia-noite local do domingo mais recente em ou
// antes de t. A semana do painel começa no domingo.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// StartOfMonth retorna a meia-noite local do dia 1 do mês de t.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// StartOfYear retorna a meia-noite local de 1º de janeiro do ano de t.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
}

// ParseDate interpreta datas no formato yyyy-mm-dd vindas de filtros e de
// arquivos importados.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(DateKeyLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
