package summarizing

import (
	"time"

	"github.com/vfg2006/competitor-ads-api/internal/domain"
)

// monthStart trunca uma data para o primeiro dia do mês, em UTC.
func monthStart(date time.Time) time.Time {
	date = date.UTC()
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// monthEnd retorna o último dia do mês, em UTC.
func monthEnd(month time.Time) time.Time {
	return monthStart(month).AddDate(0, 1, -1)
}

// adSpan resolve o intervalo de atividade de um anúncio: início em
// start_date (fallback creation_date) e fim em end_date, ou "now" quando o
// anúncio ainda está rodando. Retorna false quando o anúncio não tem
// nenhuma data utilizável.
func adSpan(ad *domain.RawAd, now time.Time) (time.Time, time.Time, bool) {
	ref := ad.ReferenceDate()
	if ref == nil {
		return time.Time{}, time.Time{}, false
	}

	start := ref.UTC()

	end := now.UTC()
	if ad.EndDate != nil {
		end = ad.EndDate.UTC()
	}

	if end.Before(start) {
		end = start
	}

	return start, end, true
}

// overlappedMonths lista todos os meses (primeiro dia, UTC) que o intervalo
// do anúncio sobrepõe. Um anúncio que cruza a virada do mês contribui para
// todos os meses do caminho, não apenas o do start_date.
func overlappedMonths(start, end time.Time) []time.Time {
	months := []time.Time{}

	current := monthStart(start)
	last := monthStart(end)

	for !current.After(last) {
		months = append(months, current)
		current = current.AddDate(0, 1, 0)
	}

	return months
}

// activeDaysInMonth calcula os dias ativos de um anúncio dentro de um mês,
// recortando o intervalo nas bordas do mês. O intervalo contínuo é
// particionado nos últimos dias de cada mês, então a soma sobre os meses é
// exatamente end − start em dias: um anúncio de 20/jan a 10/fev rende 11
// dias em janeiro e 10 em fevereiro. Para meses já encerrados o recorte é o
// último dia do mês; "now" só entra no mês corrente.
func activeDaysInMonth(month, start, end time.Time) int {
	lower := monthStart(month).AddDate(0, 0, -1) // último dia do mês anterior
	if start.After(lower) {
		lower = start
	}

	upper := monthEnd(month)
	if end.Before(upper) {
		upper = end
	}

	days := int(upper.Sub(lower).Hours() / 24)
	if days < 0 {
		return 0
	}

	return days
}
