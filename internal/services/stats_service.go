package services

import (
	"time"

	"github.com/camivalenzuela/adopciones/internal/models"
	"github.com/camivalenzuela/adopciones/internal/repository"
)

// Grafico is the chart payload the stats viewer consumes directly:
// {labels, datasets:[{label, data}]}.
type Grafico struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one series of a Grafico.
type Dataset struct {
	Label string `json:"label"`
	Data  []int  `json:"data"`
}

var nombresMes = []string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}

// StatsService builds the aggregate statistics payloads.
type StatsService struct {
	statsRepo repository.StatsRepository
}

// NewStatsService creates and returns a new StatsService.
func NewStatsService(statsRepo repository.StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

// Diario counts avisos per calendar day over the last days days,
// filling days without submissions with zero so the series is continuous.
func (s *StatsService) Diario(days int) (*Grafico, error) {
	hoy := time.Now()
	desde := hoy.AddDate(0, 0, -(days - 1))
	inicio := time.Date(desde.Year(), desde.Month(), desde.Day(), 0, 0, 0, 0, desde.Location())

	filas, err := s.statsRepo.PorDia(inicio)
	if err != nil {
		return nil, err
	}

	porDia := make(map[string]int, len(filas))
	for _, f := range filas {
		porDia[f.Dia] = f.Total
	}

	labels := make([]string, 0, days)
	data := make([]int, 0, days)
	for d := 0; d < days; d++ {
		dia := inicio.AddDate(0, 0, d).Format("2006-01-02")
		labels = append(labels, dia)
		data = append(data, porDia[dia])
	}

	return &Grafico{
		Labels:   labels,
		Datasets: []Dataset{{Label: "Avisos por día", Data: data}},
	}, nil
}

// PorTipo counts avisos per pet kind. Both canonical kinds always
// appear, even with zero avisos.
func (s *StatsService) PorTipo() (*Grafico, error) {
	filas, err := s.statsRepo.PorTipo()
	if err != nil {
		return nil, err
	}

	porTipo := make(map[string]int, len(filas))
	for _, f := range filas {
		porTipo[f.Tipo] = f.Total
	}

	labels := []string{models.TipoGato, models.TipoPerro}
	data := []int{porTipo[models.TipoGato], porTipo[models.TipoPerro]}

	return &Grafico{
		Labels:   labels,
		Datasets: []Dataset{{Label: "Avisos por tipo", Data: data}},
	}, nil
}

// Mensual counts the avisos of one year per month, all twelve months
// present.
func (s *StatsService) Mensual(year int) (*Grafico, error) {
	filas, err := s.statsRepo.PorMes(year)
	if err != nil {
		return nil, err
	}

	data := make([]int, 12)
	for _, f := range filas {
		if f.Mes >= 1 && f.Mes <= 12 {
			data[f.Mes-1] = f.Total
		}
	}

	return &Grafico{
		Labels:   nombresMes,
		Datasets: []Dataset{{Label: "Avisos por mes", Data: data}},
	}, nil
}
