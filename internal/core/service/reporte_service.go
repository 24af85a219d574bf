package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/salonvale/salon-system/internal/core/domain"
	"github.com/salonvale/salon-system/internal/core/ports"
	"github.com/salonvale/salon-system/internal/refcache"
)

// ReporteService derives the daily views. Filtering compares only the date
// portion of the stored timestamps, so a cita at any hour of the day counts.
type ReporteService struct {
	usuarios  ports.UsuarioRepository
	servicios ports.ServicioRepository
	citas     ports.CitaRepository
	facturas  ports.FacturaRepository
	logger    zerolog.Logger
}

func NewReporteService(usuarios ports.UsuarioRepository, servicios ports.ServicioRepository, citas ports.CitaRepository, facturas ports.FacturaRepository, logger zerolog.Logger) *ReporteService {
	return &ReporteService{usuarios: usuarios, servicios: servicios, citas: citas, facturas: facturas, logger: logger}
}

func (s *ReporteService) Diario(ctx context.Context, fecha string) (*domain.ReporteDiario, *refcache.Cache, error) {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(fecha)); err != nil {
		return nil, nil, domain.Validation("La fecha del reporte debe tener el formato AAAA-MM-DD")
	}

	usuarios, err := s.usuarios.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	servicios, err := s.servicios.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	citas, err := s.citas.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	facturas, err := s.facturas.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	rep := &domain.ReporteDiario{
		Fecha:     fecha,
		Servicios: servicios,
		Citas:     []domain.Cita{},
		Facturas:  []domain.Factura{},
	}

	for _, c := range citas {
		if !domain.MismaFecha(c.FechaCita, fecha) {
			continue
		}
		rep.Citas = append(rep.Citas, c)
		if strings.EqualFold(c.Estado, domain.CitaCompletada) {
			rep.CitasCompletadas++
		}
	}
	rep.TotalCitas = len(rep.Citas)

	for _, f := range facturas {
		if !domain.MismaFecha(f.FechaEmision, fecha) {
			continue
		}
		rep.Facturas = append(rep.Facturas, f)
		rep.VentasTotales += f.Total
	}
	rep.FacturasGeneradas = len(rep.Facturas)

	// Index the full collections: the day's facturas may reference citas
	// from other days, and those still need labels.
	index := refcache.New()
	index.RebuildUsuarios(usuarios)
	index.RebuildServicios(servicios)
	index.RebuildCitas(citas)

	s.logger.Debug().Str("fecha", fecha).
		Int("total_citas", rep.TotalCitas).
		Int("facturas_generadas", rep.FacturasGeneradas).
		Msg("daily report built")

	return rep, index, nil
}
