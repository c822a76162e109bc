package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"secure_solicitudes/internal/model"
	"secure_solicitudes/internal/repository"
)

// CertificateLookup builds a certificate record for a solicitud.
// Implementations never fail: upstream errors are folded into the record.
type CertificateLookup interface {
	Lookup(ctx context.Context, referenceID int64, displayName string) model.Certificate
}

// SolicitudService defines the solicitud lifecycle
type SolicitudService interface {
	CreateSolicitud(ctx context.Context, req model.CreateSolicitudRequest) (*model.Solicitud, error)
	GetSolicitud(ctx context.Context, id int64) (*model.Solicitud, error)
	UpdateEstado(ctx context.Context, id int64, req model.UpdateEstadoRequest) (*model.EstadoResponse, error)
}

type solicitudService struct {
	repo         repository.SolicitudRepository
	certificates CertificateLookup
	logger       *slog.Logger
}

// NewSolicitudService creates a new SolicitudService
func NewSolicitudService(repo repository.SolicitudRepository, certificates CertificateLookup, logger *slog.Logger) SolicitudService {
	return &solicitudService{
		repo:         repo,
		certificates: certificates,
		logger:       logger.With(slog.String("component", "solicitud_service")),
	}
}

// CreateSolicitud persists a new solicitud in estado "pendiente", then attaches a certificate.
// When the certificate write fails the row is kept without certificate and the error is returned.
func (s *solicitudService) CreateSolicitud(ctx context.Context, req model.CreateSolicitudRequest) (*model.Solicitud, error) {
	if req.Tipo == nil || req.UsuarioID == nil || req.Detalle == nil || req.Username == nil {
		return nil, fmt.Errorf("%w: missing required fields (tipo, usuario_id, detalle, username)", ErrValidation)
	}

	solicitud := &model.Solicitud{
		Tipo:      *req.Tipo,
		UsuarioID: *req.UsuarioID,
		Estado:    model.EstadoPendiente,
		Detalle:   *req.Detalle,
		Username:  *req.Username,
	}
	if err := s.repo.Create(ctx, solicitud); err != nil {
		return nil, fmt.Errorf("failed to create solicitud in repo: %w", err)
	}

	cert := s.certificates.Lookup(ctx, solicitud.ID, solicitud.Username)
	if err := s.repo.UpdateCertificado(ctx, solicitud.ID, &cert); err != nil {
		s.logger.Error("solicitud created without certificado",
			slog.Int64("solicitud_id", solicitud.ID),
			slog.String("err", err.Error()))
		return nil, fmt.Errorf("failed to attach certificado to solicitud %d: %w", solicitud.ID, err)
	}
	solicitud.Certificado = &cert
	return solicitud, nil
}

// GetSolicitud re-runs the certificate lookup on every read
func (s *solicitudService) GetSolicitud(ctx context.Context, id int64) (*model.Solicitud, error) {
	solicitud, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find solicitud by ID: %w", err)
	}
	if solicitud == nil {
		return nil, ErrSolicitudNotFound
	}

	cert := s.certificates.Lookup(ctx, solicitud.ID, solicitud.Username)
	solicitud.Certificado = &cert

	// Refreshing the stored copy is best-effort; the read itself already succeeded.
	if err := s.repo.UpdateCertificado(ctx, solicitud.ID, &cert); err != nil {
		s.logger.Warn("failed to refresh stored certificado",
			slog.Int64("solicitud_id", solicitud.ID),
			slog.String("err", err.Error()))
	}
	return solicitud, nil
}

// UpdateEstado overwrites estado with any string, there is no transition graph
func (s *solicitudService) UpdateEstado(ctx context.Context, id int64, req model.UpdateEstadoRequest) (*model.EstadoResponse, error) {
	if req.Estado == nil {
		return nil, fmt.Errorf(`%w: missing "estado" field`, ErrValidation)
	}

	solicitud, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find solicitud for update: %w", err)
	}
	if solicitud == nil {
		return nil, ErrSolicitudNotFound
	}

	if err := s.repo.UpdateEstado(ctx, id, *req.Estado); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSolicitudNotFound
		}
		return nil, fmt.Errorf("failed to update estado in repo: %w", err)
	}
	return &model.EstadoResponse{ID: solicitud.ID, Estado: *req.Estado}, nil
}
