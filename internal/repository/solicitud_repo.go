package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"secure_solicitudes/internal/model"

	"github.com/jackc/pgx/v5"
)

// SolicitudRepository defines operations for solicitud data
type SolicitudRepository interface {
	Create(ctx context.Context, s *model.Solicitud) error
	FindByID(ctx context.Context, id int64) (*model.Solicitud, error)
	UpdateCertificado(ctx context.Context, id int64, cert *model.Certificate) error
	UpdateEstado(ctx context.Context, id int64, estado string) error
}

type solicitudRepository struct {
	db DBTX
}

// NewSolicitudRepository creates a new SolicitudRepository
func NewSolicitudRepository(db DBTX) SolicitudRepository {
	return &solicitudRepository{db: db}
}

// Create inserts a new solicitud; id and fecha are assigned by the database
func (r *solicitudRepository) Create(ctx context.Context, s *model.Solicitud) error {
	sql := `INSERT INTO solicitudes (tipo, usuario_id, estado, detalle, username)
            VALUES ($1, $2, $3, $4, $5) RETURNING id, fecha`
	err := r.db.QueryRow(ctx, sql, s.Tipo, s.UsuarioID, s.Estado, s.Detalle, s.Username).Scan(&s.ID, &s.Fecha)
	if err != nil {
		return fmt.Errorf("failed to create solicitud: %w", err)
	}
	return nil
}

// FindByID retrieves a solicitud by its ID
func (r *solicitudRepository) FindByID(ctx context.Context, id int64) (*model.Solicitud, error) {
	s := &model.Solicitud{}
	var certificado []byte
	sql := `SELECT id, tipo, usuario_id, estado, fecha, detalle, username, certificado
            FROM solicitudes WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&s.ID, &s.Tipo, &s.UsuarioID, &s.Estado, &s.Fecha, &s.Detalle, &s.Username, &certificado,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find solicitud by ID: %w", err)
	}
	if len(certificado) > 0 {
		var cert model.Certificate
		if err := json.Unmarshal(certificado, &cert); err != nil {
			return nil, fmt.Errorf("failed to decode stored certificado: %w", err)
		}
		s.Certificado = &cert
	}
	return s, nil
}

// UpdateCertificado stores the certificate record on the solicitud row
func (r *solicitudRepository) UpdateCertificado(ctx context.Context, id int64, cert *model.Certificate) error {
	payload, err := json.Marshal(cert)
	if err != nil {
		return fmt.Errorf("failed to encode certificado: %w", err)
	}
	cmdTag, err := r.db.Exec(ctx, `UPDATE solicitudes SET certificado = $1 WHERE id = $2`, payload, id)
	if err != nil {
		return fmt.Errorf("failed to update certificado: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateEstado overwrites the estado unconditionally; there is no transition graph
func (r *solicitudRepository) UpdateEstado(ctx context.Context, id int64, estado string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE solicitudes SET estado = $1 WHERE id = $2`, estado, id)
	if err != nil {
		return fmt.Errorf("failed to update estado: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
