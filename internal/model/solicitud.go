package model

import "time"

const (
	EstadoPendiente = "pendiente"

	// FechaLayout is how solicitud timestamps are rendered in responses
	FechaLayout = "2006-01-02 15:04:05"
)

// Solicitud is a user-submitted request tracked through free-form state strings
type Solicitud struct {
	ID          int64
	Tipo        string
	UsuarioID   int
	Estado      string
	Fecha       time.Time
	Detalle     string
	Username    string
	Certificado *Certificate
}

// SolicitudResponse is the JSON shape returned for a solicitud
type SolicitudResponse struct {
	ID          int64        `json:"id"`
	Tipo        string       `json:"tipo"`
	UsuarioID   int          `json:"usuario_id"`
	Estado      string       `json:"estado"`
	Fecha       string       `json:"fecha"`
	Detalle     string       `json:"detalle"`
	Username    string       `json:"username"`
	Certificado *Certificate `json:"certificado,omitempty"`
}

// ToResponse renders the solicitud for the HTTP layer
func (s *Solicitud) ToResponse() SolicitudResponse {
	return SolicitudResponse{
		ID:          s.ID,
		Tipo:        s.Tipo,
		UsuarioID:   s.UsuarioID,
		Estado:      s.Estado,
		Fecha:       s.Fecha.Format(FechaLayout),
		Detalle:     s.Detalle,
		Username:    s.Username,
		Certificado: s.Certificado,
	}
}

// CreateSolicitudRequest is used for creating a new solicitud
type CreateSolicitudRequest struct {
	Tipo      *string `json:"tipo"`
	UsuarioID *int    `json:"usuario_id"`
	Detalle   *string `json:"detalle"`
	Username  *string `json:"username"`
}

// UpdateEstadoRequest carries an arbitrary new estado
type UpdateEstadoRequest struct {
	Estado *string `json:"estado"`
}

// EstadoResponse is the minimal pair returned after a state change
type EstadoResponse struct {
	ID     int64  `json:"id"`
	Estado string `json:"estado"`
}
