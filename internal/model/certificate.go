package model

const (
	CertificateEstadoValido = "Válido"
	CertificateDetalle      = "Certificado académico simulado para pruebas de integración."
)

// Certificate is the enrichment payload attached to a solicitud.
// ResultadoSOAP holds the numeric answer of the external service or an error string.
type Certificate struct {
	CertificadoID string `json:"certificado_id"`
	Nombre        string `json:"nombre"`
	FechaEmision  string `json:"fecha_emision"`
	Estado        string `json:"estado"`
	Detalle       string `json:"detalle"`
	ResultadoSOAP any    `json:"resultado_soap"`
}
