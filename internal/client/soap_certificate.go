package client

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"secure_solicitudes/internal/model"
)

const (
	soapTimeout    = 10 * time.Second
	soapAddAction  = `"http://tempuri.org/Add"`
	soapAddend     = 10
	soapErrPrefix  = "Error SOAP: "
	maxSOAPBodyLen = 1 << 20
)

type soapEnvelope struct {
	XMLName xml.Name `xml:"soap:Envelope"`
	XSI     string   `xml:"xmlns:xsi,attr"`
	XSD     string   `xml:"xmlns:xsd,attr"`
	Soap    string   `xml:"xmlns:soap,attr"`
	Body    soapBody `xml:"soap:Body"`
}

type soapBody struct {
	Add addRequest
}

type addRequest struct {
	XMLName xml.Name `xml:"http://tempuri.org/ Add"`
	IntA    int64    `xml:"intA"`
	IntB    int64    `xml:"intB"`
}

// matched by local name, the prefix used by the server does not matter
type soapResponseEnvelope struct {
	Body struct {
		Fault       *soapFault   `xml:"Fault"`
		AddResponse *addResponse `xml:"AddResponse"`
	} `xml:"Body"`
}

type soapFault struct {
	Code   string `xml:"faultcode"`
	String string `xml:"faultstring"`
}

type addResponse struct {
	AddResult string `xml:"AddResult"`
}

// SOAPCertificateClient builds certificate records from the calculator Add operation
type SOAPCertificateClient struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewSOAPCertificateClient creates a lookup client for the given SOAP endpoint
func NewSOAPCertificateClient(endpoint string, logger *slog.Logger) *SOAPCertificateClient {
	return &SOAPCertificateClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: soapTimeout},
		logger:     logger.With(slog.String("component", "soap_certificate")),
		now:        time.Now,
	}
}

// Lookup never fails. Any upstream problem ends up in ResultadoSOAP as "Error SOAP: <cause>".
func (c *SOAPCertificateClient) Lookup(ctx context.Context, referenceID int64, displayName string) model.Certificate {
	cert := model.Certificate{
		CertificadoID: "CERT-" + strconv.FormatInt(referenceID, 10),
		Nombre:        displayName,
		FechaEmision:  c.now().Format("2006-01-02"),
		Estado:        model.CertificateEstadoValido,
		Detalle:       model.CertificateDetalle,
	}

	result, err := c.add(ctx, referenceID, soapAddend)
	if err != nil {
		c.logger.Warn("soap lookup degraded",
			slog.Int64("reference_id", referenceID),
			slog.String("err", err.Error()))
		cert.ResultadoSOAP = soapErrPrefix + err.Error()
		return cert
	}
	cert.ResultadoSOAP = result
	return cert
}

func (c *SOAPCertificateClient) add(ctx context.Context, a, b int64) (int64, error) {
	payload, err := xml.Marshal(soapEnvelope{
		XSI:  "http://www.w3.org/2001/XMLSchema-instance",
		XSD:  "http://www.w3.org/2001/XMLSchema",
		Soap: "http://schemas.xmlsoap.org/soap/envelope/",
		Body: soapBody{Add: addRequest{IntA: a, IntB: b}},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to encode envelope: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
		bytes.NewReader(append([]byte(xml.Header), payload...)))
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", soapAddAction)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxSOAPBodyLen))
	if err != nil {
		return 0, fmt.Errorf("failed to read response: %w", err)
	}

	var env soapResponseEnvelope
	decodeErr := xml.Unmarshal(raw, &env)
	if decodeErr == nil && env.Body.Fault != nil {
		return 0, fmt.Errorf("fault %s: %s", env.Body.Fault.Code, env.Body.Fault.String)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("unexpected HTTP status %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return 0, fmt.Errorf("failed to decode envelope: %w", decodeErr)
	}
	if env.Body.AddResponse == nil {
		return 0, errors.New("response has no AddResult")
	}

	result, err := strconv.ParseInt(strings.TrimSpace(env.Body.AddResponse.AddResult), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid AddResult %q: %w", env.Body.AddResponse.AddResult, err)
	}
	return result, nil
}
