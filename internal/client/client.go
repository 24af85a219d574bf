// Package client is the admin console's programmatic surface: an API client,
// an application-state object with derived groupings, and the form
// controllers that drive the cita and factura workflows.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/salonvale/salon-system/internal/core/domain"
)

// ErrRed marks a transport-level failure: the request never produced an HTTP
// response. The message is the remediation text shown to the operator.
var ErrRed = errors.New("no se pudo conectar con el servidor, verifica tu conexión")

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode int
	Mensaje    string
	Causa      string
}

func (e *APIError) Error() string {
	if e.Causa != "" {
		return fmt.Sprintf("%s: %s", e.Mensaje, e.Causa)
	}
	return e.Mensaje
}

// Sesion is the persisted login record: the administrator profile plus the
// login timestamp. Its presence gates access to the admin views.
type Sesion struct {
	IDUsuario  int       `json:"id_usuario"`
	Nombre     string    `json:"nombre"`
	Correo     string    `json:"correo"`
	Telefono   string    `json:"telefono"`
	Rol        string    `json:"rol"`
	FechaLogin time.Time `json:"fecha_login"`
}

// Client talks to the salon API. Not safe for concurrent use: the admin
// console drives it from a single goroutine.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Login authenticates and stores the bearer token for subsequent calls.
func (c *Client) Login(ctx context.Context, correo, contrasena string) (*Sesion, error) {
	var resp struct {
		Token   string         `json:"token"`
		Usuario domain.Usuario `json:"usuario"`
	}
	payload := map[string]string{"correo": correo, "contrasena": contrasena}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", payload, &resp); err != nil {
		return nil, err
	}

	c.token = resp.Token
	return &Sesion{
		IDUsuario:  resp.Usuario.ID,
		Nombre:     resp.Usuario.Nombre,
		Correo:     resp.Usuario.Correo,
		Telefono:   resp.Usuario.Telefono,
		Rol:        resp.Usuario.Rol,
		FechaLogin: time.Now().UTC(),
	}, nil
}

// SetToken installs a previously issued token, restoring a stored session.
func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) ListUsuarios(ctx context.Context) ([]domain.Usuario, error) {
	var out []domain.Usuario
	err := c.do(ctx, http.MethodGet, "/api/usuarios", nil, &out)
	return out, err
}

func (c *Client) ListServicios(ctx context.Context) ([]domain.Servicio, error) {
	var out []domain.Servicio
	err := c.do(ctx, http.MethodGet, "/api/servicios", nil, &out)
	return out, err
}

func (c *Client) ListCitas(ctx context.Context) ([]domain.Cita, error) {
	var out []domain.Cita
	err := c.do(ctx, http.MethodGet, "/api/citas", nil, &out)
	return out, err
}

func (c *Client) ListFacturas(ctx context.Context) ([]domain.Factura, error) {
	var out []domain.Factura
	err := c.do(ctx, http.MethodGet, "/api/facturas", nil, &out)
	return out, err
}

func (c *Client) CreateCita(ctx context.Context, payload CitaPayload) (*domain.Cita, error) {
	var out domain.Cita
	err := c.do(ctx, http.MethodPost, "/api/citas", payload, &out)
	return &out, err
}

func (c *Client) UpdateCita(ctx context.Context, id int, payload CitaPayload) (*domain.Cita, error) {
	var out domain.Cita
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/citas/%d", id), payload, &out)
	return &out, err
}

func (c *Client) DeleteCita(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/citas/%d", id), nil, nil)
}

func (c *Client) CreateFactura(ctx context.Context, payload FacturaPayload) (*domain.Factura, error) {
	var out domain.Factura
	err := c.do(ctx, http.MethodPost, "/api/facturas", payload, &out)
	return &out, err
}

func (c *Client) UpdateFactura(ctx context.Context, id int, payload FacturaPayload) (*domain.Factura, error) {
	var out domain.Factura
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/facturas/%d", id), payload, &out)
	return &out, err
}

func (c *Client) DeleteFactura(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/facturas/%d", id), nil, nil)
}

func (c *Client) ReporteDiario(ctx context.Context, fecha string) (*domain.ReporteDiario, error) {
	var out domain.ReporteDiario
	err := c.do(ctx, http.MethodGet, "/api/reportes/diario?fecha="+fecha, nil, &out)
	return &out, err
}

// CitaPayload is the exact wire body for cita create/update. HoraCita carries
// the 12-hour display string.
type CitaPayload struct {
	IDCita        int       `json:"id_cita"`
	IDCliente     int       `json:"id_cliente"`
	IDTrabajador  int       `json:"id_trabajador"`
	IDServicio    int       `json:"id_servicio"`
	FechaCita     time.Time `json:"fecha_cita"`
	HoraCita      string    `json:"hora_cita"`
	Estado        string    `json:"estado"`
	Observaciones string    `json:"observaciones"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// FacturaPayload is the exact wire body for factura create/update.
type FacturaPayload struct {
	IDFactura    int       `json:"id_factura"`
	IDCita       int       `json:"id_cita"`
	Total        float64   `json:"total"`
	MetodoPago   string    `json:"metodo_pago"`
	FechaEmision time.Time `json:"fecha_emision"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isNetworkError(err) {
			return fmt.Errorf("%w: %v", ErrRed, err)
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// isNetworkError classifies transport failures, mirroring the connection
// heuristic the dashboard applied to fetch errors.
func isNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, indicator := range []string{"connection refused", "no such host", "network is unreachable", "connection reset"} {
		if strings.Contains(msg, indicator) {
			return true
		}
	}
	return false
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Message != "" {
		apiErr.Mensaje = envelope.Message
		apiErr.Causa = envelope.Error
	} else {
		apiErr.Mensaje = fmt.Sprintf("Error %d del servidor", resp.StatusCode)
	}
	return apiErr
}
