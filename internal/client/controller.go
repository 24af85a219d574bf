package client

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/salonvale/salon-system/internal/core/domain"
)

// Fase is the form lifecycle state of a controller.
type Fase int

const (
	FaseIdle Fase = iota
	FaseCreando
	FaseEditando
	FaseEnviando
)

func (f Fase) String() string {
	switch f {
	case FaseCreando:
		return "creando"
	case FaseEditando:
		return "editando"
	case FaseEnviando:
		return "enviando"
	default:
		return "idle"
	}
}

var errSinCitaSeleccionada = errors.New("no hay una cita seleccionada")

// CitaForm holds the editable fields of the cita form. Fecha is the date
// input ("2006-01-02") and Hora the 24-hour time input ("15:04"); the wire
// conversion to the 12-hour form happens only on submit.
type CitaForm struct {
	IDCliente     int
	IDTrabajador  int
	IDServicio    int
	Fecha         string
	Hora          string
	Estado        string
	Observaciones string
}

// CitaController drives the appointment form: idle → creando|editando →
// enviando → idle, plus an independent delete flow gated by confirmation.
type CitaController struct {
	client *Client
	state  *State

	fase       Fase
	editingID  int
	deletingID int

	Form CitaForm
}

func NewCitaController(c *Client, s *State) *CitaController {
	return &CitaController{client: c, state: s}
}

func (ct *CitaController) Fase() Fase      { return ct.fase }
func (ct *CitaController) EditingID() int  { return ct.editingID }
func (ct *CitaController) DeletingID() int { return ct.deletingID }

// OpenCreate resets the form for a new cita.
func (ct *CitaController) OpenCreate() {
	ct.Form = CitaForm{Estado: domain.CitaPendiente}
	ct.editingID = 0
	ct.fase = FaseCreando
}

// OpenEdit loads an existing cita into the form, converting the stored
// 12-hour time back to the 24-hour input value.
func (ct *CitaController) OpenEdit(id int) error {
	cita, ok := ct.state.Cita(id)
	if !ok {
		return &domain.NotFoundError{Recurso: "La cita", ID: id}
	}

	hora := ""
	if cita.HoraCita != "" {
		h, err := domain.Hora24(cita.HoraCita)
		if err != nil {
			return err
		}
		hora = h
	}

	ct.Form = CitaForm{
		IDCliente:     cita.IDCliente,
		IDTrabajador:  cita.IDTrabajador,
		IDServicio:    cita.IDServicio,
		Fecha:         cita.FechaCita.UTC().Format("2006-01-02"),
		Hora:          hora,
		Estado:        cita.Estado,
		Observaciones: cita.Observaciones,
	}
	ct.editingID = id
	ct.fase = FaseEditando
	return nil
}

// Submit validates the form, assembles the wire payload and issues the
// create or update call. On success the citas collection is reloaded and the
// form closes; on failure the form stays open with the error surfaced.
func (ct *CitaController) Submit(ctx context.Context) error {
	if ct.fase != FaseCreando && ct.fase != FaseEditando {
		return errors.New("el formulario de cita no está abierto")
	}
	faseAnterior := ct.fase

	if err := ct.validar(); err != nil {
		return err
	}

	hora12, err := domain.Hora12(ct.Form.Hora)
	if err != nil {
		return domain.Validation("La hora de la cita no es válida")
	}
	fechaCita, err := time.Parse("2006-01-02 15:04", ct.Form.Fecha+" "+ct.Form.Hora)
	if err != nil {
		return domain.Validation("La fecha de la cita no es válida")
	}

	payload := CitaPayload{
		IDCita:        ct.editingID,
		IDCliente:     ct.Form.IDCliente,
		IDTrabajador:  ct.Form.IDTrabajador,
		IDServicio:    ct.Form.IDServicio,
		FechaCita:     fechaCita.UTC(),
		HoraCita:      hora12,
		Estado:        ct.Form.Estado,
		Observaciones: ct.Form.Observaciones,
	}
	if ct.editingID > 0 {
		if existente, ok := ct.state.Cita(ct.editingID); ok {
			payload.FechaCreacion = existente.FechaCreacion
		}
	}

	ct.fase = FaseEnviando
	if ct.editingID > 0 {
		_, err = ct.client.UpdateCita(ctx, ct.editingID, payload)
	} else {
		_, err = ct.client.CreateCita(ctx, payload)
	}
	if err != nil {
		ct.fase = faseAnterior
		return err
	}

	ct.fase = FaseIdle
	ct.editingID = 0
	ct.Form = CitaForm{}
	return ct.state.ReloadCitas(ctx, ct.client)
}

// Cancel closes the form without submitting.
func (ct *CitaController) Cancel() {
	ct.fase = FaseIdle
	ct.editingID = 0
	ct.Form = CitaForm{}
}

// RequestDelete marks a cita for deletion pending confirmation.
func (ct *CitaController) RequestDelete(id int) { ct.deletingID = id }

// CancelDelete clears the pending deletion target.
func (ct *CitaController) CancelDelete() { ct.deletingID = 0 }

// ConfirmDelete issues the delete call for the pending target. The target is
// reset on success and on failure alike.
func (ct *CitaController) ConfirmDelete(ctx context.Context) error {
	if ct.deletingID == 0 {
		return errSinCitaSeleccionada
	}
	id := ct.deletingID
	ct.deletingID = 0

	if err := ct.client.DeleteCita(ctx, id); err != nil {
		return err
	}
	return ct.state.ReloadCitas(ctx, ct.client)
}

func (ct *CitaController) validar() error {
	if ct.Form.IDCliente <= 0 {
		return domain.Validation("Por favor selecciona un cliente válido")
	}
	if ct.Form.IDTrabajador <= 0 {
		return domain.Validation("Por favor selecciona un trabajador válido")
	}
	if ct.Form.IDServicio <= 0 {
		return domain.Validation("Por favor selecciona un servicio válido")
	}
	if strings.TrimSpace(ct.Form.Fecha) == "" {
		return domain.Validation("Por favor selecciona una fecha para la cita")
	}
	if strings.TrimSpace(ct.Form.Hora) == "" {
		return domain.Validation("Por favor selecciona una hora para la cita")
	}
	if strings.TrimSpace(ct.Form.Estado) == "" {
		return domain.Validation("Por favor selecciona un estado para la cita")
	}
	return nil
}

// FacturaForm holds the editable fields of the factura form. FechaEmision is
// the date input ("2006-01-02"). ClienteFiltro narrows the selectable citas
// without being part of the payload.
type FacturaForm struct {
	IDCita        int
	Total         float64
	MetodoPago    string
	FechaEmision  string
	ClienteFiltro int
}

// FacturaController mirrors CitaController for invoices.
type FacturaController struct {
	client *Client
	state  *State

	fase       Fase
	editingID  int
	deletingID int

	Form FacturaForm
}

func NewFacturaController(c *Client, s *State) *FacturaController {
	return &FacturaController{client: c, state: s}
}

func (fc *FacturaController) Fase() Fase      { return fc.fase }
func (fc *FacturaController) EditingID() int  { return fc.editingID }
func (fc *FacturaController) DeletingID() int { return fc.deletingID }

// CitaOptions lists the selectable citas for the form, narrowed by the
// client filter when one is chosen.
func (fc *FacturaController) CitaOptions() []CitaOption {
	return fc.state.CitaOptions(fc.Form.ClienteFiltro)
}

func (fc *FacturaController) OpenCreate() {
	fc.Form = FacturaForm{}
	fc.editingID = 0
	fc.fase = FaseCreando
}

// OpenEdit loads an existing factura, presetting the client filter from the
// associated cita so the selected option is visible.
func (fc *FacturaController) OpenEdit(id int) error {
	factura, ok := fc.state.Factura(id)
	if !ok {
		return &domain.NotFoundError{Recurso: "La factura", ID: id}
	}

	form := FacturaForm{
		IDCita:       factura.IDCita,
		Total:        factura.Total,
		MetodoPago:   factura.MetodoPago,
		FechaEmision: factura.FechaEmision.UTC().Format("2006-01-02"),
	}
	if cita, ok := fc.state.Refs.Cita(factura.IDCita); ok {
		form.ClienteFiltro = cita.IDCliente
	}

	fc.Form = form
	fc.editingID = id
	fc.fase = FaseEditando
	return nil
}

func (fc *FacturaController) Submit(ctx context.Context) error {
	if fc.fase != FaseCreando && fc.fase != FaseEditando {
		return errors.New("el formulario de factura no está abierto")
	}
	faseAnterior := fc.fase

	if err := fc.validar(); err != nil {
		return err
	}

	fechaEmision, err := time.Parse("2006-01-02", fc.Form.FechaEmision)
	if err != nil {
		return domain.Validation("La fecha de emisión no es válida")
	}

	payload := FacturaPayload{
		IDFactura:    fc.editingID,
		IDCita:       fc.Form.IDCita,
		Total:        fc.Form.Total,
		MetodoPago:   fc.Form.MetodoPago,
		FechaEmision: fechaEmision.UTC(),
	}

	fc.fase = FaseEnviando
	if fc.editingID > 0 {
		_, err = fc.client.UpdateFactura(ctx, fc.editingID, payload)
	} else {
		_, err = fc.client.CreateFactura(ctx, payload)
	}
	if err != nil {
		fc.fase = faseAnterior
		return err
	}

	fc.fase = FaseIdle
	fc.editingID = 0
	fc.Form = FacturaForm{}
	return fc.state.ReloadFacturas(ctx, fc.client)
}

func (fc *FacturaController) Cancel() {
	fc.fase = FaseIdle
	fc.editingID = 0
	fc.Form = FacturaForm{}
}

func (fc *FacturaController) RequestDelete(id int) { fc.deletingID = id }

func (fc *FacturaController) CancelDelete() { fc.deletingID = 0 }

func (fc *FacturaController) ConfirmDelete(ctx context.Context) error {
	if fc.deletingID == 0 {
		return errors.New("no hay una factura seleccionada")
	}
	id := fc.deletingID
	fc.deletingID = 0

	if err := fc.client.DeleteFactura(ctx, id); err != nil {
		return err
	}
	return fc.state.ReloadFacturas(ctx, fc.client)
}

func (fc *FacturaController) validar() error {
	if fc.Form.IDCita <= 0 {
		return domain.Validation("Por favor selecciona una cita válida")
	}
	if fc.Form.Total <= 0 {
		return domain.Validation("El total debe ser mayor a 0")
	}
	if strings.TrimSpace(fc.Form.MetodoPago) == "" {
		return domain.Validation("Por favor selecciona un método de pago")
	}
	if strings.TrimSpace(fc.Form.FechaEmision) == "" {
		return domain.Validation("Por favor selecciona una fecha de emisión")
	}
	return nil
}
