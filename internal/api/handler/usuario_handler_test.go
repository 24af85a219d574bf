package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/salonvale/salon-system/internal/core/domain"
	"github.com/salonvale/salon-system/internal/core/ports"
)

type stubUsuarioService struct {
	listFn   func(ctx context.Context) ([]domain.Usuario, error)
	getFn    func(ctx context.Context, id int) (*domain.Usuario, error)
	createFn func(ctx context.Context, input ports.CreateUsuarioInput) (*domain.Usuario, error)
	updateFn func(ctx context.Context, pathID int, input ports.UpdateUsuarioInput) (*domain.Usuario, error)
	deleteFn func(ctx context.Context, id int) error
}

func (s *stubUsuarioService) List(ctx context.Context) ([]domain.Usuario, error) {
	return s.listFn(ctx)
}

func (s *stubUsuarioService) Get(ctx context.Context, id int) (*domain.Usuario, error) {
	return s.getFn(ctx, id)
}

func (s *stubUsuarioService) Create(ctx context.Context, input ports.CreateUsuarioInput) (*domain.Usuario, error) {
	return s.createFn(ctx, input)
}

func (s *stubUsuarioService) Update(ctx context.Context, pathID int, input ports.UpdateUsuarioInput) (*domain.Usuario, error) {
	return s.updateFn(ctx, pathID, input)
}

func (s *stubUsuarioService) Delete(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

func TestUsuarioHandler_List(t *testing.T) {
	e := echo.New()
	stub := &stubUsuarioService{
		listFn: func(ctx context.Context) ([]domain.Usuario, error) {
			return []domain.Usuario{{ID: 1, Nombre: "Ana", Rol: "cliente"}}, nil
		},
	}
	handler := NewUsuarioHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/usuarios", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["nombre"] != "Ana" || resp[0]["id_usuario"] != float64(1) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, ok := resp[0]["contrasena"]; ok {
		t.Fatalf("contrasena leaked into the response")
	}
}

func TestUsuarioHandler_Get_BadID(t *testing.T) {
	e := echo.New()
	stub := &stubUsuarioService{
		getFn: func(ctx context.Context, id int) (*domain.Usuario, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewUsuarioHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/usuarios/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.Get(c)
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUsuarioHandler_Get_NotFound(t *testing.T) {
	e := echo.New()
	stub := &stubUsuarioService{
		getFn: func(ctx context.Context, id int) (*domain.Usuario, error) {
			return nil, &domain.NotFoundError{Recurso: "El usuario", ID: id}
		},
	}
	handler := NewUsuarioHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/usuarios/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := handler.Get(c)
	var nfErr *domain.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nfErr.ID != 99 {
		t.Fatalf("id = %d, want 99", nfErr.ID)
	}
}

func TestUsuarioHandler_Create_Success(t *testing.T) {
	e := echo.New()
	stub := &stubUsuarioService{
		createFn: func(ctx context.Context, input ports.CreateUsuarioInput) (*domain.Usuario, error) {
			if input.Nombre != "Ana" || input.Rol != "cliente" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Usuario{ID: 5, Nombre: input.Nombre, Correo: input.Correo, Rol: input.Rol}, nil
		},
	}
	handler := NewUsuarioHandler(stub)

	body := strings.NewReader(`{"nombre":"Ana","correo":"ana@salon.com","contrasena":"secreta1","rol":"cliente"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/usuarios", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/api/usuarios/5" {
		t.Fatalf("Location = %q", loc)
	}
}

func TestUsuarioHandler_Create_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubUsuarioService{
		createFn: func(ctx context.Context, input ports.CreateUsuarioInput) (*domain.Usuario, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewUsuarioHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/usuarios", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUsuarioHandler_Update_PassesBodyID(t *testing.T) {
	e := echo.New()
	stub := &stubUsuarioService{
		updateFn: func(ctx context.Context, pathID int, input ports.UpdateUsuarioInput) (*domain.Usuario, error) {
			if pathID != 3 {
				t.Fatalf("pathID = %d, want 3", pathID)
			}
			if input.ID != 3 {
				t.Fatalf("body id = %d, want 3", input.ID)
			}
			return &domain.Usuario{ID: 3, Nombre: input.Nombre}, nil
		},
	}
	handler := NewUsuarioHandler(stub)

	body := strings.NewReader(`{"id_usuario":3,"nombre":"Ana Maria","correo":"ana@salon.com","rol":"cliente"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/usuarios/3", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUsuarioHandler_Delete(t *testing.T) {
	e := echo.New()
	deleted := 0
	stub := &stubUsuarioService{
		deleteFn: func(ctx context.Context, id int) error {
			deleted = id
			return nil
		},
	}
	handler := NewUsuarioHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/usuarios/4", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("4")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != 4 {
		t.Fatalf("deleted id = %d, want 4", deleted)
	}
}
