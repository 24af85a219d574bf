package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			w.Write([]byte(`{"token":"abc.def.ghi","usuario":{"id_usuario":1,"nombre":"Valentina","correo":"vale@salon.com","rol":"administrador"}}`))
		case "/api/usuarios":
			if got := r.Header.Get("Authorization"); got != "Bearer abc.def.ghi" {
				t.Errorf("Authorization = %q", got)
			}
			w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	sesion, err := c.Login(context.Background(), "vale@salon.com", "secreta")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sesion.Nombre != "Valentina" || sesion.Rol != "administrador" {
		t.Errorf("sesion = %+v", sesion)
	}
	if sesion.FechaLogin.IsZero() {
		t.Error("FechaLogin not stamped")
	}
	if _, err := c.ListUsuarios(context.Background()); err != nil {
		t.Fatalf("ListUsuarios: %v", err)
	}
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"El usuario con ID 99 no existe"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListUsuarios(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want APIError", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", apiErr.StatusCode)
	}
	if apiErr.Mensaje != "El usuario con ID 99 no existe" {
		t.Errorf("mensaje = %q", apiErr.Mensaje)
	}
}

func TestClientGenericErrorWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListCitas(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want APIError", err)
	}
	if apiErr.Mensaje != "Error 502 del servidor" {
		t.Errorf("mensaje = %q", apiErr.Mensaje)
	}
}

func TestClientConnectionRefusedIsErrRed(t *testing.T) {
	// Grab a port that nothing listens on.
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := New(addr).ListServicios(context.Background())
	if !errors.Is(err, ErrRed) {
		t.Fatalf("error = %v, want ErrRed", err)
	}
}
