package inquiry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_Submit(t *testing.T) {
	var received Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/mail" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	p := Payload{
		FormData: FormData{FirstName: "Ann", LastName: "Lee", Email: "ann@x.com", Message: "Hi"},
		Product:  &ProductSnapshot{Name: "Fir", Price: 99.99},
	}
	if err := c.Submit(context.Background(), p); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if received.FirstName != "Ann" || received.Product == nil || received.Product.Name != "Fir" {
		t.Errorf("server received %+v", received)
	}
}

func TestClient_SubmitServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Failed to send email","details":"auth failed"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Submit(context.Background(), Payload{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Failed to send email") || !strings.Contains(err.Error(), "auth failed") {
		t.Errorf("error = %q, want server message included", err)
	}
}

func TestClient_SelectedProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products/selected" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Fir","price":99.99}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	p, err := c.SelectedProduct(context.Background())
	if err != nil {
		t.Fatalf("SelectedProduct: %v", err)
	}
	if p == nil || p.Name != "Fir" || p.Price != 99.99 {
		t.Errorf("got %+v", p)
	}
}

func TestClient_SelectedProduct_NoneSelected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no product selected", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	p, err := c.SelectedProduct(context.Background())
	if err != nil {
		t.Fatalf("SelectedProduct: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil product, got %+v", p)
	}
}
