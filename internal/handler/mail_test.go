package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/festivepros/inquiry/internal/config"
	"github.com/festivepros/inquiry/internal/handoff"
	"github.com/festivepros/inquiry/internal/inquiry"
	"github.com/festivepros/inquiry/internal/logger"
	"github.com/festivepros/inquiry/internal/mail"
)

type fakeSender struct {
	verifyErr error
	sendErr   error
	sent      []mail.Message
}

func (f *fakeSender) Verify(ctx context.Context) error {
	return f.verifyErr
}

func (f *fakeSender) Send(ctx context.Context, msg mail.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

type stubError string

func (e stubError) Error() string { return string(e) }

func newTestHandler(sender mail.Sender, store handoff.Store) *Handler {
	cfg := &config.Config{
		Inquiry: config.InquiryConfig{
			From:       "staff@festivepros.co",
			To:         "staff@festivepros.co",
			Subject:    "New Product Inquiry",
			HandoffKey: "selectedProduct",
		},
	}
	return New(sender, store, logger.Nop(), cfg)
}

func testPayload() inquiry.Payload {
	return inquiry.Payload{
		FormData: inquiry.FormData{
			FirstName:        "Ann",
			LastName:         "Lee",
			Email:            "ann@x.com",
			Message:          "Hi",
			PreferredContact: "email",
			State:            "PA",
		},
	}
}

func postInquiry(t *testing.T, h *Handler, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/mail", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.RelayInquiry(rec, req)
	return rec
}

func TestRelayInquiry_Success(t *testing.T) {
	sender := &fakeSender{}
	h := newTestHandler(sender, handoff.NewMemoryStore())

	rec := postInquiry(t, h, testPayload())

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp MailSuccessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false")
	}

	if len(sender.sent) != 1 {
		t.Fatalf("sender invoked %d times, want 1", len(sender.sent))
	}
	msg := sender.sent[0]
	if msg.ReplyTo != "ann@x.com" {
		t.Errorf("ReplyTo = %q, want customer email", msg.ReplyTo)
	}
	if msg.From != "staff@festivepros.co" || msg.To != "staff@festivepros.co" {
		t.Errorf("From/To = %q/%q, want fixed staff addresses", msg.From, msg.To)
	}
	if msg.Subject != "New Product Inquiry" {
		t.Errorf("Subject = %q", msg.Subject)
	}
}

func TestRelayInquiry_SendFailure(t *testing.T) {
	sender := &fakeSender{sendErr: stubError("auth failed")}
	h := newTestHandler(sender, handoff.NewMemoryStore())

	rec := postInquiry(t, h, testPayload())

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var resp MailErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Failed to send email" {
		t.Errorf("error = %q", resp.Error)
	}
	if resp.Details != "auth failed" {
		t.Errorf("details = %q, want underlying message", resp.Details)
	}
}

func TestRelayInquiry_VerifyFailure(t *testing.T) {
	sender := &fakeSender{verifyErr: stubError("connection refused")}
	h := newTestHandler(sender, handoff.NewMemoryStore())

	rec := postInquiry(t, h, testPayload())

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if len(sender.sent) != 0 {
		t.Errorf("send attempted after failed verification")
	}

	var resp MailErrorResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error != "Failed to send email" || resp.Details != "connection refused" {
		t.Errorf("response = %+v", resp)
	}
}

func TestRelayInquiry_RoundTripPreservesFields(t *testing.T) {
	sender := &fakeSender{}
	h := newTestHandler(sender, handoff.NewMemoryStore())

	payload := testPayload()
	payload.PhoneNumber = "215-555-1234"
	payload.Product = &inquiry.ProductSnapshot{
		Name:  "Fraser Fir 7ft",
		Price: 99.99,
	}

	rec := postInquiry(t, h, payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	html := sender.sent[0].HTMLBody
	for _, want := range []string{
		"Ann", "Lee", "ann@x.com", "215-555-1234", "email", "PA", "Hi",
		"Fraser Fir 7ft", "$99.99",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("email body missing %q:\n%s", want, html)
		}
	}
}

func TestRelayInquiry_MissingPhoneRendersFallback(t *testing.T) {
	sender := &fakeSender{}
	h := newTestHandler(sender, handoff.NewMemoryStore())

	rec := postInquiry(t, h, testPayload())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	if !strings.Contains(sender.sent[0].HTMLBody, "Not provided") {
		t.Error("expected phone fallback in email body")
	}
}

func TestRelayInquiry_NoProductOmitsProductSection(t *testing.T) {
	sender := &fakeSender{}
	h := newTestHandler(sender, handoff.NewMemoryStore())

	rec := postInquiry(t, h, testPayload())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	if strings.Contains(sender.sent[0].HTMLBody, "Product Details") {
		t.Error("product section rendered without a product")
	}
}

func TestRelayInquiry_MalformedBody(t *testing.T) {
	sender := &fakeSender{}
	h := newTestHandler(sender, handoff.NewMemoryStore())

	req := httptest.NewRequest("POST", "/api/mail", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.RelayInquiry(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(sender.sent) != 0 {
		t.Error("send attempted for malformed body")
	}
}
