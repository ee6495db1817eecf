package handler

import (
	"net/http"

	"github.com/festivepros/inquiry/internal/inquiry"
	"github.com/festivepros/inquiry/internal/mail"
)

// MailSuccessResponse is the body returned when an inquiry was relayed.
type MailSuccessResponse struct {
	Success bool `json:"success"`
}

// MailErrorResponse is the body returned when relaying failed.
type MailErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// RelayInquiry handles POST /api/mail. It accepts one InquiryPayload, formats
// it into an email, and hands it to the mail-sending capability. The payload
// is never stored; it lives only for this request.
//
// No schema validation happens here beyond JSON decoding. The client form is
// expected to have validated its fields, but nothing enforces that: the
// submitted email lands unchecked in the Reply-To header, so the recipient
// mailbox must not treat it as trustworthy.
func (h *Handler) RelayInquiry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload inquiry.Payload
	if err := readJSON(r, &payload); err != nil {
		h.log.Warn().Err(err).Msg("failed to decode inquiry payload")
		writeJSON(w, http.StatusBadRequest, MailErrorResponse{
			Error:   "Failed to send email",
			Details: err.Error(),
		})
		return
	}

	msg := mail.Message{
		From:     h.cfg.Inquiry.From,
		To:       h.cfg.Inquiry.To,
		ReplyTo:  payload.Email,
		Subject:  h.cfg.Inquiry.Subject,
		HTMLBody: mail.InquiryEmailHTML(payload),
		TextBody: mail.InquiryEmailText(payload),
	}

	// Verify the transport before sending, the way the original relay did.
	// Both steps share one failure path: a 500 carrying the cause.
	if err := h.sender.Verify(ctx); err != nil {
		h.log.Error().Err(err).Msg("mail transport verification failed")
		writeJSON(w, http.StatusInternalServerError, MailErrorResponse{
			Error:   "Failed to send email",
			Details: err.Error(),
		})
		return
	}

	if err := h.sender.Send(ctx, msg); err != nil {
		h.log.Error().Err(err).Msg("failed to send inquiry email")
		writeJSON(w, http.StatusInternalServerError, MailErrorResponse{
			Error:   "Failed to send email",
			Details: err.Error(),
		})
		return
	}

	h.log.Info().
		Str("reply_to", payload.Email).
		Bool("has_product", payload.Product != nil).
		Msg("inquiry relayed")

	writeJSON(w, http.StatusOK, MailSuccessResponse{Success: true})
}
