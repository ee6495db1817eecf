package inquiry

import (
	"context"

	"github.com/festivepros/inquiry/internal/logger"
)

// Submitter delivers a completed inquiry payload to the relay endpoint.
type Submitter interface {
	Submit(ctx context.Context, p Payload) error
}

// Phase tracks a form instance through its single submission attempt.
// Transitions are monotonic: idle -> submitting -> submitted. There is no
// backward transition; a fresh Controller is a fresh form.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSubmitted
)

// View selects which screen the form front end should render.
type View int

const (
	// ViewLoading blocks until a product snapshot is available. There is no
	// error state and no timeout.
	ViewLoading View = iota
	// ViewForm renders the fields, with inline errors where present.
	ViewForm
	// ViewWait is the "processing your inquiry" screen.
	ViewWait
	// ViewDone is the terminal thank-you screen.
	ViewDone
)

// Controller owns the inquiry form state: field values, per-field validation
// errors, the selected product, and the submission state machine. It drives
// exactly one submission attempt per instance.
//
// Two independent flags replace the original form's overloaded loading
// boolean: attempted records that a submit was tried (and turns on per-field
// revalidation), inFlight records that a request is outstanding.
type Controller struct {
	product   *ProductSnapshot
	data      FormData
	errs      ErrorMap
	attempted bool
	inFlight  bool
	phase     Phase
	client    Submitter
	log       *logger.Logger
}

// NewController creates a form controller for the given product snapshot.
// A nil product leaves the form on its loading view indefinitely.
func NewController(product *ProductSnapshot, client Submitter, log *logger.Logger) *Controller {
	return &Controller{
		product: product,
		data:    NewFormData(),
		errs:    ErrorMap{},
		client:  client,
		log:     log.WithComponent("inquiry"),
	}
}

// SetField stores a field value. Phone input is masked before storing. Once a
// submit has been attempted, the touched field is revalidated immediately so
// inline errors clear as the user types.
func (c *Controller) SetField(name, value string) {
	if name == FieldPhoneNumber {
		value = FormatPhone(value)
	}
	c.data.setField(name, value)

	if c.attempted {
		if msg := ValidateField(name, value); msg != "" {
			c.errs[name] = msg
		} else {
			delete(c.errs, name)
		}
	}
}

// Submit runs one submission attempt. The whole form is validated first; if
// any field is invalid no request is made and the errors are held for inline
// display. A clean form sends the payload exactly once: further calls are
// no-ops while a request is in flight or after one has been sent, so a form
// instance can never issue a duplicate request.
//
// A transport failure is logged and returned to the caller, but the form
// itself offers no retry affordance: the phase stays at submitting.
func (c *Controller) Submit(ctx context.Context) error {
	if c.phase != PhaseIdle {
		return nil
	}

	c.attempted = true
	c.errs = ValidateAll(c.data)
	if len(c.errs) > 0 {
		return nil
	}

	c.phase = PhaseSubmitting
	c.inFlight = true
	err := c.client.Submit(ctx, c.Payload())
	c.inFlight = false

	if err != nil {
		c.log.Error().Err(err).Msg("failed to send inquiry")
		return err
	}

	c.phase = PhaseSubmitted
	return nil
}

// Payload builds the wire entity for this form: the current field values
// merged with the product snapshot, when one exists.
func (c *Controller) Payload() Payload {
	return Payload{FormData: c.data, Product: c.product}
}

// View derives the screen to render from the current state.
func (c *Controller) View() View {
	switch {
	case c.product == nil:
		return ViewLoading
	case c.phase == PhaseSubmitted:
		return ViewDone
	case c.attempted && len(c.errs) == 0:
		return ViewWait
	default:
		return ViewForm
	}
}

// Data returns a copy of the current field values.
func (c *Controller) Data() FormData {
	return c.data
}

// Errors returns the current error map.
func (c *Controller) Errors() ErrorMap {
	return c.errs
}

// Phase returns the submission phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// InFlight reports whether a request is currently outstanding.
func (c *Controller) InFlight() bool {
	return c.inFlight
}

// Product returns the product snapshot, or nil when none was handed off.
func (c *Controller) Product() *ProductSnapshot {
	return c.product
}
