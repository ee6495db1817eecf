package mail

import (
	"fmt"

	"github.com/festivepros/inquiry/internal/inquiry"
)

// InquiryEmailHTML returns the HTML body for a relayed product inquiry.
// Interpolation is deliberately permissive: missing fields render as empty
// text, except the optional phone number which falls back to "Not provided".
func InquiryEmailHTML(p inquiry.Payload) string {
	productInfo := ""
	if p.Product != nil {
		productInfo = fmt.Sprintf(`
            <h3>Product Details:</h3>
            <p>Name: %s</p>
            <p>Price: $%v</p>
        `, p.Product.Name, p.Product.Price)
	}

	return fmt.Sprintf(`
            <h2>New Product Inquiry</h2>
            <h3>Customer Information:</h3>
            <p>Name: %s %s</p>
            <p>Email: %s</p>
            <p>Phone: %s</p>
            <p>Preferred Contact: %s</p>
            <p>State: %s</p>
            <h3>Message:</h3>
            <p>%s</p>
            %s
        `,
		p.FirstName, p.LastName,
		p.Email,
		phoneOrFallback(p.PhoneNumber),
		p.PreferredContact,
		p.State,
		p.Message,
		productInfo,
	)
}

// InquiryEmailText returns the plain-text fallback body for a relayed
// product inquiry.
func InquiryEmailText(p inquiry.Payload) string {
	body := fmt.Sprintf(`New Product Inquiry

Customer Information:
Name: %s %s
Email: %s
Phone: %s
Preferred Contact: %s
State: %s

Message:
%s
`,
		p.FirstName, p.LastName,
		p.Email,
		phoneOrFallback(p.PhoneNumber),
		p.PreferredContact,
		p.State,
		p.Message,
	)

	if p.Product != nil {
		body += fmt.Sprintf(`
Product Details:
Name: %s
Price: $%v
`, p.Product.Name, p.Product.Price)
	}

	return body
}

func phoneOrFallback(phone string) string {
	if phone == "" {
		return "Not provided"
	}
	return phone
}
