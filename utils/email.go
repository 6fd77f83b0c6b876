package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type ReceiptItem struct {
	Title    string
	Quantity int
	Subtotal int
}

// ReceiptData feeds the transaction receipt email template.
type ReceiptData struct {
	Name          string
	InvoiceId     string
	PaymentMethod string
	Amount        int
	Items         []ReceiptItem
	PaidAt        string
}

const receiptTemplate = `
<h2>Payment confirmed</h2>
<p>Hi {{.Name}}, your booking {{.InvoiceId}} has been confirmed.</p>
<table>
  {{range .Items}}
  <tr><td>{{.Title}}</td><td>x{{.Quantity}}</td><td>Rp {{.Subtotal}}</td></tr>
  {{end}}
</table>
<p>Total: Rp {{.Amount}} via {{.PaymentMethod}} on {{.PaidAt}}</p>
`

// SendReceiptEmail sends the booking receipt. Callers run it in a
// goroutine; a send failure is logged, never surfaced to the request.
func SendReceiptEmail(to string, data ReceiptData) {
	tmpl, err := template.New("receipt").Parse(receiptTemplate)
	if err != nil {
		log.Printf("Failed to parse receipt template: %v", err)
		return
	}

	var htmlBody bytes.Buffer
	if err := tmpl.Execute(&htmlBody, data); err != nil {
		log.Printf("Failed to render receipt template: %v", err)
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "TravelBook <no-reply@travelbook.example>")
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Booking confirmed - %s", data.InvoiceId))
	m.SetBody("text/html", htmlBody.String())

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}
	d := gomail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send receipt email to %s: %v", to, err)
	}
}
