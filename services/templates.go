// services/templates.go
package services

import (
	"strings"
	"text/template"
)

const bookingAdminTemplate = `NEW BOOKING RECEIVED

CLIENT DETAILS:
- Name: {{.Booking.FullName}}
- Email: {{.Booking.Email}}
- Phone: {{.Booking.Phone}}
- Service: {{.Service}}
- Session mode: {{.SessionMode}}

APPOINTMENT DETAILS:
- Date: {{.Date}}
- Time: {{.Time}}

CLIENT'S CONCERN:
{{if .Booking.Description}}{{.Booking.Description}}{{else}}(none given){{end}}

Submitted: {{.Submitted}}
Reference: {{.Booking.ID}}

Please check the admin panel and contact the client to confirm.

{{.SiteName}} Booking System`

const bookingClientTemplate = `Dear {{.Booking.FullName}},

Thank you for choosing {{.SiteName}}! We have successfully received your appointment request.

YOUR BOOKING SUMMARY:
- Service: {{.Service}}
- Session mode: {{.SessionMode}}
- Preferred Date: {{.Date}}
- Preferred Time: {{.Time}}
- Contact Phone: {{.Booking.Phone}}
- Contact Email: {{.Booking.Email}}

WHAT HAPPENS NEXT:
1. We will contact you within {{.ResponseWindow}} at your provided phone number.
2. We'll confirm your appointment time and date.
3. We'll discuss any preliminary details.

If you have any urgent questions, please don't hesitate to call us directly at {{.SitePhone}}.

We're honored to be part of your mental wellness journey and look forward to supporting you!

Warm regards,
{{.Director}}
Director
{{.SiteName}}

Phone: {{.SitePhone}}
Email: {{.SiteEmail}}`

const footerInquiryTemplate = `Message:
{{.Message}}

Email: {{.Email}}`

const digestTemplate = `Daily summary for {{.Date}}
{{with .Digest}}
PENDING BOOKINGS ({{len .Pending}}):
{{- range .Pending}}
- {{.FullName}} ({{.Email}}, {{.Phone}}) for {{.ServiceLabel}} on {{.PreferredDate.Format "2006-01-02"}} at {{.PreferredTime}}
{{- else}}
- none
{{- end}}

UPCOMING APPOINTMENTS, NEXT 7 DAYS ({{len .Upcoming}}):
{{- range .Upcoming}}
- {{.When}}: {{.Booking.FullName}} at {{.Booking.PreferredTime}} ({{.Booking.Status}})
{{- else}}
- none
{{- end}}

UNREAD MESSAGES ({{len .UnreadContacts}}):
{{- range .UnreadContacts}}
- {{.Name}} <{{.Email}}>: {{.Subject}}
{{- else}}
- none
{{- end}}

NEW NEWSLETTER SUBSCRIBERS (last 24h): {{.NewSubscribers}}
{{- end}}`

var emailTemplates = template.Must(template.New("emails").Parse(
	`{{define "booking_admin"}}` + bookingAdminTemplate + `{{end}}` +
		`{{define "booking_client"}}` + bookingClientTemplate + `{{end}}` +
		`{{define "footer_inquiry"}}` + footerInquiryTemplate + `{{end}}` +
		`{{define "digest"}}` + digestTemplate + `{{end}}`,
))

func renderEmail(name string, data interface{}) (string, error) {
	var b strings.Builder
	if err := emailTemplates.ExecuteTemplate(&b, name, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(b.String()), nil
}
