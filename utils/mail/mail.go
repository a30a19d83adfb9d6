package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strconv"

	"github.com/pasoapp/paso/config"
	"github.com/pasoapp/paso/logger"
	gomail "gopkg.in/gomail.v2"
)

func init() {
	config.LoadEnv()
}

const bookingConfirmationTemplate = `
<html>
  <body style="font-family: sans-serif;">
    <h2>¡Hola {{.CustomerName}}!</h2>
    <p>Tu reserva en <b>{{.SalonName}}</b> fue registrada para el
       <b>{{.Date}}</b> a las <b>{{.Time}}</b>.</p>
    <p>Total: <b>${{.Total}}</b><br>
       Abono para confirmar: <b>${{.Deposit}}</b></p>
    {{if .PaymentURL}}<p><a href="{{.PaymentURL}}">Paga tu abono aquí</a> para confirmar la cita.</p>{{end}}
    <p>Equipo PASO</p>
  </body>
</html>`

type bookingConfirmationData struct {
	CustomerName string
	SalonName    string
	Date         string
	Time         string
	Total        string
	Deposit      string
	PaymentURL   string
}

// SendBookingConfirmation emails the customer a summary of their pending
// reservation. Best-effort: when SMTP is not configured or the address is
// empty the send is skipped silently.
func SendBookingConfirmation(toEmail, customerName, salonName, date, bookingTime string, total, deposit float64, paymentURL string) error {
	if toEmail == "" {
		return nil
	}

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		logger.InfoLogger.Info("SMTP not configured, skipping booking confirmation email")
		return nil
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	t, err := template.New("booking_confirmation").Parse(bookingConfirmationTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, bookingConfirmationData{
		CustomerName: customerName,
		SalonName:    salonName,
		Date:         date,
		Time:         bookingTime,
		Total:        strconv.FormatFloat(total, 'f', 0, 64),
		Deposit:      strconv.FormatFloat(deposit, 'f', 0, 64),
		PaymentURL:   paymentURL,
	}); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", os.Getenv("FROM_EMAIL"))
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", fmt.Sprintf("Tu reserva en %s", salonName))
	mailer.SetBody("text/html", body.String())

	dialer := gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD"))
	if err := dialer.DialAndSend(mailer); err != nil {
		logger.ErrorLogger.Errorf("Failed to send booking confirmation to %s: %v", toEmail, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
