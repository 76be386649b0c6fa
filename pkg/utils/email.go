package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

var (
	emailFrom     = os.Getenv("EMAIL_FROM")
	emailPassword = os.Getenv("EMAIL_PASSWORD")
	smtpHost      = os.Getenv("SMTP_HOST")
	smtpPort      = os.Getenv("SMTP_PORT")
	companyName   = "Andaman Escapes"
	baseURL       = os.Getenv("BASE_URL")
)

// Common header template for all emails
const emailHeader = `
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<div style="text-align: center; margin-bottom: 30px; background-color: #f9f9f9; padding: 20px;">
			<h2 style="color: #0e7490; margin: 0;">Andaman Escapes</h2>
		</div>
`

// Common footer template for all emails
const emailFooter = `
		<div style="text-align: center; margin-top: 20px; font-size: 12px; color: #666; border-top: 1px solid #eee; padding-top: 20px;">
			<p>This is an automated message, please do not reply to this email.</p>
			<p>© 2026 Andaman Escapes. All rights reserved.</p>
		</div>
	</div>
</body>
</html>
`

func sendEmail(to []string, subject, body string) error {
	if emailFrom == "" || emailPassword == "" || smtpHost == "" || smtpPort == "" {
		return fmt.Errorf("email configuration not set")
	}

	// Headers
	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", companyName, emailFrom)
	headers["To"] = strings.Join(to, ",")
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	// Build message
	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + body

	// Authentication
	auth := smtp.PlainAuth("", emailFrom, emailPassword, smtpHost)

	// Send email
	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, emailFrom, to, []byte(message))
	if err != nil {
		log.Printf("Failed to send email: %v", err)
		return err
	}

	log.Printf("Successfully sent email to recipients: %v", to)
	return nil
}

// SendBookingConfirmationEmail notifies a traveller that their booking was received.
func SendBookingConfirmationEmail(email, fullName, reference, itemName string) error {
	subject := fmt.Sprintf("Booking %s received - Andaman Escapes", reference)
	body := fmt.Sprintf(emailHeader+`
				<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
					<h1 style="color: #2c3e50; text-align: center;">Booking Received</h1>
					<p>Hello %s,</p>
					<p>We have received your booking for <strong>%s</strong>.</p>
					<p>Your booking reference is <strong>%s</strong>. You can review it any time under My Bookings.</p>
					<div style="text-align: center; margin: 30px 0;">
						<a href="%s/my-bookings" style="background-color: #0e7490; color: white; padding: 12px 25px; text-decoration: none; border-radius: 5px;">View My Bookings</a>
					</div>
					<p>Best regards,<br>The Andaman Escapes Team</p>
				</div>`+emailFooter,
		fullName, itemName, reference, baseURL)

	return sendEmail([]string{email}, subject, body)
}

// SendBookingCancelledEmail notifies a traveller that their booking was cancelled.
func SendBookingCancelledEmail(email, fullName, reference string) error {
	subject := fmt.Sprintf("Booking %s cancelled - Andaman Escapes", reference)
	body := fmt.Sprintf(emailHeader+`
				<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
					<h1 style="color: #2c3e50; text-align: center;">Booking Cancelled</h1>
					<p>Hello %s,</p>
					<p>Your booking <strong>%s</strong> has been cancelled.</p>
					<p>If a payment was already made, our team will be in touch about the refund.</p>
					<div style="text-align: center; margin: 30px 0;">
						<a href="%s/activities" style="background-color: #0e7490; color: white; padding: 12px 25px; text-decoration: none; border-radius: 5px;">Browse More Experiences</a>
					</div>
					<p>Best regards,<br>The Andaman Escapes Team</p>
				</div>`+emailFooter,
		fullName, reference, baseURL)

	return sendEmail([]string{email}, subject, body)
}
