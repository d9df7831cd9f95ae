package utils

import (
	"fmt"
	"log"

	"lms/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers an HTML email through SendGrid. Without an API key it
// logs the message and succeeds, which keeps local development quiet.
func SendEmail(to, subject, htmlBody string) error {
	if config.AppConfig.SendGridAPIKey == "" {
		log.Printf("[EMAIL] (no SENDGRID_API_KEY) to=%s subject=%q", to, subject)
		return nil
	}

	from := mail.NewEmail("LMS", config.AppConfig.EmailSender)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("[EMAIL] send failed to=%s: %v", to, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("[EMAIL] send rejected to=%s: %d %s", to, resp.StatusCode, resp.Body)
		return fmt.Errorf("email rejected with status %d", resp.StatusCode)
	}
	return nil
}

// emailTemplate wraps body content in the standard layout
func emailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A1A40; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A40; line-height: 1.6; }
			.content h2 { color: #1A1A40; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #6D9DD7; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LEARNSPACE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Learnspace. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to Learnspace! Your account is ready. Browse the catalog and start learning today.</p>
	`, name)
	if err := SendEmail(email, "Welcome to Learnspace", emailTemplate("Welcome!", body)); err != nil {
		log.Printf("Error sending welcome email: %v", err)
	}
}

func SendOTPEmail(otp, email string) error {
	body := fmt.Sprintf(`
		<p>Your One Time Password (OTP) is:</p>
		<div class="info-box"><h1 style="text-align:center;margin:0;">%s</h1></div>
		<p>The code expires in 10 minutes. Do not share it with anyone.</p>
	`, otp)
	return SendEmail(email, "Your Learnspace verification code", emailTemplate("Verification Code", body))
}

func SendEnrollmentEmail(email, userName, courseName string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have successfully enrolled in:</p>
		<div class="info-box"><h3 style="margin:0;">%s</h3></div>
		<p>You can now access all course content. Complete every lesson to earn your certificate.</p>
	`, userName, courseName)
	if err := SendEmail(email, "Enrollment confirmation - "+courseName, emailTemplate("Enrollment Successful", body)); err != nil {
		log.Printf("Error sending enrollment email: %v", err)
	}
}

func SendCoursePublishedEmail(email, userName, courseName string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your course has been approved and is now live on the marketplace:</p>
		<div class="info-box"><h3 style="margin:0;">%s</h3></div>
	`, userName, courseName)
	if err := SendEmail(email, "Course published - "+courseName, emailTemplate("Course Published", body)); err != nil {
		log.Printf("Error sending course published email: %v", err)
	}
}

func SendCourseRejectedEmail(email, userName, courseName, reason string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your course <strong>%s</strong> was not approved:</p>
		<div class="info-box">%s</div>
		<p>Please address the feedback and submit again.</p>
	`, userName, courseName, reason)
	if err := SendEmail(email, "Course review update - "+courseName, emailTemplate("Course Not Approved", body)); err != nil {
		log.Printf("Error sending course rejected email: %v", err)
	}
}

func SendPayoutCompletedEmail(email, userName string, amount float64) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your payout has been completed:</p>
		<div class="info-box"><h3 style="margin:0;">%.2f</h3></div>
	`, userName, amount)
	if err := SendEmail(email, "Payout completed", emailTemplate("Payout Completed", body)); err != nil {
		log.Printf("Error sending payout email: %v", err)
	}
}

func SendCertificateEmail(email, userName, courseName, certificateNumber string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations on completing <strong>%s</strong>!</p>
		<div class="info-box">
			<p style="margin:0 0 10px 0;">Your certificate number:</p>
			<h2 style="margin:0;">%s</h2>
		</div>
		<p>Use this number for verification purposes.</p>
	`, userName, courseName, certificateNumber)
	if err := SendEmail(email, "Certificate of completion - "+courseName, emailTemplate("Certificate Issued", body)); err != nil {
		log.Printf("Error sending certificate email: %v", err)
	}
}
