package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"tap/config"
	"tap/models"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Transfer Articulation Portal <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1A2B5C; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A2B5C; line-height: 1.6; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendMappingReviewedEmail notifies a mapping author of the review outcome.
func SendMappingReviewedEmail(email, name string, mapping models.ArticulationMapping) {
	if email == "" {
		return
	}

	verdict := "approved"
	if mapping.Status == models.MappingStatusRejected {
		verdict = "rejected"
	}

	subject := fmt.Sprintf("Articulation mapping %s", verdict)
	body := getEmailTemplate("Mapping Review Complete", fmt.Sprintf(
		`<p>Hi %s,</p>
		<p>Your articulation mapping #%d has been <strong>%s</strong>.</p>
		<p>Notes: %s</p>`,
		name, mapping.ID, verdict, mapping.Notes))

	SendEmail([]string{email}, subject, body)
}

// SendPendingReviewDigest emails the admin a count of mappings waiting for
// review.
func SendPendingReviewDigest(email string, pendingCount int64) {
	if email == "" || pendingCount == 0 {
		return
	}

	subject := fmt.Sprintf("%d articulation mappings awaiting review", pendingCount)
	body := getEmailTemplate("Pending Reviews", fmt.Sprintf(
		`<p>There are <strong>%d</strong> articulation mappings in the review queue.</p>
		<p>Visit the admin console to approve or reject them.</p>`, pendingCount))

	SendEmail([]string{email}, subject, body)
}
