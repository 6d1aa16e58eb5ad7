package utils

import (
	"fmt"
	"log"

	"github.com/zalakuldip2011/edemy-sub001/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendCoursePublishedEmail notifies an instructor that their course went
// live. Failures are logged, never propagated: email is best-effort.
func SendCoursePublishedEmail(toEmail, toName, courseTitle string) {
	if config.AppConfig.SendGridKey == "" {
		log.Printf("[EMAIL] SendGrid key not configured, skipping published email for %q", courseTitle)
		return
	}

	from := mail.NewEmail("Edemy", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	subject := fmt.Sprintf("Your course %q is now live!", courseTitle)

	plain := fmt.Sprintf(
		"Hi %s,\n\nYour course %q passed all publishing checks and is now live in the catalog.\n\nThe Edemy Team",
		toName, courseTitle,
	)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your course <strong>%s</strong> passed all publishing checks and is now live in the catalog.</p><p>The Edemy Team</p>",
		toName, courseTitle,
	)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("[EMAIL] Error sending published email to %s: %v", toEmail, err)
		return
	}
	if resp.StatusCode >= 400 {
		log.Printf("[EMAIL] SendGrid rejected published email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return
	}
	log.Printf("[EMAIL] Published email sent to %s for course %q", toEmail, courseTitle)
}
