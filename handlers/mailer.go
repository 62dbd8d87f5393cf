// handlers/mailer.go
package handlers

import (
	"os"
	"strconv"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
	"p9e.in/salescrm/models"
)

// MailOutcome reports one send attempt. Outcomes ride on the save response
// next to the DB result; a failed send never rolls the write back.
type MailOutcome struct {
	Kind string `json:"kind"` // "primary" or "followup"
	To   string `json:"to"`
	Sent bool   `json:"sent"`
	Err  string `json:"error,omitempty"`
}

type sendFunc func(host string, port int, username, password string, msg *gomail.Message) error

// Mailer sends enquiry confirmation mails over SMTP. Sender identity is the
// acting user's own address when their row carries a resolvable mail secret
// reference; otherwise the global SMTP_SENDER identity is used.
type Mailer struct {
	send sendFunc
}

func NewMailer() *Mailer {
	return &Mailer{send: func(host string, port int, username, password string, msg *gomail.Message) error {
		d := gomail.NewDialer(host, port, username, password)
		return d.DialAndSend(msg)
	}}
}

type smtpIdentity struct {
	from     string
	username string
	password string
}

// resolveSender picks the credential pair for this user. The user row stores
// only the name of the environment entry holding the app password, never the
// password itself.
func resolveSender(user models.User) smtpIdentity {
	if user.MailSecretRef != "" {
		if secret := os.Getenv(user.MailSecretRef); secret != "" {
			return smtpIdentity{from: user.Email, username: user.Email, password: secret}
		}
		zap.L().Warn("mail secret ref did not resolve, falling back to global sender",
			zap.String("user", user.Email),
			zap.String("ref", user.MailSecretRef))
	}
	return smtpIdentity{
		from:     os.Getenv("SMTP_SENDER"),
		username: os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASS"),
	}
}

func smtpHostPort() (string, int) {
	host := os.Getenv("SMTP_HOST")
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}
	return host, port
}

// Dispatch sends the primary and follow-up mails concurrently. A mail is
// attempted only when both its subject and body are non-empty. Each send is
// individually best-effort.
func (m *Mailer) Dispatch(user models.User, to, subject, body, followupSubject, followupBody string) []MailOutcome {
	type job struct {
		kind, subject, body string
	}
	var jobs []job
	if subject != "" && body != "" {
		jobs = append(jobs, job{"primary", subject, body})
	}
	if followupSubject != "" && followupBody != "" {
		jobs = append(jobs, job{"followup", followupSubject, followupBody})
	}
	if len(jobs) == 0 {
		return nil
	}

	sender := resolveSender(user)
	host, port := smtpHostPort()

	outcomes := make([]MailOutcome, len(jobs))
	var wg sync.WaitGroup
	for i, j := range jobs {
		wg.Add(1)
		go func(i int, j job) {
			defer wg.Done()
			msg := gomail.NewMessage()
			msg.SetHeader("From", sender.from)
			msg.SetHeader("To", to)
			msg.SetHeader("Subject", j.subject)
			msg.SetBody("text/plain", j.body)

			outcome := MailOutcome{Kind: j.kind, To: to, Sent: true}
			if err := m.send(host, port, sender.username, sender.password, msg); err != nil {
				derr := &models.DispatchError{To: to, Subject: j.subject, Err: err}
				zap.L().Error("mail dispatch failed", zap.String("kind", j.kind), zap.Error(derr))
				outcome.Sent = false
				outcome.Err = "mail dispatch failed"
			}
			outcomes[i] = outcome
		}(i, j)
	}
	wg.Wait()

	return outcomes
}
