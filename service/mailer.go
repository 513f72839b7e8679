package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/harikrish1993-phk/telvel/config"
	"github.com/harikrish1993-phk/telvel/model"
)

// MailSender is the transport seam; *mail.Client satisfies it. Tests swap in
// a fake.
type MailSender interface {
	DialAndSend(messages ...*mail.Msg) error
}

// Mailer sends best-effort notifications after submissions are persisted.
// There is no retry queue and no delivery guarantee: a failed send is logged
// and discarded, and the HTTP response is never affected.
type Mailer struct {
	sender  MailSender
	cfg     *config.EmailConfig
	company *config.CompanyConfig
}

// NewMailerWithSender builds a mailer over an explicit transport.
func NewMailerWithSender(sender MailSender, cfg *config.EmailConfig, company *config.CompanyConfig) *Mailer {
	return &Mailer{sender: sender, cfg: cfg, company: company}
}

// NewMailer builds a mailer from config. Without credentials the mailer is
// disabled and every send becomes a logged no-op.
func NewMailer(cfg *config.EmailConfig, company *config.CompanyConfig) *Mailer {
	m := &Mailer{cfg: cfg, company: company}

	if cfg.Username == "" || cfg.Password == "" {
		slog.Warn("email credentials not set — email disabled")
		return m
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		slog.Warn("failed to create mail client — email disabled", "error", err)
		return m
	}

	m.sender = client
	return m
}

// Enabled reports whether a transport is configured.
func (m *Mailer) Enabled() bool {
	return m.sender != nil
}

func (m *Mailer) from() string {
	if m.cfg.From != "" {
		return m.cfg.From
	}
	return m.cfg.Username
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	if m.sender == nil {
		slog.Warn("email skipped — not configured", "to", to, "subject", subject)
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.company.ShortName, m.from()); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := m.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// DispatchContact notifies the info inbox about a new inquiry. Fire and
// forget: runs in its own goroutine, outcome is only logged.
func (m *Mailer) DispatchContact(contact *model.Contact) {
	go m.tryContactNotification(contact)
}

// DispatchApplication sends the internal HR alert and the applicant
// confirmation. The two sends are independent goroutines so a failure of one
// never prevents the other.
func (m *Mailer) DispatchApplication(app *model.Application) {
	go m.tryApplicationNotification(app)
	go m.tryApplicationConfirmation(app)
}

func (m *Mailer) tryContactNotification(contact *model.Contact) {
	defer logPanic("contact notification")

	subject := "New Inquiry: " + contact.FullName
	if contact.CompanyName != "" {
		subject += " — " + contact.CompanyName
	}
	body := m.wrap(fmt.Sprintf(
		`<p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p>%s%s<p><strong>Message:</strong><br/>%s</p>`,
		contact.FullName, contact.Email,
		optLine("Phone", contact.Phone), optLine("Company", contact.CompanyName),
		contact.Message,
	))

	if err := m.send(m.cfg.InfoTo, subject, body); err != nil {
		slog.Error("contact notification failed", "contact_id", contact.ID, "error", err)
		return
	}
	slog.Info("contact notification sent", "contact_id", contact.ID)
}

func (m *Mailer) tryApplicationNotification(app *model.Application) {
	defer logPanic("application notification")

	subject := fmt.Sprintf("New Application: %s for %s", app.FullName, app.JobTitle)
	phone := app.Phone
	if phone == "" {
		phone = "N/A"
	}
	body := m.wrap(fmt.Sprintf(
		`<p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Phone:</strong> %s</p><p><strong>Position:</strong> %s</p>%s<p><em>Resume attached to application — view in admin.</em></p>`,
		app.FullName, app.Email, phone, app.JobTitle,
		optLine("Cover Letter", app.CoverLetter),
	))

	if err := m.send(m.cfg.HRTo, subject, body); err != nil {
		slog.Error("application notification failed", "application_id", app.ID, "error", err)
		return
	}
	slog.Info("application notification sent", "application_id", app.ID)
}

func (m *Mailer) tryApplicationConfirmation(app *model.Application) {
	defer logPanic("application confirmation")

	subject := "Application Received — " + m.company.ShortName
	body := m.wrap(fmt.Sprintf(
		`<p>Dear %s,</p>
<p>Thank you for applying. We've received your application and our recruitment team will review it within 2–3 business days.</p>
<p>If your profile matches our requirements, we'll reach out to schedule the next steps.</p>
<p>Best regards,<br/><strong>%s Recruitment Team</strong></p>`,
		app.FullName, m.company.ShortName,
	))

	if err := m.send(app.Email, subject, body); err != nil {
		slog.Error("application confirmation failed", "application_id", app.ID, "error", err)
		return
	}
	slog.Info("application confirmation sent", "application_id", app.ID)
}

func (m *Mailer) wrap(inner string) string {
	return fmt.Sprintf(
		`<div style="background:linear-gradient(135deg,#122a3f,#1C619C);color:#fff;padding:24px;text-align:center;border-radius:8px 8px 0 0"><h2 style="margin:0">%s</h2><p style="margin:4px 0 0;opacity:.8;font-size:14px">%s</p></div>
<div style="padding:24px;background:#f8fafc;border:1px solid #e2e8f0;border-top:0;border-radius:0 0 8px 8px;font-family:sans-serif;color:#334e68">%s</div>
<div style="text-align:center;padding:16px;color:#999;font-size:12px">&copy; %d %s</div>`,
		m.company.Name, m.company.Tagline, inner, time.Now().Year(), m.company.Name,
	)
}

func optLine(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("<p><strong>%s:</strong> %s</p>", label, value)
}

// logPanic keeps a notification panic out of the request lifecycle.
func logPanic(what string) {
	if r := recover(); r != nil {
		slog.Error("panic in "+what, "panic", r)
	}
}
