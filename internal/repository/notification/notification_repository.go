package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"spotQuest/domain"
	"spotQuest/pkg/logger"

	"github.com/pobyzaarif/goshortcute"
)

type MailjetConfig struct {
	MailjetBaseURL           string
	MailjetBasicAuthUsername string
	MailjetBasicAuthPassword string
	MailjetSenderEmail       string
	MailjetSenderName        string
}

// UserFinder contract interface
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type MailjetRepository struct {
	mailjetConfig MailjetConfig
	users         UserFinder
	client        *http.Client
}

func NewMailjetRepository(cfg MailjetConfig, users UserFinder) *MailjetRepository {
	return &MailjetRepository{
		mailjetConfig: cfg,
		users:         users,
		client:        &http.Client{Timeout: 5 * time.Second},
	}
}

type payloadSendEmail struct {
	Messages []Messages `json:"Messages"`
}

type From struct {
	Email string `json:"Email"`
	Name  string `json:"Name"`
}

type To struct {
	Email string `json:"Email"`
	Name  string `json:"Name"`
}

type Messages struct {
	From     From   `json:"From"`
	To       []To   `json:"To"`
	Subject  string `json:"Subject"`
	TextPart string `json:"TextPart"`
	HTMLPart string `json:"HTMLPart"`
}

// BadgesEarned emails the user a summary of badges just awarded.
func (r *MailjetRepository) BadgesEarned(ctx context.Context, userID uint, badges []domain.BadgeDefinition) error {
	if len(badges) == 0 {
		return nil
	}

	user, err := r.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load badge recipient: %w", err)
	}

	subject, text, htmlPart := badgeEmail(user.DisplayName, badges)

	return r.SendEmail(ctx, user.DisplayName, user.Email, subject, text, htmlPart)
}

func badgeEmail(name string, badges []domain.BadgeDefinition) (subject, text, htmlPart string) {
	if len(badges) == 1 {
		subject = fmt.Sprintf("You earned a badge: %s %s", badges[0].Icon, badges[0].Name)
	} else {
		subject = fmt.Sprintf("You earned %d new badges", len(badges))
	}

	var tb, hb strings.Builder
	fmt.Fprintf(&tb, "Nice work, %s!\n\n", name)
	// display names and badge text are user-influenced, escape before HTML
	fmt.Fprintf(&hb, "<p>Nice work, %s!</p><ul>", html.EscapeString(name))
	for _, b := range badges {
		fmt.Fprintf(&tb, "%s %s: %s\n", b.Icon, b.Name, b.Description)
		fmt.Fprintf(&hb, "<li>%s <strong>%s</strong>: %s</li>",
			html.EscapeString(b.Icon), html.EscapeString(b.Name), html.EscapeString(b.Description))
	}
	hb.WriteString("</ul>")

	return subject, tb.String(), hb.String()
}

func (r *MailjetRepository) SendEmail(ctx context.Context, toName, toEmail, subject, text, htmlPart string) error {
	url := r.mailjetConfig.MailjetBaseURL + "/v3.1/send"

	payload := payloadSendEmail{
		Messages: []Messages{{
			From: From{
				Email: r.mailjetConfig.MailjetSenderEmail,
				Name:  r.mailjetConfig.MailjetSenderName,
			},
			To:       []To{{Email: toEmail, Name: toName}},
			Subject:  subject,
			TextPart: text,
			HTMLPart: htmlPart,
		}},
	}

	payloadByte, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal json payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payloadByte))
	if err != nil {
		return err
	}

	buildBasicAuth := goshortcute.StringtoBase64Encode(r.mailjetConfig.MailjetBasicAuthUsername + ":" + r.mailjetConfig.MailjetBasicAuthPassword)
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Basic "+buildBasicAuth)

	res, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return nil
	}
	bodyBytes, _ := io.ReadAll(res.Body)
	logger.Warn("Mailjet rejected message", "status", res.StatusCode, "body", string(bodyBytes))

	return fmt.Errorf("mailer service return negative response %v", res.StatusCode)
}
