package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"clubmanager/services"
)

// MatchEmail renders the match notification as a standalone HTML email
// document, inline styles only so it survives email clients.
func MatchEmail(data *services.MatchEmailData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<body style="font-family: Helvetica, Arial, sans-serif; color: #1f2937; margin: 0; padding: 24px;">
<div style="max-width: 560px; margin: 0 auto; border: 1px solid #e5e7eb; border-radius: 8px; padding: 24px;">
<h1 style="font-size: 20px; margin-top: 0;">Match Details</h1>
<h2 style="font-size: 16px;">%s vs %s</h2>
<p><strong>Kick off:</strong> %s</p>
<p><strong>Venue:</strong> %s<br>%s</p>`,
			esc(data.HomeTeam), esc(data.AwayTeam),
			esc(data.KickOff), esc(data.PitchName), esc(data.PitchLine)); err != nil {
			return err
		}

		if data.MapURL != "" {
			if _, err := fmt.Fprintf(w, `<p><a href="%s" style="color: #1d4ed8;">Directions</a></p>`,
				esc(data.MapURL)); err != nil {
				return err
			}
		}
		if data.Notes != "" {
			if _, err := fmt.Fprintf(w, `<p><strong>Notes:</strong> %s</p>`, esc(data.Notes)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `<p style="color: #6b7280; font-size: 12px;">Sent by Club Manager</p>
</div>
</body>
</html>`)
		return err
	})
}

// MatchEmailPreviewData feeds the email preview screen.
type MatchEmailPreviewData struct {
	FixtureID string
	Subject   string
	HTML      string
	Contacts  []OfficialContact
}

// OfficialContact is a send-to option on the preview screen.
type OfficialContact struct {
	Name  string
	Email string
}

// MatchEmailPreviewContent shows the rendered email and a send form listing
// the away team's officials with email addresses.
func MatchEmailPreviewContent(data MatchEmailPreviewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>Match Email</h1>
<p class="muted">Subject: %s</p>
<iframe class="email-preview" srcdoc="%s"></iframe>`,
			esc(data.Subject), esc(data.HTML)); err != nil {
			return err
		}

		if len(data.Contacts) == 0 {
			_, err := fmt.Fprintf(w, `<p class="empty-state">The away team has no officials with an email address.</p>
<div class="form-actions"><a class="button secondary" href="/fixtures">Back</a></div>`)
			return err
		}

		if _, err := fmt.Fprintf(w, `<form method="post" action="/fixtures/%s/email" class="form">
<label>Send to<select name="to">`, esc(data.FixtureID)); err != nil {
			return err
		}
		for _, contact := range data.Contacts {
			if _, err := fmt.Fprintf(w, `<option value="%s">%s &lt;%s&gt;</option>`,
				esc(contact.Email), esc(contact.Name), esc(contact.Email)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</select></label>
<div class="form-actions">
<button type="submit">Send Email</button>
<a class="button secondary" href="/fixtures">Back</a>
</div>
</form>`)
		return err
	})
}

// MatchEmailPreviewPage renders the full email preview page.
func MatchEmailPreviewPage(data MatchEmailPreviewData) templ.Component {
	return Page("Match Email", MatchEmailPreviewContent(data))
}
