package services

import (
	"fmt"
	"net/mail"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/mailer"
)

// MatchEmailData is everything the match notification email needs.
type MatchEmailData struct {
	HomeTeam  string
	AwayTeam  string
	KickOff   string
	PitchName string
	PitchLine string
	MapURL    string
	Notes     string
	Status    string
}

// BuildMatchEmailData loads a fixture with its team and pitch relations and
// flattens it for the email template.
func BuildMatchEmailData(app core.App, fixtureID string) (*MatchEmailData, error) {
	fixture, err := app.FindRecordById("fixtures", fixtureID)
	if err != nil {
		return nil, fmt.Errorf("fixture not found: %w", err)
	}

	homeTeam, err := app.FindRecordById("teams", fixture.GetString("home_team"))
	if err != nil {
		return nil, fmt.Errorf("home team not found: %w", err)
	}
	awayTeam, err := app.FindRecordById("teams", fixture.GetString("away_team"))
	if err != nil {
		return nil, fmt.Errorf("away team not found: %w", err)
	}
	pitch, err := app.FindRecordById("pitches", fixture.GetString("pitch"))
	if err != nil {
		return nil, fmt.Errorf("pitch not found: %w", err)
	}

	matchDate := fixture.GetDateTime("match_date")
	data := &MatchEmailData{
		HomeTeam:  homeTeam.GetString("name"),
		AwayTeam:  awayTeam.GetString("name"),
		KickOff:   FormatKickOff(matchDate.Time()),
		PitchName: pitch.GetString("name"),
		PitchLine: pitchAddressLine(pitch),
		MapURL:    pitch.GetString("map_url"),
		Notes:     fixture.GetString("notes"),
		Status:    fixture.GetString("status"),
	}
	return data, nil
}

// SendMatchEmail delivers the rendered notification through the app mailer.
func SendMatchEmail(app core.App, to, subject, html string) error {
	message := &mailer.Message{
		From: mail.Address{
			Address: app.Settings().Meta.SenderAddress,
			Name:    app.Settings().Meta.SenderName,
		},
		To:      []mail.Address{{Address: to}},
		Subject: subject,
		HTML:    html,
	}
	if err := app.NewMailClient().Send(message); err != nil {
		return fmt.Errorf("send match email: %w", err)
	}
	return nil
}

func pitchAddressLine(pitch *core.Record) string {
	line := pitch.GetString("address_line1")
	if city := pitch.GetString("city"); city != "" {
		line += ", " + city
	}
	if postcode := pitch.GetString("postal_code"); postcode != "" {
		line += " " + postcode
	}
	return line
}
