package services

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	marotocore "github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/pocketbase/pocketbase/core"
)

// FixtureExportRow is one fixture line in the printable schedule.
type FixtureExportRow struct {
	MatchDate time.Time
	HomeTeam  string
	AwayTeam  string
	Pitch     string
	Status    string
	Notes     string
}

// LoadFixtureExportRows reads all fixtures ordered by date, resolving team
// and pitch names.
func LoadFixtureExportRows(app core.App) ([]FixtureExportRow, error) {
	fixturesCol, err := app.FindCollectionByNameOrId("fixtures")
	if err != nil {
		return nil, fmt.Errorf("fixtures collection not found: %w", err)
	}

	fixtures, err := app.FindRecordsByFilter(fixturesCol, "id != ''", "match_date", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("load fixtures: %w", err)
	}

	rows := make([]FixtureExportRow, 0, len(fixtures))
	for _, fixture := range fixtures {
		exportRow := FixtureExportRow{
			MatchDate: fixture.GetDateTime("match_date").Time(),
			Status:    fixture.GetString("status"),
			Notes:     fixture.GetString("notes"),
		}
		if home, err := app.FindRecordById("teams", fixture.GetString("home_team")); err == nil {
			exportRow.HomeTeam = home.GetString("name")
		}
		if away, err := app.FindRecordById("teams", fixture.GetString("away_team")); err == nil {
			exportRow.AwayTeam = away.GetString("name")
		}
		if pitch, err := app.FindRecordById("pitches", fixture.GetString("pitch")); err == nil {
			exportRow.Pitch = pitch.GetString("name")
		}
		rows = append(rows, exportRow)
	}

	return rows, nil
}

// GenerateFixturesPDF renders the fixture schedule as a printable PDF.
func GenerateFixturesPDF(clubName string, rows []FixtureExportRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addFixturesHeader(m, clubName)
	addFixturesTableHeader(m)
	for _, r := range rows {
		addFixtureRow(m, r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addFixturesHeader(m marotocore.Maroto, clubName string) {
	title := "Fixture Schedule"
	if clubName != "" {
		title = clubName + " — Fixture Schedule"
	}

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Generated %s", time.Now().Format("2 Jan 2006")), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
		row.New(4),
	)
}

func addFixturesTableHeader(m marotocore.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}

	headerCell := &props.Cell{BackgroundColor: headerBg}
	m.AddRows(
		row.New(8).Add(
			col.New(3).Add(text.New("Date", headerText)).WithStyle(headerCell),
			col.New(3).Add(text.New("Home", headerText)).WithStyle(headerCell),
			col.New(3).Add(text.New("Away", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Pitch", headerText)).WithStyle(headerCell),
			col.New(1).Add(text.New("Status", headerText)).WithStyle(headerCell),
		),
	)
}

func addFixtureRow(m marotocore.Maroto, r FixtureExportRow) {
	cellText := props.Text{Size: 8, Align: align.Left}

	m.AddRows(
		row.New(7).Add(
			col.New(3).Add(text.New(FormatKickOff(r.MatchDate), cellText)),
			col.New(3).Add(text.New(r.HomeTeam, cellText)),
			col.New(3).Add(text.New(r.AwayTeam, cellText)),
			col.New(2).Add(text.New(r.Pitch, cellText)),
			col.New(1).Add(text.New(r.Status, props.Text{Size: 8, Align: align.Center})),
		),
	)
}
