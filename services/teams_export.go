package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pocketbase/pocketbase/core"
	"github.com/xuri/excelize/v2"
)

// TeamExportRow is one line of the teams spreadsheet: a team with at most one
// official per line (teams with several officials repeat across lines).
type TeamExportRow struct {
	Name          string
	AgeGroup      string
	Gender        string
	TeamColor     string
	IsOpponent    bool
	OfficialName  string
	OfficialRole  string
	OfficialEmail string
	OfficialPhone string
}

// LoadTeamExportRows reads every team and its officials into export rows,
// ordered by team name.
func LoadTeamExportRows(app core.App) ([]TeamExportRow, error) {
	teamsCol, err := app.FindCollectionByNameOrId("teams")
	if err != nil {
		return nil, fmt.Errorf("teams collection not found: %w", err)
	}

	teams, err := app.FindRecordsByFilter(teamsCol, "id != ''", "name", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}

	officialsCol, err := app.FindCollectionByNameOrId("team_officials")
	if err != nil {
		return nil, fmt.Errorf("team_officials collection not found: %w", err)
	}

	var rows []TeamExportRow
	for _, team := range teams {
		base := TeamExportRow{
			Name:       team.GetString("name"),
			AgeGroup:   team.GetString("age_group"),
			Gender:     team.GetString("gender"),
			TeamColor:  team.GetString("team_color"),
			IsOpponent: team.GetBool("is_opponent"),
		}

		officials, err := app.FindRecordsByFilter(officialsCol,
			"team = {:teamId}", "full_name", 0, 0,
			map[string]any{"teamId": team.Id},
		)
		if err != nil || len(officials) == 0 {
			rows = append(rows, base)
			continue
		}

		for _, official := range officials {
			row := base
			row.OfficialName = official.GetString("full_name")
			row.OfficialRole = official.GetString("role")
			row.OfficialEmail = official.GetString("email")
			row.OfficialPhone = official.GetString("phone")
			rows = append(rows, row)
		}
	}

	return rows, nil
}

// GenerateTeamsExcel creates a spreadsheet of teams and officials.
func GenerateTeamsExcel(rows []TeamExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Teams"
	defaultSheet := f.GetSheetName(0)
	f.SetSheetName(defaultSheet, sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	headers := []struct {
		Label string
		Width float64
	}{
		{"Team Name", 30}, {"Age Group", 12}, {"Gender", 10}, {"Colour", 12},
		{"Type", 12}, {"Official", 25}, {"Role", 20}, {"Email", 30}, {"Phone", 18},
	}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, col+"1", h.Label)
		f.SetColWidth(sheetName, col, col, h.Width)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle)

	for i, row := range rows {
		teamType := "home"
		if row.IsOpponent {
			teamType = "opponent"
		}
		values := []any{
			row.Name, row.AgeGroup, row.Gender, row.TeamColor, teamType,
			row.OfficialName, strings.ReplaceAll(row.OfficialRole, "_", " "),
			row.OfficialEmail, row.OfficialPhone,
		}
		for j, v := range values {
			col, _ := excelize.ColumnNumberToName(j + 1)
			f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, i+2), v)
		}
	}

	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write teams export: %w", err)
	}
	return buf.Bytes(), nil
}
