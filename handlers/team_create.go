package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"clubmanager/services"
	"clubmanager/templates"
)

// HandleTeamNew renders the empty team form.
// Route: GET /teams/new
func HandleTeamNew(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := newTeamFormData()
		data.AgeGroup = services.DefaultBulkSettings().AgeGroup
		return renderTeamForm(e, data)
	}
}

// HandleTeamSave creates a team from the posted form.
// Route: POST /teams
func HandleTeamSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := teamFormFromRequest(e)
		validateTeamForm(&data)
		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderTeamForm(e, data)
		}

		teamsCol, err := app.FindCollectionByNameOrId("teams")
		if err != nil {
			log.Printf("team_create: could not find teams collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(teamsCol)
		setTeamFields(record, data)
		if e.Auth != nil {
			record.Set("created_by", e.Auth.Id)
		}

		if err := app.Save(record); err != nil {
			log.Printf("team_create: could not save team: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Team created successfully")
		return redirect(e, "/teams")
	}
}

func newTeamFormData() templates.TeamFormData {
	return templates.TeamFormData{
		AgeGroupOptions: services.AgeGroups,
		GenderOptions:   services.Genders,
		ColorOptions:    services.TeamColors,
		RoleOptions:     services.ContactRoles,
		Errors:          make(map[string]string),
	}
}

// teamFormFromRequest fills form data from the posted values.
func teamFormFromRequest(e *core.RequestEvent) templates.TeamFormData {
	data := newTeamFormData()
	data.Name = strings.TrimSpace(e.Request.FormValue("name"))
	data.AgeGroup = e.Request.FormValue("age_group")
	data.Gender = e.Request.FormValue("gender")
	data.TeamColor = e.Request.FormValue("team_color")
	data.IsOpponent = e.Request.FormValue("is_opponent") != ""
	return data
}

func validateTeamForm(data *templates.TeamFormData) {
	if data.Name == "" {
		data.Errors["name"] = "Team name is required"
	}
	if !services.IsValidAgeGroup(data.AgeGroup) {
		data.Errors["age_group"] = "Invalid age group"
	}
}

func setTeamFields(record *core.Record, data templates.TeamFormData) {
	record.Set("name", data.Name)
	record.Set("age_group", data.AgeGroup)
	record.Set("gender", data.Gender)
	record.Set("team_color", data.TeamColor)
	record.Set("is_opponent", data.IsOpponent)
}

func renderTeamForm(e *core.RequestEvent, data templates.TeamFormData) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.TeamFormContent(data)
	} else {
		component = templates.TeamFormPage(data)
	}
	return component.Render(e.Request.Context(), e.Response)
}

// redirect sends either an HTMX client-side redirect or a regular 302.
func redirect(e *core.RequestEvent, url string) error {
	if e.Request.Header.Get("HX-Request") == "true" {
		e.Response.Header().Set("HX-Redirect", url)
		return e.String(http.StatusOK, "")
	}
	return e.Redirect(http.StatusFound, url)
}
