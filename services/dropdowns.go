package services

// AgeGroups lists the selectable age group options, U8 through U18.
var AgeGroups = []string{
	"U8", "U9", "U10", "U11", "U12", "U13", "U14", "U15", "U16", "U17", "U18",
}

// ContactRoles lists the team official role options.
var ContactRoles = []string{
	"manager",
	"coach",
	"assistant_manager",
	"fixtures_secretary",
	"other",
}

// Genders lists the team gender options.
var Genders = []string{"boys", "girls", "mixed"}

// TeamColors lists the kit colour options.
var TeamColors = []string{
	"blue", "red", "green", "yellow", "white", "black", "orange", "purple",
}

// MatchStatuses lists the fixture status options.
var MatchStatuses = []string{"scheduled", "completed", "cancelled", "postponed"}

// SurfaceTypes lists the pitch surface options.
var SurfaceTypes = []string{"grass", "artificial_grass", "hybrid", "3g", "4g"}

// LightingTypes lists the pitch lighting options.
var LightingTypes = []string{"none", "floodlights", "natural_only", "partial"}

// EmailTemplateTypes lists the email template categories.
var EmailTemplateTypes = []string{"match_notification", "cancellation", "general"}

// IsValidRole reports whether role is one of the known contact roles.
func IsValidRole(role string) bool {
	for _, r := range ContactRoles {
		if r == role {
			return true
		}
	}
	return false
}

// IsValidAgeGroup reports whether ag is one of the known age groups.
func IsValidAgeGroup(ag string) bool {
	for _, a := range AgeGroups {
		if a == ag {
			return true
		}
	}
	return false
}
