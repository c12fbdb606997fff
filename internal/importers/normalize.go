package importers

import (
	"strings"
)

// Canonical rows carry only trimmed, non-empty values; absent fields are nil.

type SpeakerRow struct {
	FullName    *string
	Credentials *string
	Bio         *string
	Specialty   *string
	Institution *string
	Email       *string
	LinkedInURL *string
	WebsiteURL  *string
	PhotoURL    *string
}

type SessionRow struct {
	Title       *string
	Description *string
	Date        *string
	StartTime   *string
	EndTime     *string
	Location    *string
	Track       *string
	SessionType *string
	Speakers    []string
	Groups      []string
}

type ExhibitorRow struct {
	CompanyName  *string
	BoothNumber  *string
	Description  *string
	ContactName  *string
	ContactEmail *string
	ContactPhone *string
	WebsiteURL   *string
	LogoURL      *string
}

type SponsorRow struct {
	CompanyName  *string
	Tier         *string
	Description  *string
	ContactName  *string
	ContactEmail *string
	WebsiteURL   *string
	LogoURL      *string
}

type GroupRow struct {
	Name        *string
	Description *string
	Color       *string
}

type AttendeeRow struct {
	FullName *string
	Email    *string
	Company  *string
	JobTitle *string
	Phone    *string
	Groups   []string
}

func NormalizeSpeaker(row RawRow) SpeakerRow {
	v := SpeakerFields.Apply(row)
	return SpeakerRow{
		FullName:    composeName(v["full_name"], v["first_name"], v["last_name"]),
		Credentials: optional(v["credentials"]),
		Bio:         optional(v["bio"]),
		Specialty:   optional(v["specialty"]),
		Institution: optional(v["institution"]),
		Email:       optional(v["email"]),
		LinkedInURL: optional(v["linkedin_url"]),
		WebsiteURL:  optional(v["website_url"]),
		PhotoURL:    optional(v["photo_url"]),
	}
}

// NormalizeSession passes date and time values through untouched.
func NormalizeSession(row RawRow) SessionRow {
	v := SessionFields.Apply(row)
	return SessionRow{
		Title:       optional(v["title"]),
		Description: optional(v["description"]),
		Date:        optional(v["date"]),
		StartTime:   optional(v["start_time"]),
		EndTime:     optional(v["end_time"]),
		Location:    optional(v["location"]),
		Track:       optional(v["track"]),
		SessionType: optional(v["session_type"]),
		Speakers:    SplitNames(v["speakers"]),
		Groups:      SplitNames(v["groups"]),
	}
}

func NormalizeExhibitor(row RawRow) ExhibitorRow {
	v := ExhibitorFields.Apply(row)
	return ExhibitorRow{
		CompanyName:  optional(v["company_name"]),
		BoothNumber:  optional(v["booth_number"]),
		Description:  optional(v["description"]),
		ContactName:  composeName(v["contact_name"], v["contact_first_name"], v["contact_last_name"]),
		ContactEmail: optional(v["contact_email"]),
		ContactPhone: optional(v["contact_phone"]),
		WebsiteURL:   optional(v["website_url"]),
		LogoURL:      optional(v["logo_url"]),
	}
}

func NormalizeSponsor(row RawRow) SponsorRow {
	v := SponsorFields.Apply(row)
	return SponsorRow{
		CompanyName:  optional(v["company_name"]),
		Tier:         optional(v["tier"]),
		Description:  optional(v["description"]),
		ContactName:  composeName(v["contact_name"], v["contact_first_name"], v["contact_last_name"]),
		ContactEmail: optional(v["contact_email"]),
		WebsiteURL:   optional(v["website_url"]),
		LogoURL:      optional(v["logo_url"]),
	}
}

func NormalizeGroup(row RawRow) GroupRow {
	v := GroupFields.Apply(row)
	return GroupRow{
		Name:        optional(v["name"]),
		Description: optional(v["description"]),
		Color:       optional(v["color"]),
	}
}

func NormalizeAttendee(row RawRow) AttendeeRow {
	v := AttendeeFields.Apply(row)
	return AttendeeRow{
		FullName: composeName(v["full_name"], v["first_name"], v["last_name"]),
		Email:    optional(v["email"]),
		Company:  optional(v["company"]),
		JobTitle: optional(v["job_title"]),
		Phone:    optional(v["phone"]),
		Groups:   SplitNames(v["groups"]),
	}
}

// SplitNames splits a name list on ";", "|" or ",", trimming every name
// and dropping empty entries.
func SplitNames(list string) []string {
	if list == "" {
		return nil
	}
	normalized := strings.NewReplacer(";", ",", "|", ",").Replace(list)

	var names []string
	for _, name := range strings.Split(normalized, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// composeName prefers the combined field and falls back to "first last".
func composeName(full, first, last string) *string {
	if full != "" {
		return optional(full)
	}
	return optional(strings.TrimSpace(first + " " + last))
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
