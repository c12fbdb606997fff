package importers

import (
	"context"
	"fmt"

	"github.com/mrlokans/eventadmin/internal/entities"
)

func (i *Importer) importSpeakers(ctx context.Context, eventID uint, rows []RawRow, result *Result) error {
	for n, raw := range rows {
		row := NormalizeSpeaker(raw)
		if row.FullName == nil {
			i.missing(result, n, deref(row.Email), "full_name")
			continue
		}

		speaker := &entities.Speaker{
			EventID:     eventID,
			FullName:    *row.FullName,
			Credentials: row.Credentials,
			Bio:         row.Bio,
			Specialty:   row.Specialty,
			Institution: row.Institution,
			Email:       row.Email,
			LinkedInURL: row.LinkedInURL,
			WebsiteURL:  row.WebsiteURL,
			PhotoURL:    row.PhotoURL,
		}
		i.created(result, *row.FullName, "email", i.stores.Speakers.CreateSpeaker(ctx, speaker))
	}
	return nil
}

// importSessions assigns speakers by name (never created implicitly) and
// groups by name (created on first reference).
func (i *Importer) importSessions(ctx context.Context, eventID uint, rows []RawRow, result *Result) error {
	speakers, err := i.stores.Speakers.ListSpeakers(ctx, eventID)
	if err != nil {
		return fmt.Errorf("Failed to load existing speakers: %v", err)
	}
	speakerRefs := NewResolver(NewNameIndex(speakers, func(s entities.Speaker) (string, uint) { return s.FullName, s.ID }), nil)

	groupRefs, err := i.groupResolver(ctx, eventID)
	if err != nil {
		return err
	}

	for n, raw := range rows {
		row := NormalizeSession(raw)
		if missing := row.missingFields(); len(missing) > 0 {
			i.missing(result, n, deref(row.Title), missing...)
			continue
		}
		title := *row.Title

		speakerIDs, speakerErrs := speakerRefs.Resolve(ctx, row.Speakers)
		groupIDs, groupErrs := groupRefs.Resolve(ctx, row.Groups)

		session := &entities.Session{
			EventID:     eventID,
			Title:       title,
			Description: row.Description,
			Date:        *row.Date,
			StartTime:   *row.StartTime,
			EndTime:     *row.EndTime,
			Location:    row.Location,
			Track:       row.Track,
			SessionType: row.SessionType,
		}
		if !i.created(result, title, "title, date and start time", i.stores.Sessions.CreateSession(ctx, session)) {
			continue
		}

		i.referenceErrors(result, "Session", title, "speaker", speakerErrs)
		i.referenceErrors(result, "Session", title, "group", groupErrs)

		if err := i.stores.Sessions.AddSessionSpeakers(ctx, session.ID, speakerIDs); err != nil {
			result.addError("Session %q: could not assign speakers: %v", title, err)
		}
		if err := i.stores.Sessions.AddSessionGroups(ctx, session.ID, groupIDs); err != nil {
			result.addError("Session %q: could not assign groups: %v", title, err)
		}
	}
	return nil
}

func (r SessionRow) missingFields() []string {
	var missing []string
	if r.Title == nil {
		missing = append(missing, "title")
	}
	if r.Date == nil {
		missing = append(missing, "date")
	}
	if r.StartTime == nil {
		missing = append(missing, "start_time")
	}
	if r.EndTime == nil {
		missing = append(missing, "end_time")
	}
	return missing
}

func (i *Importer) importExhibitors(ctx context.Context, eventID uint, rows []RawRow, result *Result) error {
	for n, raw := range rows {
		row := NormalizeExhibitor(raw)
		if row.CompanyName == nil {
			i.missing(result, n, deref(row.ContactName), "company_name")
			continue
		}

		exhibitor := &entities.Exhibitor{
			EventID:      eventID,
			CompanyName:  *row.CompanyName,
			BoothNumber:  row.BoothNumber,
			Description:  row.Description,
			ContactName:  row.ContactName,
			ContactEmail: row.ContactEmail,
			ContactPhone: row.ContactPhone,
			WebsiteURL:   row.WebsiteURL,
			LogoURL:      row.LogoURL,
		}
		i.created(result, *row.CompanyName, "company name", i.stores.Exhibitors.CreateExhibitor(ctx, exhibitor))
	}
	return nil
}

func (i *Importer) importSponsors(ctx context.Context, eventID uint, rows []RawRow, result *Result) error {
	for n, raw := range rows {
		row := NormalizeSponsor(raw)
		if row.CompanyName == nil {
			i.missing(result, n, deref(row.ContactName), "company_name")
			continue
		}

		sponsor := &entities.Sponsor{
			EventID:      eventID,
			CompanyName:  *row.CompanyName,
			Tier:         row.Tier,
			Description:  row.Description,
			ContactName:  row.ContactName,
			ContactEmail: row.ContactEmail,
			WebsiteURL:   row.WebsiteURL,
			LogoURL:      row.LogoURL,
		}
		i.created(result, *row.CompanyName, "company name", i.stores.Sponsors.CreateSponsor(ctx, sponsor))
	}
	return nil
}

func (i *Importer) importGroups(ctx context.Context, eventID uint, rows []RawRow, result *Result) error {
	for n, raw := range rows {
		row := NormalizeGroup(raw)
		if row.Name == nil {
			i.missing(result, n, "", "name")
			continue
		}

		group := &entities.Group{
			EventID:     eventID,
			Name:        *row.Name,
			Description: row.Description,
			Color:       row.Color,
		}
		i.created(result, *row.Name, "name", i.stores.Groups.CreateGroup(ctx, group))
	}
	return nil
}

// importAttendees needs an email or a name; groups are created on first
// reference like session groups.
func (i *Importer) importAttendees(ctx context.Context, eventID uint, rows []RawRow, result *Result) error {
	groupRefs, err := i.groupResolver(ctx, eventID)
	if err != nil {
		return err
	}

	for n, raw := range rows {
		row := NormalizeAttendee(raw)
		if row.Email == nil && row.FullName == nil {
			i.missing(result, n, "", "email or full_name")
			continue
		}
		identifier := deref(row.FullName)
		if identifier == "" {
			identifier = *row.Email
		}

		groupIDs, groupErrs := groupRefs.Resolve(ctx, row.Groups)

		attendee := &entities.Attendee{
			EventID:  eventID,
			FullName: row.FullName,
			Email:    row.Email,
			Company:  row.Company,
			JobTitle: row.JobTitle,
			Phone:    row.Phone,
		}
		if !i.created(result, identifier, "email", i.stores.Attendees.CreateAttendee(ctx, attendee)) {
			continue
		}

		i.referenceErrors(result, "Attendee", identifier, "group", groupErrs)
		if err := i.stores.Attendees.AddAttendeeGroups(ctx, attendee.ID, groupIDs); err != nil {
			result.addError("Attendee %q: could not assign groups: %v", identifier, err)
		}
	}
	return nil
}
