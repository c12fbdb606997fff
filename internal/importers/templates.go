package importers

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/mrlokans/eventadmin/internal/entities"
)

type template struct {
	header []string
	rows   [][]string
}

var templates = map[entities.ImportKind]template{
	entities.ImportKindSpeakers: {
		header: []string{"full_name", "credentials", "bio", "specialty", "institution", "email", "linkedin_url", "website_url", "photo_url"},
		rows: [][]string{
			{"Jane Doe", "MD, FACC", "Interventional cardiologist focused on structural heart disease.", "Cardiology", "Mayo Clinic", "jane.doe@example.com", "https://www.linkedin.com/in/janedoe", "https://janedoe.example.com", "https://example.com/photos/jane.jpg"},
			{"John Roe", "PhD", `Researcher and author of "Data at Scale".`, "Data Science", "MIT", "john.roe@example.com", "https://www.linkedin.com/in/johnroe", "https://johnroe.example.com", "https://example.com/photos/john.jpg"},
		},
	},
	entities.ImportKindSessions: {
		header: []string{"title", "description", "date", "start_time", "end_time", "location", "track", "session_type", "speakers", "groups"},
		rows: [][]string{
			{"Opening Keynote", "Welcome and state of the field.", "2025-03-14", "09:00", "10:00", "Main Hall", "Plenary", "keynote", "Jane Doe", "VIP"},
			{"Hands-on Workshop", "Bring a laptop.", "2025-03-14", "11:00", "12:30", "Room 204", "Workshops", "workshop", "Jane Doe; John Roe", "VIP; Press"},
		},
	},
	entities.ImportKindExhibitors: {
		header: []string{"company_name", "booth_number", "description", "contact_name", "contact_email", "contact_phone", "website_url", "logo_url"},
		rows: [][]string{
			{"Acme Medical", "A12", "Diagnostic imaging equipment.", "Wile Coyote", "wile@acme.example.com", "+1 555 0100", "https://acme.example.com", "https://acme.example.com/logo.png"},
		},
	},
	entities.ImportKindSponsors: {
		header: []string{"company_name", "tier", "description", "contact_name", "contact_email", "website_url", "logo_url"},
		rows: [][]string{
			{"Globex", "Gold", "Official coffee sponsor.", "Hank Scorpio", "hank@globex.example.com", "https://globex.example.com", "https://globex.example.com/logo.png"},
			{"Initech", "Silver", "Networking reception host.", "Bill Lumbergh", "bill@initech.example.com", "https://initech.example.com", "https://initech.example.com/logo.png"},
		},
	},
	entities.ImportKindGroups: {
		header: []string{"name", "description", "color"},
		rows: [][]string{
			{"VIP", "Speakers and invited guests", "#d4af37"},
			{"Press", "Accredited media", "#1e90ff"},
			{"Staff", "Event staff and volunteers", "#2e8b57"},
		},
	},
	entities.ImportKindAttendees: {
		header: []string{"full_name", "email", "company", "job_title", "phone", "groups"},
		rows: [][]string{
			{"Ann Smith", "ann.smith@example.com", "Contoso", "Nurse Practitioner", "+1 555 0142", "VIP"},
			{"Bob Jones", "bob.jones@example.com", "Fabrikam", "Reporter", "+1 555 0199", "Press; VIP"},
		},
	},
}

// Template returns an example CSV (header plus sample rows) for kind.
func Template(kind entities.ImportKind) (string, error) {
	tmpl, ok := templates[kind]
	if !ok {
		return "", fmt.Errorf("no template for import kind %q", kind)
	}

	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(tmpl.header); err != nil {
		return "", err
	}
	if err := w.WriteAll(tmpl.rows); err != nil {
		return "", err
	}
	return b.String(), nil
}

// TemplateFilename is the download name for kind's template.
func TemplateFilename(kind entities.ImportKind) string {
	return fmt.Sprintf("%s_import_template.csv", kind)
}
