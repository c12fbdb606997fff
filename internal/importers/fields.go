package importers

// FieldRule maps one canonical field to the raw header keys that may carry
// it. Keys are tried in order and the first non-empty value wins; the
// system's own key is listed first, then the conference-tool export keys.
type FieldRule struct {
	Field string
	Keys  []string
}

// FieldTable is the declarative mapping for one entity kind.
type FieldTable []FieldRule

// Apply returns the canonical values present in row. Fields with no
// non-empty candidate are omitted, never defaulted.
func (t FieldTable) Apply(row RawRow) map[string]string {
	values := make(map[string]string, len(t))
	for _, rule := range t {
		for _, key := range rule.Keys {
			if v := row.Get(key); v != "" {
				values[rule.Field] = v
				break
			}
		}
	}
	return values
}

// Fields lists the canonical field names in table order.
func (t FieldTable) Fields() []string {
	fields := make([]string, len(t))
	for i, rule := range t {
		fields[i] = rule.Field
	}
	return fields
}

var SpeakerFields = FieldTable{
	{"full_name", []string{"full_name", "speaker_full_name", "speaker_name", "name"}},
	{"first_name", []string{"first_name", "speaker_first_name", "firstname"}},
	{"last_name", []string{"last_name", "speaker_last_name", "lastname", "surname"}},
	{"credentials", []string{"credentials", "speaker_credentials", "degrees", "suffix"}},
	{"bio", []string{"bio", "speaker_bio", "biography"}},
	{"specialty", []string{"specialty", "speaker_specialty", "specialization"}},
	{"institution", []string{"institution", "speaker_institution", "speaker_organization", "organization", "affiliation", "company"}},
	{"email", []string{"email", "speaker_email", "email_address"}},
	{"linkedin_url", []string{"linkedin_url", "speaker_linkedin_url", "speaker_linkedin", "linkedin"}},
	{"website_url", []string{"website_url", "speaker_website_url", "speaker_website", "website"}},
	{"photo_url", []string{"photo_url", "speaker_photo_url", "headshot_url", "headshot"}},
}

var SessionFields = FieldTable{
	{"title", []string{"title", "session_title", "session_name"}},
	{"description", []string{"description", "session_description", "abstract"}},
	{"date", []string{"date", "session_date", "day"}},
	{"start_time", []string{"start_time", "session_start_time", "session_start", "start"}},
	{"end_time", []string{"end_time", "session_end_time", "session_end", "end"}},
	{"location", []string{"location", "session_location", "session_room", "room"}},
	{"track", []string{"track", "session_track"}},
	{"session_type", []string{"session_type", "session_format", "type", "format"}},
	{"speakers", []string{"speakers", "session_speakers", "speaker_names", "presenters"}},
	{"groups", []string{"groups", "session_groups", "audience", "group_names"}},
}

// companyFields are shared by exhibitors and sponsors; prefix adds the
// export's "exhibitor_"/"sponsor_" variants.
func companyFields(prefix string, extra ...FieldRule) FieldTable {
	table := FieldTable{
		{"company_name", []string{"company_name", prefix + "_company_name", prefix + "_name", "company", "organization"}},
		{"description", []string{"description", prefix + "_description"}},
		{"contact_name", []string{"contact_name", prefix + "_contact_name", "contact", "primary_contact"}},
		{"contact_first_name", []string{"contact_first_name", prefix + "_contact_first_name", "first_name"}},
		{"contact_last_name", []string{"contact_last_name", prefix + "_contact_last_name", "last_name"}},
		{"contact_email", []string{"contact_email", prefix + "_contact_email", prefix + "_email", "email"}},
		{"website_url", []string{"website_url", prefix + "_website_url", prefix + "_website", "website"}},
		{"logo_url", []string{"logo_url", prefix + "_logo_url", prefix + "_logo", "logo"}},
	}
	return append(table, extra...)
}

var ExhibitorFields = companyFields("exhibitor",
	FieldRule{"booth_number", []string{"booth_number", "exhibitor_booth_number", "exhibitor_booth", "booth", "stand"}},
	FieldRule{"contact_phone", []string{"contact_phone", "exhibitor_contact_phone", "exhibitor_phone", "phone"}},
)

var SponsorFields = companyFields("sponsor",
	FieldRule{"tier", []string{"tier", "sponsor_tier", "sponsorship_level", "sponsor_level", "level"}},
)

var GroupFields = FieldTable{
	{"name", []string{"name", "group_name", "group"}},
	{"description", []string{"description", "group_description"}},
	{"color", []string{"color", "group_color", "colour"}},
}

var AttendeeFields = FieldTable{
	{"full_name", []string{"full_name", "attendee_full_name", "attendee_name", "name"}},
	{"first_name", []string{"first_name", "attendee_first_name", "firstname"}},
	{"last_name", []string{"last_name", "attendee_last_name", "lastname", "surname"}},
	{"email", []string{"email", "attendee_email", "email_address"}},
	{"company", []string{"company", "attendee_company", "organization"}},
	{"job_title", []string{"job_title", "attendee_job_title", "position"}},
	{"phone", []string{"phone", "attendee_phone", "mobile"}},
	{"groups", []string{"groups", "attendee_groups", "group_names", "group", "ticket_type"}},
}
