package entities

import "time"

// Event is the parent scope for every imported entity.
type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Slug      string    `gorm:"size:255;uniqueIndex" json:"slug"`
	StartDate string    `gorm:"size:32" json:"start_date,omitempty"`
	EndDate   string    `gorm:"size:32" json:"end_date,omitempty"`
	Venue     string    `gorm:"size:255" json:"venue,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Speaker email is optional; NULL emails never collide on the unique index.
type Speaker struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EventID     uint      `gorm:"not null;index;uniqueIndex:idx_speakers_event_email" json:"event_id"`
	FullName    string    `gorm:"size:255;not null" json:"full_name"`
	Credentials *string   `gorm:"size:255" json:"credentials,omitempty"`
	Bio         *string   `gorm:"type:text" json:"bio,omitempty"`
	Specialty   *string   `gorm:"size:255" json:"specialty,omitempty"`
	Institution *string   `gorm:"size:255" json:"institution,omitempty"`
	Email       *string   `gorm:"size:255;uniqueIndex:idx_speakers_event_email" json:"email,omitempty"`
	LinkedInURL *string   `gorm:"column:linkedin_url;size:500" json:"linkedin_url,omitempty"`
	WebsiteURL  *string   `gorm:"size:500" json:"website_url,omitempty"`
	PhotoURL    *string   `gorm:"size:500" json:"photo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Session date and times are stored exactly as imported.
type Session struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	EventID     uint             `gorm:"not null;index;uniqueIndex:idx_sessions_event_slot" json:"event_id"`
	Title       string           `gorm:"size:500;not null;uniqueIndex:idx_sessions_event_slot" json:"title"`
	Description *string          `gorm:"type:text" json:"description,omitempty"`
	Date        string           `gorm:"size:32;not null;uniqueIndex:idx_sessions_event_slot" json:"date"`
	StartTime   string           `gorm:"size:32;not null;uniqueIndex:idx_sessions_event_slot" json:"start_time"`
	EndTime     string           `gorm:"size:32;not null" json:"end_time"`
	Location    *string          `gorm:"size:255" json:"location,omitempty"`
	Track       *string          `gorm:"size:255" json:"track,omitempty"`
	SessionType *string          `gorm:"size:100" json:"session_type,omitempty"`
	Speakers    []SessionSpeaker `gorm:"foreignKey:SessionID" json:"speakers,omitempty"`
	Groups      []SessionGroup   `gorm:"foreignKey:SessionID" json:"groups,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// SessionSpeaker links a speaker to a session. Position keeps the order
// the speakers were listed in.
type SessionSpeaker struct {
	SessionID uint `gorm:"primaryKey" json:"session_id"`
	SpeakerID uint `gorm:"primaryKey" json:"speaker_id"`
	Position  int  `gorm:"not null;default:0" json:"position"`
}

type SessionGroup struct {
	SessionID uint `gorm:"primaryKey" json:"session_id"`
	GroupID   uint `gorm:"primaryKey" json:"group_id"`
}

type Exhibitor struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EventID      uint      `gorm:"not null;index;uniqueIndex:idx_exhibitors_event_company" json:"event_id"`
	CompanyName  string    `gorm:"size:255;not null;uniqueIndex:idx_exhibitors_event_company" json:"company_name"`
	BoothNumber  *string   `gorm:"size:50" json:"booth_number,omitempty"`
	Description  *string   `gorm:"type:text" json:"description,omitempty"`
	ContactName  *string   `gorm:"size:255" json:"contact_name,omitempty"`
	ContactEmail *string   `gorm:"size:255" json:"contact_email,omitempty"`
	ContactPhone *string   `gorm:"size:50" json:"contact_phone,omitempty"`
	WebsiteURL   *string   `gorm:"size:500" json:"website_url,omitempty"`
	LogoURL      *string   `gorm:"size:500" json:"logo_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Sponsor struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EventID      uint      `gorm:"not null;index;uniqueIndex:idx_sponsors_event_company" json:"event_id"`
	CompanyName  string    `gorm:"size:255;not null;uniqueIndex:idx_sponsors_event_company" json:"company_name"`
	Tier         *string   `gorm:"size:50" json:"tier,omitempty"`
	Description  *string   `gorm:"type:text" json:"description,omitempty"`
	ContactName  *string   `gorm:"size:255" json:"contact_name,omitempty"`
	ContactEmail *string   `gorm:"size:255" json:"contact_email,omitempty"`
	WebsiteURL   *string   `gorm:"size:500" json:"website_url,omitempty"`
	LogoURL      *string   `gorm:"size:500" json:"logo_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Group is an attendee segment ("VIP", "Press"). Groups are created
// implicitly when an import references an unknown name.
type Group struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EventID     uint      `gorm:"not null;index;uniqueIndex:idx_groups_event_name" json:"event_id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex:idx_groups_event_name" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Color       *string   `gorm:"size:20" json:"color,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Attendee struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	EventID   uint            `gorm:"not null;index;uniqueIndex:idx_attendees_event_email" json:"event_id"`
	FullName  *string         `gorm:"size:255" json:"full_name,omitempty"`
	Email     *string         `gorm:"size:255;uniqueIndex:idx_attendees_event_email" json:"email,omitempty"`
	Company   *string         `gorm:"size:255" json:"company,omitempty"`
	JobTitle  *string         `gorm:"size:255" json:"job_title,omitempty"`
	Phone     *string         `gorm:"size:50" json:"phone,omitempty"`
	Groups    []AttendeeGroup `gorm:"foreignKey:AttendeeID" json:"groups,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type AttendeeGroup struct {
	AttendeeID uint `gorm:"primaryKey" json:"attendee_id"`
	GroupID    uint `gorm:"primaryKey" json:"group_id"`
}

func (Event) TableName() string {
	return "events"
}

func (Speaker) TableName() string {
	return "speakers"
}

func (Session) TableName() string {
	return "sessions"
}

func (SessionSpeaker) TableName() string {
	return "session_speakers"
}

func (SessionGroup) TableName() string {
	return "session_groups"
}

func (Exhibitor) TableName() string {
	return "exhibitors"
}

func (Sponsor) TableName() string {
	return "sponsors"
}

func (Group) TableName() string {
	return "event_groups"
}

func (Attendee) TableName() string {
	return "attendees"
}

func (AttendeeGroup) TableName() string {
	return "attendee_groups"
}
