package resume

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

// PersonalInfo holds the contact block shown at the top of a resume.
type PersonalInfo struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone" bson:"phone"`
}

type Experience struct {
	Title       string `json:"title" bson:"title"`
	Company     string `json:"company" bson:"company"`
	Duration    string `json:"duration" bson:"duration"`
	Description string `json:"description" bson:"description"`
}

type Education struct {
	Degree      string `json:"degree" bson:"degree"`
	Institution string `json:"institution" bson:"institution"`
	Duration    string `json:"duration" bson:"duration"`
	Description string `json:"description" bson:"description"`
}

type CustomSection struct {
	Title   string `json:"title" bson:"title"`
	Content string `json:"content" bson:"content"`
}

// Resume is the document the editor submits. It has no identity until saved.
type Resume struct {
	PersonalInfo   PersonalInfo    `json:"personal_info" bson:"personal_info"`
	Summary        string          `json:"summary" bson:"summary"`
	Experience     []Experience    `json:"experience" bson:"experience"`
	Education      []Education     `json:"education" bson:"education"`
	Skills         []string        `json:"skills" bson:"skills"`
	CustomSections []CustomSection `json:"custom_sections" bson:"custom_sections"`
}

// Normalize replaces nil sequences with empty ones so stored records always
// serialize lists as [] rather than null.
func (r *Resume) Normalize() {
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.CustomSections == nil {
		r.CustomSections = []CustomSection{}
	}
}

// StoredResume is the durable record: a Resume plus its generated id and
// timestamps. The same shape is used for files, objects, cache values and
// Mongo documents.
type StoredResume struct {
	ID        string    `json:"id" bson:"_id"`
	Data      Resume    `json:"data" bson:"data"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// legacyTimeLayout is the zone-less ISO form found in records written before
// timestamps carried an offset. Such values are read as UTC.
const legacyTimeLayout = "2006-01-02T15:04:05"

// UnmarshalJSON accepts RFC 3339 timestamps as well as zone-less ISO ones.
func (s *StoredResume) UnmarshalJSON(b []byte) error {
	type plain StoredResume
	aux := struct {
		*plain
		CreatedAt string `json:"created_at"`
		UpdatedAt string `json:"updated_at"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	var err error
	if s.CreatedAt, err = parseTimestamp(aux.CreatedAt); err != nil {
		return fmt.Errorf("created_at: %w", err)
	}
	if s.UpdatedAt, err = parseTimestamp(aux.UpdatedAt); err != nil {
		return fmt.Errorf("updated_at: %w", err)
	}
	return nil
}

func parseTimestamp(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t, nil
	}
	// fractional seconds are accepted without being in the layout
	return time.ParseInLocation(legacyTimeLayout, v, time.UTC)
}

// Clone returns a copy of s that shares no slices with it.
func (s *StoredResume) Clone() *StoredResume {
	c := *s
	c.Data.Experience = slices.Clone(s.Data.Experience)
	c.Data.Education = slices.Clone(s.Data.Education)
	c.Data.Skills = slices.Clone(s.Data.Skills)
	c.Data.CustomSections = slices.Clone(s.Data.CustomSections)
	return &c
}

// Summary is the list view of a StoredResume.
type Summary struct {
	ID           string       `json:"id"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	PersonalInfo PersonalInfo `json:"personal_info"`
}

// Summarize returns the list view of s.
func (s *StoredResume) Summarize() Summary {
	return Summary{
		ID:           s.ID,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
		PersonalInfo: s.Data.PersonalInfo,
	}
}
