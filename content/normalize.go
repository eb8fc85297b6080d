package content

import (
	"encoding/json"
	"errors"
)

// rawAggregate defers decoding of every field so a malformed or missing
// collection never poisons its siblings.
type rawAggregate struct {
	Projects       json.RawMessage `json:"projects"`
	Services       json.RawMessage `json:"services"`
	Testimonials   json.RawMessage `json:"testimonials"`
	SocialLinks    json.RawMessage `json:"socialLinks"`
	TeamMembers    json.RawMessage `json:"teamMembers"`
	VlogEntries    json.RawMessage `json:"vlogEntries"`
	ContactDetails json.RawMessage `json:"contactDetails"`
	AboutContent   json.RawMessage `json:"aboutContent"`
	AdminProfile   json.RawMessage `json:"adminProfile"`
}

// Normalize merges a loaded, possibly partial payload with the default
// catalog and returns a complete aggregate. Normalizing an already
// normalized aggregate returns it unchanged.
func Normalize(payload []byte) SiteContentData {
	defaults := Defaults()

	var raw rawAggregate
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &raw); err != nil {
			return defaults
		}
	}

	return SiteContentData{
		Projects:       listOrDefault(raw.Projects, defaults.Projects),
		Services:       listOrDefault(raw.Services, defaults.Services),
		Testimonials:   listOrDefault(raw.Testimonials, defaults.Testimonials),
		SocialLinks:    mergeSocialLinks(raw.SocialLinks, defaults.SocialLinks),
		TeamMembers:    listOrDefault(raw.TeamMembers, defaults.TeamMembers),
		VlogEntries:    listOrDefault(raw.VlogEntries, defaults.VlogEntries),
		ContactDetails: mergeContactDetails(raw.ContactDetails, defaults.ContactDetails),
		AboutContent:   mergeAboutContent(raw.AboutContent, defaults.AboutContent),
		AdminProfile:   mergeAdminProfile(raw.AdminProfile, defaults.AdminProfile),
	}
}

// NormalizeData runs a typed aggregate through the same merge rules as a
// loaded payload. Used on the write path so the stored row is always in
// normalized form.
func NormalizeData(data SiteContentData) SiteContentData {
	payload, err := json.Marshal(data)
	if err != nil {
		return Defaults()
	}
	return Normalize(payload)
}

// listOrDefault keeps the loaded value verbatim when it is a list
// (an explicitly empty list included), otherwise substitutes the default.
func listOrDefault[T any](raw json.RawMessage, def []T) []T {
	if len(raw) == 0 {
		return def
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return def
	}
	return items
}

// mergeSocialLinks keeps loaded entries untouched and in order, appending
// any default entry whose id the loaded list does not carry. Newly shipped
// default platforms show up on existing sites without clobbering edits.
func mergeSocialLinks(raw json.RawMessage, defs []SocialLink) []SocialLink {
	if len(raw) == 0 {
		return defs
	}
	var loaded []SocialLink
	if err := json.Unmarshal(raw, &loaded); err != nil || loaded == nil {
		return defs
	}

	seen := make(map[string]bool, len(loaded))
	for _, link := range loaded {
		seen[link.ID] = true
	}
	for _, def := range defs {
		if !seen[def.ID] {
			loaded = append(loaded, def)
		}
	}
	return loaded
}

// mergeContactDetails shallow-merges the loaded record over the defaults:
// keys present in the payload overwrite, absent keys keep their default.
// A mistyped field keeps its default without poisoning the rest of the
// record. phoneNumbers must be a list to win.
func mergeContactDetails(raw json.RawMessage, def ContactDetails) ContactDetails {
	if len(raw) == 0 {
		return def
	}
	merged := def
	if err := json.Unmarshal(raw, &merged); err != nil && !isFieldTypeError(err) {
		return def
	}
	if merged.PhoneNumbers == nil {
		merged.PhoneNumbers = def.PhoneNumbers
	}
	return merged
}

// mergeAboutContent shallow-merges like mergeContactDetails, but the three
// list fields only win when non-empty. An empty or absent list falls back
// to the defaults; a deliberate "clear everything" cannot be expressed for
// these fields. That matches the published behavior and is asserted as the
// chosen contract in the tests.
func mergeAboutContent(raw json.RawMessage, def AboutContent) AboutContent {
	if len(raw) == 0 {
		return def
	}
	merged := def
	if err := json.Unmarshal(raw, &merged); err != nil && !isFieldTypeError(err) {
		return def
	}
	if len(merged.Stats) == 0 {
		merged.Stats = def.Stats
	}
	if len(merged.HomeBackgroundImages) == 0 {
		merged.HomeBackgroundImages = def.HomeBackgroundImages
	}
	if len(merged.CertificateImages) == 0 {
		merged.CertificateImages = def.CertificateImages
	}
	return merged
}

// mergeAdminProfile shallow-merges the scalar fields and replaces subAdmins
// with the loaded entries that carry a non-empty string id and email. A
// missing or non-list subAdmins value falls back to the default (empty) list.
func mergeAdminProfile(raw json.RawMessage, def AdminProfile) AdminProfile {
	if len(raw) == 0 {
		return def
	}

	var shadow struct {
		ID        *string         `json:"id"`
		Name      *string         `json:"name"`
		Email     *string         `json:"email"`
		AvatarURL *string         `json:"avatarUrl"`
		SubAdmins json.RawMessage `json:"subAdmins"`
	}
	if err := json.Unmarshal(raw, &shadow); err != nil {
		return def
	}

	merged := def
	if shadow.ID != nil {
		merged.ID = *shadow.ID
	}
	if shadow.Name != nil {
		merged.Name = *shadow.Name
	}
	if shadow.Email != nil {
		merged.Email = *shadow.Email
	}
	if shadow.AvatarURL != nil {
		merged.AvatarURL = *shadow.AvatarURL
	}
	merged.SubAdmins = filterSubAdmins(shadow.SubAdmins, def.SubAdmins)
	return merged
}

// isFieldTypeError reports whether err is a mistyped field inside an
// otherwise valid object. The decoder populates every well-typed field
// before reporting it, so the merged record is safe to keep: only the
// offending field stays at its default.
func isFieldTypeError(err error) bool {
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr)
}

func filterSubAdmins(raw json.RawMessage, def []SubAdmin) []SubAdmin {
	if len(raw) == 0 {
		return def
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return def
	}

	kept := make([]SubAdmin, 0, len(entries))
	for _, entry := range entries {
		var shadow struct {
			ID      *string `json:"id"`
			Name    string  `json:"name"`
			Email   *string `json:"email"`
			Enabled bool    `json:"enabled"`
		}
		if err := json.Unmarshal(entry, &shadow); err != nil {
			continue
		}
		if shadow.ID == nil || *shadow.ID == "" || shadow.Email == nil || *shadow.Email == "" {
			continue
		}
		kept = append(kept, SubAdmin{
			ID:      *shadow.ID,
			Name:    shadow.Name,
			Email:   *shadow.Email,
			Enabled: shadow.Enabled,
		})
	}
	return kept
}
