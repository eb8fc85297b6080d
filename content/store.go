package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"miledesigns/models"
)

// ContentKey addresses the one row that holds the whole aggregate.
const ContentKey = "miledesigns"

var ErrStoreUnavailable = errors.New("content store unavailable")

// Store owns the "one row holds everything" persistence contract: the
// aggregate is fetched or initialized as a unit and only ever overwritten
// as a unit.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// GetAll fetches the singleton row. A missing row is first-run: the default
// catalog is written into it and returned. An existing row is normalized
// against the defaults before it is handed out.
func (s *Store) GetAll(ctx context.Context) (SiteContentData, error) {
	var row models.SiteContent
	err := s.db.WithContext(ctx).First(&row, "key = ?", ContentKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := Defaults()
		if err := s.write(ctx, defaults); err != nil {
			return SiteContentData{}, fmt.Errorf("initializing content row: %w", err)
		}
		return defaults, nil
	}
	if err != nil {
		return SiteContentData{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return Normalize([]byte(row.Payload)), nil
}

// SaveAll normalizes the aggregate and overwrites the singleton row with it.
// Insert-or-replace keyed by the fixed key; either the whole aggregate is
// visible afterward or the previous row is unchanged.
func (s *Store) SaveAll(ctx context.Context, data SiteContentData) error {
	return s.write(ctx, NormalizeData(data))
}

// Reset overwrites the singleton row with the default catalog. Client-side
// working state is not touched; callers reload separately.
func (s *Store) Reset(ctx context.Context) error {
	return s.SaveAll(ctx, Defaults())
}

func (s *Store) write(ctx context.Context, data SiteContentData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding content payload: %w", err)
	}

	row := models.SiteContent{Key: ContentKey, Payload: string(payload)}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "key"}}, UpdateAll: true}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Per-collection convenience accessors. Thin read-replace-save wrappers
// with no invariants of their own.

func (s *Store) Projects(ctx context.Context) ([]Project, error) {
	data, err := s.GetAll(ctx)
	return data.Projects, err
}

func (s *Store) SaveProjects(ctx context.Context, projects []Project) error {
	return s.replace(ctx, func(data *SiteContentData) { data.Projects = projects })
}

func (s *Store) Services(ctx context.Context) ([]Service, error) {
	data, err := s.GetAll(ctx)
	return data.Services, err
}

func (s *Store) SaveServices(ctx context.Context, services []Service) error {
	return s.replace(ctx, func(data *SiteContentData) { data.Services = services })
}

func (s *Store) Testimonials(ctx context.Context) ([]Testimonial, error) {
	data, err := s.GetAll(ctx)
	return data.Testimonials, err
}

func (s *Store) SaveTestimonials(ctx context.Context, testimonials []Testimonial) error {
	return s.replace(ctx, func(data *SiteContentData) { data.Testimonials = testimonials })
}

func (s *Store) SocialLinks(ctx context.Context) ([]SocialLink, error) {
	data, err := s.GetAll(ctx)
	return data.SocialLinks, err
}

func (s *Store) SaveSocialLinks(ctx context.Context, links []SocialLink) error {
	return s.replace(ctx, func(data *SiteContentData) { data.SocialLinks = links })
}

func (s *Store) TeamMembers(ctx context.Context) ([]TeamMember, error) {
	data, err := s.GetAll(ctx)
	return data.TeamMembers, err
}

func (s *Store) SaveTeamMembers(ctx context.Context, members []TeamMember) error {
	return s.replace(ctx, func(data *SiteContentData) { data.TeamMembers = members })
}

func (s *Store) VlogEntries(ctx context.Context) ([]VlogEntry, error) {
	data, err := s.GetAll(ctx)
	return data.VlogEntries, err
}

func (s *Store) SaveVlogEntries(ctx context.Context, entries []VlogEntry) error {
	return s.replace(ctx, func(data *SiteContentData) { data.VlogEntries = entries })
}

func (s *Store) ContactDetails(ctx context.Context) (ContactDetails, error) {
	data, err := s.GetAll(ctx)
	return data.ContactDetails, err
}

func (s *Store) SaveContactDetails(ctx context.Context, details ContactDetails) error {
	return s.replace(ctx, func(data *SiteContentData) { data.ContactDetails = details })
}

func (s *Store) AboutContent(ctx context.Context) (AboutContent, error) {
	data, err := s.GetAll(ctx)
	return data.AboutContent, err
}

func (s *Store) SaveAboutContent(ctx context.Context, about AboutContent) error {
	return s.replace(ctx, func(data *SiteContentData) { data.AboutContent = about })
}

func (s *Store) AdminProfile(ctx context.Context) (AdminProfile, error) {
	data, err := s.GetAll(ctx)
	return data.AdminProfile, err
}

func (s *Store) SaveAdminProfile(ctx context.Context, profile AdminProfile) error {
	return s.replace(ctx, func(data *SiteContentData) { data.AdminProfile = profile })
}

func (s *Store) replace(ctx context.Context, mutate func(*SiteContentData)) error {
	data, err := s.GetAll(ctx)
	if err != nil {
		return err
	}
	mutate(&data)
	return s.SaveAll(ctx, data)
}
