package service

import (
	"context"
	"fmt"
	"time"

	"crescendai-backend/internal/cache"
	"crescendai-backend/internal/database/models"
	"crescendai-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const recentRecordingsLimit = 5

// DashboardService aggregates a user's organizations and recordings
type DashboardService struct {
	orgs       repository.OrganizationRepositoryInterface
	recordings repository.RecordingRepositoryInterface
	cache      cache.Cache
	cacheTTL   time.Duration
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	orgs repository.OrganizationRepositoryInterface,
	recordings repository.RecordingRepositoryInterface,
	c cache.Cache,
	cacheTTL time.Duration,
) *DashboardService {
	if c == nil {
		c = cache.Noop{}
	}
	return &DashboardService{
		orgs:       orgs,
		recordings: recordings,
		cache:      c,
		cacheTTL:   cacheTTL,
	}
}

// RecentRecording is a recording listed on the dashboard
type RecentRecording struct {
	ID               uuid.UUID             `json:"id"`
	Name             string                `json:"name"`
	State            models.RecordingState `json:"state"`
	CreatedAt        time.Time             `json:"created_at"`
	OrganizationName string                `json:"organization_name"`
	OrganizationSlug string                `json:"organization_slug"`
}

// DashboardStats summarizes the recordings across a user's organizations
type DashboardStats struct {
	TotalOrganizations   int               `json:"total_organizations"`
	TotalRecordings      int64             `json:"total_recordings"`
	QueuedRecordings     int64             `json:"queued_recordings"`
	ProcessingRecordings int64             `json:"processing_recordings"`
	ProcessedRecordings  int64             `json:"processed_recordings"`
	RecentRecordings     []RecentRecording `json:"recent_recordings"`
}

// OrganizationOverview is one organization and its recordings
type OrganizationOverview struct {
	Organization repository.OrganizationWithRole `json:"organization"`
	Recordings   []RecordingResponse             `json:"recordings"`
}

// DashboardOverview lists every organization of a user with its recordings
type DashboardOverview struct {
	Organizations []OrganizationOverview `json:"organizations"`
}

// Stats returns recording counts and the most recent recordings across the actor's organizations
func (s *DashboardService) Stats(ctx context.Context, actorID uuid.UUID) (*DashboardStats, error) {
	key := cache.DashboardStatsKey(actorID.String())
	return cachedJSON(ctx, s.cache, "dashboard", key, s.cacheTTL, func() (*DashboardStats, error) {
		return s.loadStats(actorID)
	})
}

func (s *DashboardService) loadStats(actorID uuid.UUID) (*DashboardStats, error) {
	stats := &DashboardStats{RecentRecordings: []RecentRecording{}}

	orgIDs, err := s.orgs.ListIDsForUser(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	if len(orgIDs) == 0 {
		return stats, nil
	}
	stats.TotalOrganizations = len(orgIDs)

	counts, err := s.recordings.CountByStateForOrganizations(orgIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count recordings: %w", err)
	}
	stats.QueuedRecordings = counts[models.RecordingStateQueued]
	stats.ProcessingRecordings = counts[models.RecordingStateProcessing]
	stats.ProcessedRecordings = counts[models.RecordingStateProcessed]
	stats.TotalRecordings = stats.QueuedRecordings + stats.ProcessingRecordings + stats.ProcessedRecordings

	recent, err := s.recordings.RecentForOrganizations(orgIDs, recentRecordingsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent recordings: %w", err)
	}
	for _, r := range recent {
		item := RecentRecording{
			ID:        r.ID,
			Name:      r.Name,
			State:     r.State,
			CreatedAt: r.CreatedAt,
		}
		if r.Organization != nil {
			item.OrganizationName = r.Organization.Name
			item.OrganizationSlug = r.Organization.Slug
		}
		stats.RecentRecordings = append(stats.RecentRecordings, item)
	}
	return stats, nil
}

// Overview loads the actor's organizations and then each organization's recordings
// concurrently. The first failure cancels the remaining loads.
func (s *DashboardService) Overview(ctx context.Context, actorID uuid.UUID) (*DashboardOverview, error) {
	orgs, err := s.orgs.ListForUser(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	overview := &DashboardOverview{Organizations: make([]OrganizationOverview, len(orgs))}
	g, gctx := errgroup.WithContext(ctx)
	for i, org := range orgs {
		g.Go(func() error {
			recordings, err := s.recordings.ListByOrganization(gctx, org.ID)
			if err != nil {
				return fmt.Errorf("failed to list recordings for organization %s: %w", org.Slug, err)
			}
			overview.Organizations[i] = OrganizationOverview{
				Organization: org,
				Recordings:   toRecordingResponses(recordings),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return overview, nil
}
