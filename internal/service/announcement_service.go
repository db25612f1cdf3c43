package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/repository"
)

// AnnouncementFeedLimit caps the announcements returned to a viewer.
const AnnouncementFeedLimit = 20

// AnnouncementService publishes and lists broadcast messages.
type AnnouncementService interface {
	ListFor(ctx context.Context, viewer dto.Principal) ([]models.AnnouncementDetail, error)
	Create(ctx context.Context, payload dto.AnnouncementCreateRequest, author dto.Principal) error
	Delete(ctx context.Context, id uint, actor dto.Principal) error
}

type announcementService struct {
	repo          repository.AnnouncementRepository
	validator     *validator.Validate
	activity      ActivityRecorder
	titlePolicy   *bluemonday.Policy
	contentPolicy *bluemonday.Policy
	logger        zerolog.Logger
}

// NewAnnouncementService constructs the announcement service.
func NewAnnouncementService(repo repository.AnnouncementRepository, validator *validator.Validate, activity ActivityRecorder, logger zerolog.Logger) AnnouncementService {
	contentPolicy := bluemonday.UGCPolicy()
	contentPolicy.AllowElements("br")

	return &announcementService{
		repo:          repo,
		validator:     validator,
		activity:      activity,
		titlePolicy:   bluemonday.StrictPolicy(),
		contentPolicy: contentPolicy,
		logger:        logger.With().Str("component", "announcement_service").Logger(),
	}
}

// ListFor returns the newest announcements addressed to everyone or to the viewer's role.
func (s *announcementService) ListFor(ctx context.Context, viewer dto.Principal) ([]models.AnnouncementDetail, error) {
	return s.repo.List(ctx, repository.AnnouncementFilter{
		Audience: viewer.Role.String(),
		Limit:    AnnouncementFeedLimit,
	})
}

func (s *announcementService) Create(ctx context.Context, payload dto.AnnouncementCreateRequest, author dto.Principal) error {
	payload.TargetRole = strings.ToLower(strings.TrimSpace(payload.TargetRole))
	if err := validatePayload(s.validator, payload); err != nil {
		return err
	}

	title := strings.TrimSpace(s.titlePolicy.Sanitize(payload.Title))
	content := strings.TrimSpace(s.contentPolicy.Sanitize(payload.Content))
	var empty []string
	if title == "" {
		empty = append(empty, "title")
	}
	if content == "" {
		empty = append(empty, "content")
	}
	if len(empty) > 0 {
		return &ValidationError{Missing: empty}
	}

	target := payload.TargetRole
	if target == "" {
		target = models.TargetAll
	}

	announcement := models.Announcement{
		Title:      title,
		Content:    content,
		AuthorID:   author.ID,
		TargetRole: target,
	}
	if err := s.repo.Create(ctx, &announcement); err != nil {
		return err
	}

	recordActivity(ctx, s.activity, s.logger, author, "announcement.created", "announcement", &announcement.ID, map[string]interface{}{"target_role": target})
	return nil
}

func (s *announcementService) Delete(ctx context.Context, id uint, actor dto.Principal) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound("announcement", err)
	}

	recordActivity(ctx, s.activity, s.logger, actor, "announcement.deleted", "announcement", &id, nil)
	return nil
}
