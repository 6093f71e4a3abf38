package interview

import (
	"errors"

	"github.com/interview-hub/interview-hub/internal/models"
	"github.com/interview-hub/interview-hub/internal/types"
	"gorm.io/gorm"
)

type ListRequest struct {
	Page  int `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}

type Service struct {
	db *gorm.DB
}

func NewService(conn *gorm.DB) *Service {
	return &Service{db: conn}
}

func (s *Service) GetList(request ListRequest) (types.PaginatedResponse[types.InterviewListItem], error) {
	var (
		interviews []models.Interview
		total      int64
	)

	query := s.db.Model(&models.Interview{}).Where("is_archived = ?", false).Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return types.PaginatedResponse[types.InterviewListItem]{}, err
	}

	err := query.
		Preload("Status").Preload("CreatedByUser").
		Order("created_at DESC").
		Offset((request.Page - 1) * request.Limit).
		Limit(request.Limit).
		Find(&interviews).Error

	if err != nil {
		return types.PaginatedResponse[types.InterviewListItem]{}, err
	}

	items := make([]types.InterviewListItem, 0, len(interviews))

	for _, record := range interviews {
		items = append(items, types.InterviewListItem{
			ID:          record.ID,
			Title:       record.Title,
			Description: record.Description,
			Status: types.StatusResponse{
				Code:  record.Status.Code,
				Title: record.Status.Title,
			},
			CreatedByUser: types.AuthorResponse{
				ID:        record.CreatedByUser.ID,
				Name:      record.CreatedByUser.Name,
				AvatarURL: record.CreatedByUser.AvatarURL,
			},
			CreatedAt: record.CreatedAt,
		})
	}

	return types.NewPaginatedResponse(items, total, request.Page, request.Limit), nil
}

func (s *Service) GetDetail(id string) (*types.InterviewDetailResponse, error) {
	record, err := s.loadInterview(id)

	if err != nil {
		return nil, err
	}

	if err := ValidateInterviewExists(record); err != nil {
		return nil, err
	}

	if err := ValidateInterviewNotArchived(record); err != nil {
		return nil, err
	}

	return &types.InterviewDetailResponse{
		ID:          record.ID,
		Title:       record.Title,
		Description: record.Description,
		Status: types.StatusResponse{
			Code:  record.Status.Code,
			Title: record.Status.Title,
		},
		CreatedByUser: types.AuthorResponse{
			ID:        record.CreatedByUser.ID,
			Name:      record.CreatedByUser.Name,
			AvatarURL: record.CreatedByUser.AvatarURL,
		},
		CreatedAt: record.CreatedAt,
	}, nil
}

// UpdateDetail applies a minimal patch to the interview and, when the update
// actually changed a row, appends an audit log carrying the requested values.
// Both writes share one transaction: the interview is never updated without
// its log, nor a log written without the update.
func (s *Service) UpdateDetail(id string, request UpdateDetailRequest, userID string) error {
	record, err := s.loadInterview(id)

	if err != nil {
		return err
	}

	if err := ValidateInterviewExists(record); err != nil {
		return err
	}

	if err := ValidateInterviewNotArchived(record); err != nil {
		return err
	}

	if err := ValidateInterviewAllowedToUpdate(record, userID); err != nil {
		return err
	}

	patch, err := BuildPatch(record, request)

	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var affected int64

		if len(patch) > 0 {
			result := tx.Model(&models.Interview{}).Where("id = ?", id).Updates(patch)

			if result.Error != nil {
				return result.Error
			}

			affected = result.RowsAffected
		}

		// An empty patch is a legitimate no-op: nothing changed, no log.
		if affected == 0 {
			return nil
		}

		entry := models.InterviewLog{
			InterviewID:     id,
			CreatedByUserID: userID,
			Title:           request.Title,
			Description:     request.Description,
			StatusCode:      request.StatusCode,
		}

		return tx.Create(&entry).Error
	})
}

// Archive marks the interview terminal. Intentionally no ownership check;
// any authenticated caller may archive.
func (s *Service) Archive(id string) error {
	record, err := s.loadInterview(id)

	if err != nil {
		return err
	}

	if err := ValidateInterviewExists(record); err != nil {
		return err
	}

	if err := ValidateInterviewNotArchived(record); err != nil {
		return err
	}

	return s.db.Model(&models.Interview{}).
		Where("id = ?", id).
		Update("is_archived", true).Error
}

func (s *Service) GetLogList(interviewID string, request ListRequest) (types.PaginatedResponse[types.InterviewLogListItem], error) {
	var (
		logs  []models.InterviewLog
		total int64
	)

	query := s.db.Model(&models.InterviewLog{}).Where("interview_id = ?", interviewID).Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return types.PaginatedResponse[types.InterviewLogListItem]{}, err
	}

	err := query.
		Preload("Status").Preload("CreatedByUser").
		Order("created_at DESC").
		Offset((request.Page - 1) * request.Limit).
		Limit(request.Limit).
		Find(&logs).Error

	if err != nil {
		return types.PaginatedResponse[types.InterviewLogListItem]{}, err
	}

	items := make([]types.InterviewLogListItem, 0, len(logs))

	for _, entry := range logs {
		items = append(items, types.InterviewLogListItem{
			ID:          entry.ID,
			Title:       entry.Title,
			Description: entry.Description,
			Status: types.StatusResponse{
				Code:  entry.Status.Code,
				Title: entry.Status.Title,
			},
			CreatedByUser: types.AuthorResponse{
				ID:        entry.CreatedByUser.ID,
				Name:      entry.CreatedByUser.Name,
				AvatarURL: entry.CreatedByUser.AvatarURL,
			},
			CreatedAt: entry.CreatedAt,
		})
	}

	return types.NewPaginatedResponse(items, total, request.Page, request.Limit), nil
}

func (s *Service) GetCommentList(interviewID string, request ListRequest, currentUserID string) (types.PaginatedResponse[types.InterviewCommentListItem], error) {
	var (
		comments []models.InterviewComment
		total    int64
	)

	query := s.db.Model(&models.InterviewComment{}).Where("interview_id = ?", interviewID).Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return types.PaginatedResponse[types.InterviewCommentListItem]{}, err
	}

	err := query.
		Preload("CreatedByUser").
		Order("created_at DESC").
		Offset((request.Page - 1) * request.Limit).
		Limit(request.Limit).
		Find(&comments).Error

	if err != nil {
		return types.PaginatedResponse[types.InterviewCommentListItem]{}, err
	}

	items := make([]types.InterviewCommentListItem, 0, len(comments))

	for _, comment := range comments {
		items = append(items, types.InterviewCommentListItem{
			ID:         comment.ID,
			Comment:    comment.Comment,
			IsViewOnly: comment.CreatedByUserID != currentUserID,
			CreatedByUser: types.AuthorResponse{
				ID:        comment.CreatedByUser.ID,
				Name:      comment.CreatedByUser.Name,
				AvatarURL: comment.CreatedByUser.AvatarURL,
			},
			CreatedAt: comment.CreatedAt,
			UpdatedAt: comment.UpdatedAt,
		})
	}

	return types.NewPaginatedResponse(items, total, request.Page, request.Limit), nil
}

// CreateComment requires the interview to exist and still be open.
func (s *Service) CreateComment(interviewID, comment, userID string) error {
	record, err := s.loadInterview(interviewID)

	if err != nil {
		return err
	}

	if err := ValidateInterviewExists(record); err != nil {
		return err
	}

	if err := ValidateInterviewNotArchived(record); err != nil {
		return err
	}

	entry := models.InterviewComment{
		InterviewID:     interviewID,
		CreatedByUserID: userID,
		Comment:         comment,
	}

	return s.db.Create(&entry).Error
}

func (s *Service) UpdateComment(commentID, comment, userID string) error {
	record, err := s.loadComment(commentID)

	if err != nil {
		return err
	}

	if err := ValidateCommentExists(record); err != nil {
		return err
	}

	if err := ValidateCommentAllowedToUpdate(record, userID); err != nil {
		return err
	}

	return s.db.Model(record).Update("comment", comment).Error
}

func (s *Service) DeleteComment(commentID, userID string) error {
	record, err := s.loadComment(commentID)

	if err != nil {
		return err
	}

	if err := ValidateCommentExists(record); err != nil {
		return err
	}

	if err := ValidateCommentAllowedToUpdate(record, userID); err != nil {
		return err
	}

	return s.db.Delete(record).Error
}

func (s *Service) loadInterview(id string) (*models.Interview, error) {
	var record models.Interview

	err := s.db.Preload("Status").Preload("CreatedByUser").
		Where("id = ?", id).
		First(&record).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

func (s *Service) loadComment(id string) (*models.InterviewComment, error) {
	var record models.InterviewComment

	err := s.db.Where("id = ?", id).First(&record).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}
