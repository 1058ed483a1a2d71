package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/wnjuguna/portfolio/internal/errs"
	"github.com/wnjuguna/portfolio/models"
)

// MessageCreate persists a new contact message. New messages are unread.
func (s *Store) MessageCreate(ctx context.Context, msg *models.ContactMessage) error {
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return errs.Wrap(err, "create contact message")
	}
	return nil
}

// MessageList returns all contact messages, newest first, with replies
// preloaded so the triage list can show reply state.
func (s *Store) MessageList(ctx context.Context) ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	if err := s.db.WithContext(ctx).Preload("Reply").Order("created_at desc, id desc").Find(&msgs).Error; err != nil {
		return nil, errs.Wrap(err, "query contact messages")
	}
	return msgs, nil
}

func (s *Store) MessageGet(ctx context.Context, id uint) (models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := s.db.WithContext(ctx).Preload("Reply").First(&msg, id).Error; err != nil {
		return models.ContactMessage{}, translate(err)
	}
	return msg, nil
}

// MessageMarkRead flips is_read to true. Marking an already-read message is
// a no-op and touches nothing else on the record.
func (s *Store) MessageMarkRead(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).
		Model(&models.ContactMessage{}).
		Where("id = ? AND is_read = ?", id, false).
		Update("is_read", true)
	if result.Error != nil {
		return errs.Wrap(result.Error, "mark message read")
	}
	return nil
}

// MessageDelete removes a message and its reply, if any, in one transaction.
func (s *Store) MessageDelete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("message_id = ?", id).Delete(&models.MessageReply{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.ContactMessage{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	return errs.Wrap(err, "delete contact message")
}

func (s *Store) MessageUnreadCount(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&count).Error; err != nil {
		return 0, errs.Wrap(err, "count unread messages")
	}
	return count, nil
}

// DashboardCounts are the summary figures on the dashboard home.
type DashboardCounts struct {
	Projects       int64
	Skills         int64
	UnreadMessages int64
	TotalMessages  int64
}

func (s *Store) Counts(ctx context.Context) (DashboardCounts, error) {
	db := s.db.WithContext(ctx)
	var counts DashboardCounts
	if err := db.Model(&models.Project{}).Count(&counts.Projects).Error; err != nil {
		return DashboardCounts{}, errs.Wrap(err, "count projects")
	}
	if err := db.Model(&models.Skill{}).Count(&counts.Skills).Error; err != nil {
		return DashboardCounts{}, errs.Wrap(err, "count skills")
	}
	if err := db.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&counts.UnreadMessages).Error; err != nil {
		return DashboardCounts{}, errs.Wrap(err, "count unread messages")
	}
	if err := db.Model(&models.ContactMessage{}).Count(&counts.TotalMessages).Error; err != nil {
		return DashboardCounts{}, errs.Wrap(err, "count messages")
	}
	return counts, nil
}

// ReplyUpsert creates the reply for a message or replaces its text if one
// already exists. The message must exist.
func (s *Store) ReplyUpsert(ctx context.Context, messageID uint, replyText string) (models.MessageReply, error) {
	var reply models.MessageReply
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var msg models.ContactMessage
		if err := tx.Select("id").First(&msg, messageID).Error; err != nil {
			return err
		}

		err := tx.Where("message_id = ?", messageID).First(&reply).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			reply = models.MessageReply{MessageID: messageID, ReplyText: replyText}
			return tx.Create(&reply).Error
		case err != nil:
			return err
		default:
			reply.ReplyText = replyText
			return tx.Save(&reply).Error
		}
	})
	if err != nil {
		return models.MessageReply{}, translate(errs.Wrap(err, "upsert reply"))
	}
	return reply, nil
}

func (s *Store) ReplyGet(ctx context.Context, id uint) (models.MessageReply, error) {
	var reply models.MessageReply
	if err := s.db.WithContext(ctx).First(&reply, id).Error; err != nil {
		return models.MessageReply{}, translate(err)
	}
	return reply, nil
}

// ReplyDelete removes a reply on its own, leaving the parent message intact.
// It returns the parent message id so callers can navigate back to it.
func (s *Store) ReplyDelete(ctx context.Context, id uint) (uint, error) {
	var reply models.MessageReply
	if err := s.db.WithContext(ctx).First(&reply, id).Error; err != nil {
		return 0, translate(err)
	}
	if err := s.db.WithContext(ctx).Delete(&reply).Error; err != nil {
		return 0, errs.Wrap(err, "delete reply")
	}
	return reply.MessageID, nil
}
