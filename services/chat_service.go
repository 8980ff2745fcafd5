package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/config"
	"backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrChatNotFound = errors.New("chat not found")

// Responder answers one free-text turn with the profile as context.
// *llm.Client satisfies it.
type Responder interface {
	Chat(ctx context.Context, message string, details *models.UserDetail) (string, error)
}

type ChatService struct {
	responder Responder
}

func NewChatService(responder Responder) *ChatService {
	return &ChatService{responder: responder}
}

func (s *ChatService) CreateChat(userID string) (*models.Chat, error) {
	chat := models.Chat{
		UserID: userID,
		Title:  fmt.Sprintf("Chat %s", uuid.NewString()[:8]),
	}
	if err := config.DB.Create(&chat).Error; err != nil {
		return nil, err
	}
	return &chat, nil
}

func (s *ChatService) ListChats(userID string) ([]models.Chat, error) {
	var chats []models.Chat
	err := config.DB.
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&chats).Error
	return chats, err
}

func (s *ChatService) GetChat(chatID, userID string) (*models.Chat, error) {
	var chat models.Chat
	err := config.DB.
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("messages.created_at ASC")
		}).
		Where("id = ? AND user_id = ?", chatID, userID).
		First(&chat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrChatNotFound
	}
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func (s *ChatService) DeleteChat(chatID, userID string) error {
	chat, err := s.GetChat(chatID, userID)
	if err != nil {
		return err
	}
	if err := config.DB.Where("chat_id = ?", chatID).Delete(&models.Message{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(chat).Error
}

func (s *ChatService) Messages(chatID, userID string) ([]models.Message, error) {
	if _, err := s.GetChat(chatID, userID); err != nil {
		return nil, err
	}
	var messages []models.Message
	err := config.DB.
		Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// SendMessage stores the user's turn, asks the assistant for a reply
// with the profile as context, and stores that reply. The whole turn
// commits together; a failed reply leaves no messages behind. Details
// may be nil when the user has not filled in the questionnaire yet.
func (s *ChatService) SendMessage(ctx context.Context, chatID, userID, content string, details *models.UserDetail) (*models.Message, *models.Message, error) {
	chat, err := s.GetChat(chatID, userID)
	if err != nil {
		return nil, nil, err
	}

	userMsg := models.Message{
		ChatID:  chat.ID,
		Content: content,
		SentBy:  models.SenderUser,
	}
	var aiMsg models.Message

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&userMsg).Error; err != nil {
			return err
		}

		reply, err := s.responder.Chat(ctx, content, details)
		if err != nil {
			return fmt.Errorf("assistant reply: %w", err)
		}

		aiMsg = models.Message{
			ChatID:  chat.ID,
			Content: reply,
			SentBy:  models.SenderAI,
		}
		if err := tx.Create(&aiMsg).Error; err != nil {
			return err
		}

		return tx.Model(chat).Update("updated_at", time.Now()).Error
	})
	if err != nil {
		return nil, nil, err
	}

	return &userMsg, &aiMsg, nil
}
