package notifyservice

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/Amitjang/XAlISS-SERVER/pkg/rabbitmq"
)

//go:generate mockgen -source=notifyservice.go -destination=mock_notifyservice.go -package=notifyservice

const (
	RoutingKeyPush = "notification.push"
	RoutingKeySMS  = "notification.sms"
)

type Repo interface {
	Save(ctx context.Context, n *domain.Notification) error
}

type Config struct {
	Exchange string
	Lang     string
	ImageURL string
}

type pushEvent struct {
	NotificationID int64             `json:"notification_id"`
	RecipientType  string            `json:"recipient_type"`
	RecipientID    int64             `json:"recipient_id"`
	Title          string            `json:"title"`
	Body           string            `json:"body"`
	ImageURL       string            `json:"image_url,omitempty"`
	Data           map[string]string `json:"data,omitempty"`
	DeviceToken    string            `json:"device_token,omitempty"`
	DeviceType     string            `json:"device_type,omitempty"`
	Topic          string            `json:"topic,omitempty"`
}

type smsEvent struct {
	To       string `json:"to"`
	Template string `json:"template"`
	Lang     string `json:"lang"`
	Body     string `json:"body"`
}

type Service struct {
	publisher rabbitmq.Publisher
	repo      Repo
	cfg       Config
}

func New(publisher rabbitmq.Publisher, repo Repo, cfg Config) *Service {
	return &Service{
		publisher: publisher,
		repo:      repo,
		cfg:       cfg,
	}
}

// Push stores the notification and hands it to the broker for delivery.
func (s *Service) Push(ctx context.Context, n *domain.Notification) error {
	if n.ImageURL == "" {
		n.ImageURL = s.cfg.ImageURL
	}
	if err := s.repo.Save(ctx, n); err != nil {
		zap.L().Error("can't store notification", zap.String("title", n.Title), zap.Error(err))
		return err
	}

	event := pushEvent{
		NotificationID: n.ID,
		RecipientType:  string(n.Recipient.Kind),
		RecipientID:    n.Recipient.ID,
		Title:          n.Title,
		Body:           n.Body,
		ImageURL:       n.ImageURL,
		Data:           n.Data,
		DeviceToken:    n.DeviceToken,
		DeviceType:     n.DeviceType,
		Topic:          n.Topic,
	}
	if err := s.publisher.Publish(ctx, s.cfg.Exchange, RoutingKeyPush, event); err != nil {
		zap.L().Error("can't publish push notification", zap.Int64("notification_id", n.ID), zap.Error(err))
		return err
	}
	return nil
}

// SMS renders a template in the configured language and publishes it for the
// SMS gateway.
func (s *Service) SMS(ctx context.Context, dialCode, phone, template string, vars map[string]string) error {
	body, err := Render(s.cfg.Lang, template, vars)
	if err != nil {
		return err
	}

	event := smsEvent{
		To:       PhoneNumber(dialCode, phone),
		Template: template,
		Lang:     s.cfg.Lang,
		Body:     body,
	}
	if err := s.publisher.Publish(ctx, s.cfg.Exchange, RoutingKeySMS, event); err != nil {
		zap.L().Error("can't publish sms", zap.String("template", template), zap.Error(err))
		return err
	}
	return nil
}

// PhoneNumber joins a dial code and a local number the way the SMS gateway
// expects them, without the leading plus.
func PhoneNumber(dialCode, phone string) string {
	return strings.TrimPrefix(dialCode, "+") + phone
}
