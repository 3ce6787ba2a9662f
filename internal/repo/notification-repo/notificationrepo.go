package notificationrepo

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/Amitjang/XAlISS-SERVER/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) Save(ctx context.Context, n *domain.Notification) error {
	data := n.Data
	if data == nil {
		data = map[string]string{}
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO notifications (type, ref_id, title, body, image_url, data, device_token, device_type, topic)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err = repo.db.QueryRow(ctx, query,
		string(n.Recipient.Kind), n.Recipient.ID, n.Title, n.Body, n.ImageURL, payload, n.DeviceToken, n.DeviceType, n.Topic,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		zap.L().Error("can't save notification", zap.String("recipient", string(n.Recipient.Kind)), zap.Int64("ref_id", n.Recipient.ID), zap.Error(err))
		return domain.NewPersistenceError("save notification", err)
	}
	return nil
}
