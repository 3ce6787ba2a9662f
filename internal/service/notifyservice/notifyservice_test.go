package notifyservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/Amitjang/XAlISS-SERVER/pkg/rabbitmq"
)

func NewMock(t *testing.T, lang string) (*Service, *MockRepo, *rabbitmq.MockPublisher) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	publisher := rabbitmq.NewMockPublisher(ctrl)
	service := New(publisher, repo, Config{Exchange: "notification_events", Lang: lang, ImageURL: "https://cdn/logo.png"})
	return service, repo, publisher
}

func TestFillTemplate(t *testing.T) {
	tests := []struct {
		name string
		text string
		vars map[string]string
		want string
	}{
		{"all present", "Hello {name}, you owe {amount}", map[string]string{"name": "Diop", "amount": "500"}, "Hello Diop, you owe 500"},
		{"missing key", "Hello {name}", nil, "Hello [[[name ⚠️]]]"},
		{"no placeholders", "plain", map[string]string{"x": "y"}, "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FillTemplate(tt.text, tt.vars))
		})
	}
}

func TestRender(t *testing.T) {
	got, err := Render("en", TemplateSavingCollection, map[string]string{
		"customer_last_name":                     "Diop",
		"amount_collected":                       "500",
		"account_balance":                        "1500",
		"number_of_collect_remaining":            "27",
		"total_ammount_saved_by_end_of_contract": "15000",
		"date_of_next_collect":                   "2024-05-03",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello Mr. Diop. Savings of 500 Collected successfully, Balance: 1500. Term: 27. Amount at Term: 15000. Appointment: 2024-05-03.", got)

	got, err = Render("wo", TemplateSavingCollection, nil)
	require.NoError(t, err)
	assert.Contains(t, got, "Bonjour Monsieur [[[customer_last_name ⚠️]]]")

	_, err = Render("en", "otp_sms", nil)
	assert.Error(t, err)
}

func TestService_Push(t *testing.T) {
	ctx := context.Background()

	t.Run("stored then published", func(t *testing.T) {
		service, repo, publisher := NewMock(t, "en")
		n := &domain.Notification{Recipient: domain.AgentParty(2), Title: "Monthly bonus received", Body: "30 monthly bonus received for this month."}

		gomock.InOrder(
			repo.EXPECT().Save(ctx, n).DoAndReturn(func(_ context.Context, n *domain.Notification) error {
				n.ID = 11
				return nil
			}),
			publisher.EXPECT().Publish(ctx, "notification_events", RoutingKeyPush, gomock.Any()).
				DoAndReturn(func(_ context.Context, _, _ string, body any) error {
					ev := body.(pushEvent)
					assert.Equal(t, int64(11), ev.NotificationID)
					assert.Equal(t, "agent", ev.RecipientType)
					assert.Equal(t, "https://cdn/logo.png", ev.ImageURL)
					return nil
				}),
		)

		assert.NoError(t, service.Push(ctx, n))
	})

	t.Run("not published when storing fails", func(t *testing.T) {
		service, repo, _ := NewMock(t, "en")
		repo.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("db down"))

		assert.Error(t, service.Push(ctx, &domain.Notification{}))
	})
}

func TestService_SMS(t *testing.T) {
	ctx := context.Background()
	service, _, publisher := NewMock(t, "fr")

	publisher.EXPECT().Publish(ctx, "notification_events", RoutingKeySMS, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, body any) error {
			ev := body.(smsEvent)
			assert.Equal(t, "221771234567", ev.To)
			assert.Equal(t, "fr", ev.Lang)
			assert.Contains(t, ev.Body, "Félicitations Monsieur Diop")
			return nil
		})

	err := service.SMS(ctx, "+221", "771234567", TemplateContractSubscription, map[string]string{"customer_last_name": "Diop"})
	assert.NoError(t, err)

	assert.Error(t, service.SMS(ctx, "+221", "771234567", "unknown", nil))
}
