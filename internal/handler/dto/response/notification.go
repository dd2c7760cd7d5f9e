package response

import (
	"time"

	"sportshub/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Link      *string    `json:"link,omitempty"`
	Read      bool       `json:"read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromNotificationList(items []*queries.NotificationView) ([]NotificationResponse, error) {
	out := make([]NotificationResponse, 0, len(items))
	for _, it := range items {
		n, err := copyView[NotificationResponse](it)
		if err != nil {
			return nil, err
		}
		n.Read = it.ReadAt != nil
		out = append(out, *n)
	}
	return out, nil
}
