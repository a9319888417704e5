package orders

import (
	"time"
	"unicode/utf8"
)

// Badge tones recognized by the portal front end.
const (
	ToneNeutral = "neutral"
	TonePrimary = "primary"
	ToneAccent  = "accent"
	ToneMuted   = "muted"
)

const summaryMaxRunes = 140

// Badge is the display attribute pair for an order status.
type Badge struct {
	Label string `json:"label"`
	Tone  string `json:"tone"`
}

// StatusBadge maps an order status to its display badge.
func StatusBadge(status string) Badge {
	switch status {
	case StatusPending:
		return Badge{Label: StatusPending, Tone: ToneNeutral}
	case StatusInProgress:
		return Badge{Label: StatusInProgress, Tone: TonePrimary}
	case StatusCompleted:
		return Badge{Label: StatusCompleted, Tone: ToneAccent}
	default:
		return Badge{Label: status, Tone: ToneMuted}
	}
}

// CardView is the read-only card rendering of an order.
type CardView struct {
	OrderID        string   `json:"order_id"`
	ProjectName    string   `json:"project_name"`
	ProjectType    string   `json:"project_type"`
	Summary        string   `json:"summary"`
	Checklist      []string `json:"checklist,omitempty"`
	DeliveryMethod string   `json:"delivery_method"`
	Status         string   `json:"status"`
	Badge          Badge    `json:"badge"`
	CreatedDate    string   `json:"created_date"`
}

// NewCardView maps an order onto its card attributes.
func NewCardView(o Order) CardView {
	return CardView{
		OrderID:        o.OrderID,
		ProjectName:    o.ProjectName,
		ProjectType:    o.ProjectType,
		Summary:        summarize(o.ProjectDescription),
		Checklist:      o.Checklist,
		DeliveryMethod: o.DeliveryMethod,
		Status:         o.Status,
		Badge:          StatusBadge(o.Status),
		CreatedDate:    formatCreated(o.CreatedAt),
	}
}

func formatCreated(t time.Time) string {
	if t.IsZero() {
		return "Initializing..."
	}
	return t.Format("Jan 2, 2006")
}

func summarize(s string) string {
	if utf8.RuneCountInString(s) <= summaryMaxRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:summaryMaxRunes-1]) + "…"
}
