package domain

import "fmt"

type EventKind string

const (
	EventItemAdded       EventKind = "added"
	EventQuantityUpdated EventKind = "updated"
	EventItemRemoved     EventKind = "removed"
	EventCartCleared     EventKind = "cleared"
)

// Event describes one effective change to a cart. Cart is the state after
// the change; observers own it and may modify it freely.
type Event struct {
	Kind     EventKind
	OwnerID  string
	ItemID   string
	Name     string
	Quantity int
	Cart     Cart
}

// Message is the user-facing notification for the event.
func (e Event) Message() string {
	switch e.Kind {
	case EventItemAdded:
		return fmt.Sprintf("%s added to cart!", e.Name)
	case EventQuantityUpdated:
		return fmt.Sprintf("%s quantity set to %d", e.label(), e.Quantity)
	case EventItemRemoved:
		return fmt.Sprintf("%s removed from cart", e.label())
	case EventCartCleared:
		return "Cart cleared"
	default:
		return ""
	}
}

func (e Event) label() string {
	if e.Name != "" {
		return e.Name
	}
	return e.ItemID
}
