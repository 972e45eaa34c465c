package domain

// StoreKey is the fixed key the serialized cart lives under.
const StoreKey = "FYF_cart"

type Cart struct {
	OwnerID string
	Items   []CartItem
}

type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    Price  `json:"price"`
	Quantity int    `json:"quantity"`
}

// IndexOf returns the position of the item with the given id, or -1.
func (c Cart) IndexOf(id string) int {
	for i, item := range c.Items {
		if item.ID == id {
			return i
		}
	}

	return -1
}

// ItemCount is the sum of quantities across all items.
func (c Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// GrandTotal is the rounded sum of price*quantity over the cart items.
func (c Cart) GrandTotal() Price {
	return GrandTotal(c.Items)
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clone returns a copy that shares no item storage with c.
func (c Cart) Clone() Cart {
	out := Cart{OwnerID: c.OwnerID}
	if c.Items != nil {
		out.Items = make([]CartItem, len(c.Items))
		copy(out.Items, c.Items)
	}

	return out
}
