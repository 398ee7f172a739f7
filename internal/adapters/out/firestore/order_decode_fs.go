// internal/adapters/out/firestore/order_decode_fs.go
package firestore

import (
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"

	orderdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/order"
)

// ========================
// Encode
// ========================

func lineItemsToDoc(items []orderdom.LineItem) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		m := map[string]any{
			"productId": it.ProductID,
			"price":     decimalString(it.Price),
			"quantity":  decimalString(it.Quantity),
		}
		if it.Name != "" {
			m["name"] = it.Name
		}
		if it.ImageURL != "" {
			m["imageUrl"] = it.ImageURL
		}
		out = append(out, m)
	}
	return out
}

func orderToDoc(o orderdom.Order) map[string]any {
	return map[string]any{
		"orderId":         o.OrderID,
		"userId":          o.UserID,
		"items":           lineItemsToDoc(o.Items),
		"totalPrice":      decimalString(o.TotalPrice),
		"status":          string(o.Status),
		"createdAt":       o.CreatedAt.UTC(),
		"customerName":    o.CustomerName,
		"shippingAddress": o.ShippingAddress,
		"paymentMethod":   o.PaymentMethod,
	}
}

// ========================
// Decode
// ========================

func decodeLineItems(v any) ([]orderdom.LineItem, error) {
	raw := asSliceAny(v)
	out := make([]orderdom.LineItem, 0, len(raw))
	for i, x := range raw {
		m := asMapAny(x)
		if m == nil {
			return nil, fmt.Errorf("items[%d]: not a map", i)
		}
		price, err := asDecimal(m["price"])
		if err != nil {
			return nil, fmt.Errorf("items[%d].price: %w", i, err)
		}
		qty, err := asDecimal(m["quantity"])
		if err != nil {
			return nil, fmt.Errorf("items[%d].quantity: %w", i, err)
		}
		out = append(out, orderdom.LineItem{
			ProductID: strings.TrimSpace(asString(m["productId"])),
			Name:      asString(m["name"]),
			ImageURL:  asString(m["imageUrl"]),
			Price:     price,
			Quantity:  qty,
		})
	}
	return out, nil
}

// docToOrder converts a snapshot to orderdom.Order.
func docToOrder(doc *firestore.DocumentSnapshot) (orderdom.Order, error) {
	data := doc.Data()
	if data == nil {
		return orderdom.Order{}, fmt.Errorf("empty order document: %s", doc.Ref.ID)
	}

	items, err := decodeLineItems(data["items"])
	if err != nil {
		return orderdom.Order{}, fmt.Errorf("order %s: %w", doc.Ref.ID, err)
	}
	total, err := asDecimal(data["totalPrice"])
	if err != nil {
		return orderdom.Order{}, fmt.Errorf("order %s: totalPrice: %w", doc.Ref.ID, err)
	}
	createdAt, _ := asTime(data["createdAt"])

	return orderdom.Order{
		OrderID:    doc.Ref.ID,
		UserID:     strings.TrimSpace(asString(data["userId"])),
		Items:      items,
		TotalPrice: total,
		Status:     orderdom.Status(asString(data["status"])),
		CreatedAt:  createdAt,

		CustomerName:    asString(data["customerName"]),
		ShippingAddress: asString(data["shippingAddress"]),
		PaymentMethod:   asString(data["paymentMethod"]),
	}, nil
}
