package model

import "encoding/json"

// Transition payloads are opaque JSON at the storage boundary. The builders
// below are the only places payload shapes are defined, one per transition kind.

type quotePayload struct {
	QuoteID int64 `json:"quote_id"`
}

type revisionPayload struct {
	QuoteID  int64 `json:"quote_id"`
	Revision bool  `json:"revision"`
}

type orderPayload struct {
	OrderID int64 `json:"order_id"`
	QuoteID int64 `json:"quote_id"`
}

type factoryPayload struct {
	OrderID   int64 `json:"order_id"`
	FactoryID int64 `json:"factory_id"`
}

type cancelPayload struct {
	Reason string `json:"reason"`
}

type deliveryPayload struct {
	OrderID int64 `json:"order_id"`
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		// all payload structs marshal without error
		panic(err)
	}
	return b
}

// QuotePayload references the quote that caused a brand process transition.
func QuotePayload(quoteID int64) json.RawMessage {
	return mustJSON(quotePayload{QuoteID: quoteID})
}

// RevisionPayload marks a quote revision audit record.
func RevisionPayload(quoteID int64) json.RawMessage {
	return mustJSON(revisionPayload{QuoteID: quoteID, Revision: true})
}

// OrderPayload references the order materialized from an accepted quote.
func OrderPayload(orderID, quoteID int64) json.RawMessage {
	return mustJSON(orderPayload{OrderID: orderID, QuoteID: quoteID})
}

// FactoryPayload references the factory assignment that advanced the process.
func FactoryPayload(orderID, factoryID int64) json.RawMessage {
	return mustJSON(factoryPayload{OrderID: orderID, FactoryID: factoryID})
}

// CancelPayload carries the free-form reason supplied by the cancelling actor.
func CancelPayload(reason string) json.RawMessage {
	return mustJSON(cancelPayload{Reason: reason})
}

// DeliveryPayload references the order whose delivery completed the process.
func DeliveryPayload(orderID int64) json.RawMessage {
	return mustJSON(deliveryPayload{OrderID: orderID})
}
