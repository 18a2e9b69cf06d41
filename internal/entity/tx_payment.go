package entity

// Payment moves value from one account to another, possibly across
// currencies and paths.
type Payment struct {
	Transaction
}

// Amount is the requested delivery amount.
func (p *Payment) Amount() *Amount {
	return p.getAmount("Amount")
}

// DeliveredAmount is the amount actually received. Partial payments can
// deliver less than requested, so the metadata's delivered amount is the
// source of truth; the requested Amount is used only when the metadata
// recorded no delivered amount at all. The historic "unavailable" sentinel
// yields absent.
func (p *Payment) DeliveredAmount() *Amount {
	return p.deliveredAmount(p.Amount())
}

// Destination is the receiving account and optional tag.
func (p *Payment) Destination() *Destination {
	return p.destination()
}

// InvoiceID links the payment to an invoice, empty when unset.
func (p *Payment) InvoiceID() string {
	return p.getString("InvoiceID")
}

// SendMax caps what the sender spends on a cross-currency payment.
func (p *Payment) SendMax() *Amount {
	return p.getAmount("SendMax")
}

// DeliverMin is the partial-payment floor.
func (p *Payment) DeliverMin() *Amount {
	return p.getAmount("DeliverMin")
}

// deliveredAmount implements the shared delivered-amount rule for every
// transaction type that can deliver value.
func (t *Transaction) deliveredAmount(requested *Amount) *Amount {
	if v, ok := t.meta.DeliveredAmount(); ok {
		return t.decodeAmount(v)
	}
	if t.meta.DeliveredAmountRecorded() {
		// recorded as unavailable: absent, not the requested amount
		return nil
	}
	return requested
}

// destination reads the shared Destination/DestinationTag field pair.
func (t *Transaction) destination() *Destination {
	address := t.getString("Destination")
	if address == "" {
		return nil
	}
	return &Destination{
		Address: address,
		Tag:     t.getUint32("DestinationTag"),
	}
}
