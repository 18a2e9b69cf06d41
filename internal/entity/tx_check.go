package entity

import "time"

// CheckCreate writes a deferred payment the destination can cash later.
type CheckCreate struct {
	Transaction
}

// Destination is the account that may cash the check.
func (c *CheckCreate) Destination() *Destination {
	return c.destination()
}

// SendMax caps what cashing the check can pull from the sender.
func (c *CheckCreate) SendMax() *Amount {
	return c.getAmount("SendMax")
}

// Expiration returns the check's expiration as ISO-8601, empty when the
// check does not expire.
func (c *CheckCreate) Expiration() string {
	return c.getDateISO("Expiration")
}

// InvoiceID links the check to an invoice, empty when unset.
func (c *CheckCreate) InvoiceID() string {
	return c.getString("InvoiceID")
}

// IsExpired reports whether the check's expiration has passed.
func (c *CheckCreate) IsExpired(now time.Time) bool {
	return c.isExpiredAt(c.getDateEpoch("Expiration"), now)
}

// CheckCash redeems a check for a fixed or minimum amount.
type CheckCash struct {
	Transaction
}

// CheckID identifies the check ledger entry being cashed.
func (c *CheckCash) CheckID() string {
	return c.getString("CheckID")
}

// Amount is the exact amount to cash; mutually exclusive with DeliverMin.
func (c *CheckCash) Amount() *Amount {
	return c.getAmount("Amount")
}

// DeliverMin is the flexible-amount floor; mutually exclusive with Amount.
func (c *CheckCash) DeliverMin() *Amount {
	return c.getAmount("DeliverMin")
}

// DeliveredAmount is the amount actually cashed, from the metadata.
func (c *CheckCash) DeliveredAmount() *Amount {
	return c.deliveredAmount(c.Amount())
}

// CheckCancel voids a check before it is cashed.
type CheckCancel struct {
	Transaction
}

// CheckID identifies the check ledger entry being cancelled.
func (c *CheckCancel) CheckID() string {
	return c.getString("CheckID")
}
