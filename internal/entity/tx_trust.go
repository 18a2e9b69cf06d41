package entity

// TrustSet creates or modifies a trustline to an issuer.
type TrustSet struct {
	Transaction
}

// LimitAmount carries the trusted currency, the issuer, and the limit.
func (t *TrustSet) LimitAmount() *Amount {
	return t.getAmount("LimitAmount")
}

// QualityIn is the incoming quality in billionths, nil when unset.
func (t *TrustSet) QualityIn() *uint32 {
	return t.getUint32("QualityIn")
}

// QualityOut is the outgoing quality in billionths, nil when unset.
func (t *TrustSet) QualityOut() *uint32 {
	return t.getUint32("QualityOut")
}

// Clawback recovers issued currency from a holder.
type Clawback struct {
	Transaction
}

// Amount names the holder (as issuer field) and the amount clawed back.
func (c *Clawback) Amount() *Amount {
	return c.getAmount("Amount")
}
