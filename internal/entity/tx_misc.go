package entity

// TicketCreate sets aside one or more sequence numbers as tickets.
type TicketCreate struct {
	Transaction
}

// TicketCount is the number of tickets requested.
func (t *TicketCreate) TicketCount() *uint32 {
	return t.getUint32("TicketCount")
}

// CreatedTicketSequences lists the ticket sequences the metadata shows
// were actually created.
func (t *TicketCreate) CreatedTicketSequences() []uint32 {
	return t.meta.TicketSequences()
}

// SignerListSet replaces the account's multi-signing list.
type SignerListSet struct {
	Transaction
}

// SignerQuorum is the required signature weight, zero deletes the list.
func (s *SignerListSet) SignerQuorum() *uint32 {
	return s.getUint32("SignerQuorum")
}

// SignerEntry is one member of a signer list.
type SignerEntry struct {
	Account      string
	SignerWeight uint32
}

// SignerEntries returns the new signer list.
func (s *SignerListSet) SignerEntries() []SignerEntry {
	list, ok := s.raw["SignerEntries"].([]any)
	if !ok {
		return nil
	}
	var out []SignerEntry
	for _, entry := range list {
		wrapper, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		inner, ok := wrapper["SignerEntry"].(map[string]any)
		if !ok {
			continue
		}
		se := SignerEntry{Account: stringField(inner, "Account")}
		if w, ok := uint32FieldOf(inner, "SignerWeight"); ok {
			se.SignerWeight = w
		}
		out = append(out, se)
	}
	return out
}

// DepositPreauth grants or revokes deposit authorization.
type DepositPreauth struct {
	Transaction
}

// Authorize is the address being preauthorized, empty when revoking.
func (d *DepositPreauth) Authorize() string {
	return d.getString("Authorize")
}

// Unauthorize is the address whose preauthorization is revoked.
func (d *DepositPreauth) Unauthorize() string {
	return d.getString("Unauthorize")
}

// Import replays a proof of a transaction from another network. The only
// transaction type that needs its signing public key populated before
// signing.
type Import struct {
	Transaction
}

// Blob is the hex-encoded proof payload.
func (i *Import) Blob() string {
	return i.getString("Blob")
}

// Issuer is the optional issuer hint for the imported state.
func (i *Import) Issuer() string {
	return i.getString("Issuer")
}
