// Package lifecycle drives a transaction through the sign, submit, and
// verify steps against external collaborators. The state machine is
// strictly sequential per flow; callers must serialize calls into one
// flow instance. Abort is the only operation safe to call from another
// goroutine.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"xrplview/internal/entity"
)

// Configuration errors: the caller must fix the transaction and retry.
var (
	ErrFeeNotSet                   = errors.New("fee not set")
	ErrUnableToSetSequence         = errors.New("unable to set account sequence")
	ErrUnableToGetLastClosedLedger = errors.New("unable to get last closed ledger")
)

// Lifecycle-violation errors: the state machine was driven out of order.
var (
	ErrAlreadySigned    = errors.New("transaction already signed")
	ErrAlreadySubmitted = errors.New("transaction already submitted")
	ErrNotSigned        = errors.New("transaction not signed")
	ErrAborted          = errors.New("transaction flow aborted")
)

// Sign-step errors.
var (
	ErrUnsupportedTransactionType = errors.New("transaction type not supported on connected network")
	ErrIncompleteSignResult       = errors.New("incomplete sign result")
	ErrMissingTransactionID       = errors.New("sign result missing transaction id")
	ErrMissingTransactionHash     = errors.New("transaction has no hash to verify")
)

const (
	// DefaultLastLedgerOffset is added to the current ledger when no
	// LastLedgerSequence is set. Larger than the ledger-close cadence so
	// a slow external signing device does not expire the transaction.
	DefaultLastLedgerOffset uint32 = 20

	// relativeLedgerThreshold separates relative offsets from absolute
	// ledger sequences: no plausible ledger sequence is below it, so a
	// smaller LastLedgerSequence must mean "current ledger plus this".
	relativeLedgerThreshold uint32 = 32570

	// legacyNetworkCutoff is the highest network id whose wire format
	// omits the NetworkID field.
	legacyNetworkCutoff uint32 = 1024

	// DefaultVerifyTimeout bounds the verification polling round-trip.
	DefaultVerifyTimeout = 25 * time.Second

	// localFailureCode is the synthetic engine result recorded when the
	// submission collaborator itself fails.
	localFailureCode = "telFAILED"
)

// State is the flow's position in the lifecycle.
type State int

const (
	StateUnsigned State = iota
	StateSigned
	StateSubmitted
	StateVerifiedSuccess
	StateVerifiedFailed
)

func (s State) String() string {
	switch s {
	case StateUnsigned:
		return "unsigned"
	case StateSigned:
		return "signed"
	case StateSubmitted:
		return "submitted"
	case StateVerifiedSuccess:
		return "verified-success"
	case StateVerifiedFailed:
		return "verified-failed"
	default:
		return "unknown"
	}
}

// LedgerStatus is the connected network's current ledger position and
// fee schedule.
type LedgerStatus struct {
	LastLedgerSequence uint32
	BaseFeeDrops       int64
}

// Reserves is the connected network's reserve schedule in drops.
type Reserves struct {
	BaseReserveDrops  int64
	OwnerReserveDrops int64
}

// NetworkProvider answers network-context queries at call time. The flow
// never caches its answers.
type NetworkProvider interface {
	NativeAsset() string
	NetworkID() uint32
	LedgerStatus(ctx context.Context) (LedgerStatus, error)
	Reserves(ctx context.Context) (Reserves, error)
	SupportedTransactionTypes(ctx context.Context) ([]string, error)
}

// SignRequest is handed to the external signer collaborator.
type SignRequest struct {
	Account   string
	MultiSign bool
	Tx        map[string]any
}

// SignResult is the signer collaborator's callback payload.
type SignResult struct {
	ID           string
	SignedBlob   string
	SignerPubKey string
	SignMethod   string
	Signers      []entity.Signer
}

// Signer performs the cryptographic operation out of process. PublicKey
// resolves an account's signing key when a transaction type needs it
// populated before signing.
type Signer interface {
	Sign(ctx context.Context, req SignRequest) (SignResult, error)
	PublicKey(ctx context.Context, account string) (string, error)
}

// SubmitResult is the submission collaborator's outcome. Submission
// failure is a value, not an error.
type SubmitResult struct {
	Success       bool   `json:"success"`
	EngineResult  string `json:"engineResult,omitempty"`
	Message       string `json:"message,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
}

// VerifyResult is the verification collaborator's outcome.
type VerifyResult struct {
	Success     bool           `json:"success"`
	Transaction map[string]any `json:"transaction,omitempty"`
}

// Gateway is the external ledger RPC surface the flow submits through.
type Gateway interface {
	AccountSequence(ctx context.Context, address string) (uint32, error)
	Submit(ctx context.Context, blob, hash string, failHard bool) (SubmitResult, error)
	Verify(ctx context.Context, hash string) (VerifyResult, error)
}

// TransactionResult unifies the metadata-reported result with the submit
// and verify outcomes. A metadata-reported result always wins.
type TransactionResult struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// Flow is one transaction's trip through the lifecycle.
type Flow struct {
	tx      entity.TxEntity
	net     NetworkProvider
	signer  Signer
	gateway Gateway

	localID       string
	state         atomic.Int32
	aborted       atomic.Bool
	verifyTimeout time.Duration

	submitResult *SubmitResult
	verifyResult *VerifyResult
}

// Option configures a Flow.
type Option func(*Flow)

// WithVerifyTimeout overrides the verification polling timeout.
func WithVerifyTimeout(d time.Duration) Option {
	return func(f *Flow) { f.verifyTimeout = d }
}

// NewFlow builds a flow for one transaction. A transaction already
// carrying a signed blob starts in the signed state.
func NewFlow(tx entity.TxEntity, net NetworkProvider, signer Signer, gateway Gateway, opts ...Option) *Flow {
	f := &Flow{
		tx:            tx,
		net:           net,
		signer:        signer,
		gateway:       gateway,
		localID:       uuid.NewString(),
		verifyTimeout: DefaultVerifyTimeout,
	}
	if tx.IsSigned() {
		f.setState(StateSigned)
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// LocalID is the flow's local correlation id, independent of the
// transaction hash.
func (f *Flow) LocalID() string { return f.localID }

// State returns the flow's current lifecycle state.
func (f *Flow) State() State { return State(f.state.Load()) }

func (f *Flow) setState(s State) { f.state.Store(int32(s)) }

// Aborted reports whether the flow has been cooperatively cancelled.
func (f *Flow) Aborted() bool { return f.aborted.Load() }

// Abort flags the flow as cancelled. It does not interrupt an in-flight
// collaborator call; the flag is checked before each subsequent step.
// A no-op once the transaction has been submitted.
func (f *Flow) Abort() {
	if f.State() >= StateSubmitted {
		return
	}
	f.aborted.Store(true)
}

// Prepare fills the fields the signer needs: the fee must already be
// set, the sequence is fetched when absent, and the signing public key
// is resolved for the one type that carries value proofs needing it.
// A no-op for pseudo-transactions.
func (f *Flow) Prepare(ctx context.Context, signerAccount string) error {
	if f.tx.IsPseudo() {
		return nil
	}
	if f.tx.Fee() == "" {
		return ErrFeeNotSet
	}
	if f.tx.Sequence() == nil && f.tx.TicketSequence() == nil {
		seq, err := f.gateway.AccountSequence(ctx, f.tx.Account())
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnableToSetSequence, err)
		}
		if err := f.tx.SetSequence(seq); err != nil {
			return err
		}
	}
	if f.tx.TransactionType() == "Import" && f.tx.SigningPubKey() == "" {
		pubKey, err := f.signer.PublicKey(ctx, signerAccount)
		if err != nil {
			return err
		}
		if err := f.tx.SetSigningPubKey(pubKey); err != nil {
			return err
		}
	}
	return nil
}

// PopulateFields resolves the effective LastLedgerSequence and the
// NetworkID field against the connected network. A no-op for
// pseudo-transactions.
func (f *Flow) PopulateFields(ctx context.Context, lastLedgerOffset uint32) error {
	if f.tx.IsPseudo() {
		return nil
	}
	if lastLedgerOffset == 0 {
		lastLedgerOffset = DefaultLastLedgerOffset
	}

	status, err := f.net.LedgerStatus(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnableToGetLastClosedLedger, err)
	}
	expected := status.LastLedgerSequence + lastLedgerOffset

	switch current := f.tx.LastLedgerSequence(); {
	case current == nil:
		if err := f.tx.SetLastLedgerSequence(expected); err != nil {
			return err
		}
	case *current < relativeLedgerThreshold:
		// small values are relative offsets, not ledger sequences
		if err := f.tx.SetLastLedgerSequence(status.LastLedgerSequence + *current); err != nil {
			return err
		}
	case *current < expected:
		if err := f.tx.SetLastLedgerSequence(expected); err != nil {
			return err
		}
	}

	// legacy networks omit the field entirely for wire compatibility
	if id := f.net.NetworkID(); id > legacyNetworkCutoff && f.tx.NetworkID() == nil {
		if err := f.tx.SetNetworkID(id); err != nil {
			return err
		}
	}
	return nil
}

// Sign runs the signing round-trip: capability check, prepare, the
// external signer call, and attaching the result.
func (f *Flow) Sign(ctx context.Context, account string, multiSign bool) error {
	if f.aborted.Load() {
		return ErrAborted
	}
	if f.tx.IsSigned() {
		return ErrAlreadySigned
	}

	if !f.tx.IsPseudo() {
		supported, err := f.net.SupportedTransactionTypes(ctx)
		if err != nil {
			return err
		}
		if !typeSupported(supported, f.tx.TransactionType()) {
			return fmt.Errorf("%w: %s", ErrUnsupportedTransactionType, f.tx.TransactionType())
		}
	}

	if !multiSign {
		if err := f.Prepare(ctx, account); err != nil {
			return err
		}
	}

	result, err := f.signer.Sign(ctx, SignRequest{
		Account:   account,
		MultiSign: multiSign,
		Tx:        f.tx.Raw(),
	})
	if err != nil {
		return err
	}
	if result.SignedBlob == "" || result.SignerPubKey == "" || result.SignMethod == "" {
		return ErrIncompleteSignResult
	}
	if result.ID == "" && !f.tx.IsPseudo() {
		return ErrMissingTransactionID
	}

	if err := f.tx.AttachSignature(result.SignedBlob, result.SignerPubKey, result.ID); err != nil {
		return err
	}
	f.setState(StateSigned)
	return nil
}

// Submit hands the signed blob to the gateway. It never fails on the
// submission itself: a collaborator error is folded into a synthetic
// local-failure result. Errors are reserved for lifecycle violations.
func (f *Flow) Submit(ctx context.Context) (SubmitResult, error) {
	if f.aborted.Load() {
		return SubmitResult{}, ErrAborted
	}
	if !f.tx.IsSigned() {
		return SubmitResult{}, ErrNotSigned
	}
	if f.State() >= StateSubmitted {
		return SubmitResult{}, ErrAlreadySubmitted
	}

	// a failed AccountDelete must not be relayed, or the reserve-sized
	// fee burns with nothing to show for it
	failHard := f.tx.TransactionType() == "AccountDelete"

	result, err := f.gateway.Submit(ctx, f.tx.SignedBlob(), f.tx.Hash(), failHard)
	if err != nil {
		result = SubmitResult{
			Success:       false,
			EngineResult:  localFailureCode,
			Message:       err.Error(),
			TransactionID: f.tx.Hash(),
		}
	}
	f.setState(StateSubmitted)
	f.submitResult = &result
	return result, nil
}

// Verify polls the gateway until the transaction validates or the
// timeout elapses. A timeout resolves as an unverified result, never an
// error.
func (f *Flow) Verify(ctx context.Context) (VerifyResult, error) {
	if f.tx.Hash() == "" {
		return VerifyResult{}, ErrMissingTransactionHash
	}

	ctx, cancel := context.WithTimeout(ctx, f.verifyTimeout)
	defer cancel()

	result, err := f.gateway.Verify(ctx, f.tx.Hash())
	if err != nil {
		result = VerifyResult{Success: false}
	}

	if result.Success {
		f.setState(StateVerifiedSuccess)
	} else {
		f.setState(StateVerifiedFailed)
	}
	f.verifyResult = &result
	return result, nil
}

// Result merges everything known about the transaction's outcome. A
// result code reported by execution metadata always takes precedence
// over the local submit and verify outcomes.
func (f *Flow) Result() TransactionResult {
	if code := f.tx.Meta().TransactionResult; code != "" {
		return TransactionResult{
			Success: strings.HasPrefix(code, "tes"),
			Code:    code,
		}
	}
	if f.submitResult != nil {
		r := TransactionResult{
			Success: f.submitResult.Success,
			Code:    f.submitResult.EngineResult,
			Message: f.submitResult.Message,
		}
		if f.verifyResult != nil {
			r.Success = f.verifyResult.Success
		}
		return r
	}
	if f.verifyResult != nil {
		return TransactionResult{Success: f.verifyResult.Success}
	}
	return TransactionResult{}
}

func typeSupported(supported []string, typeName string) bool {
	for _, s := range supported {
		if s == typeName {
			return true
		}
	}
	return false
}
