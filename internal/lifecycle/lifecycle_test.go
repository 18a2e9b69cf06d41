package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"xrplview/internal/entity"
)

type testRig struct {
	net     *MockNetworkProvider
	signer  *MockSigner
	gateway *MockGateway
}

func newRig(t *testing.T) *testRig {
	ctrl := gomock.NewController(t)
	return &testRig{
		net:     NewMockNetworkProvider(ctrl),
		signer:  NewMockSigner(ctrl),
		gateway: NewMockGateway(ctrl),
	}
}

func (r *testRig) flow(t *testing.T, doc string, opts ...Option) *Flow {
	t.Helper()
	tx, err := entity.ParseJSON([]byte(doc), entity.NetworkContext{})
	require.NoError(t, err)
	return NewFlow(tx, r.net, r.signer, r.gateway, opts...)
}

func goodSignResult() SignResult {
	return SignResult{
		ID:           "F00D",
		SignedBlob:   "DEADBEEF",
		SignerPubKey: "ED0000",
		SignMethod:   "tangem",
	}
}

func TestPrepareRequiresFee(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender"}`)

	require.ErrorIs(t, f.Prepare(context.Background(), "rSender"), ErrFeeNotSet)
}

func TestPrepareFetchesMissingSequence(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender", "Fee": "12"}`)

	rig.gateway.EXPECT().AccountSequence(gomock.Any(), "rSender").Return(uint32(845), nil)

	require.NoError(t, f.Prepare(context.Background(), "rSender"))
	require.Equal(t, uint32(845), *f.tx.Sequence())
}

func TestPrepareSequenceFetchFailure(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender", "Fee": "12"}`)

	rig.gateway.EXPECT().AccountSequence(gomock.Any(), "rSender").Return(uint32(0), errors.New("rpc down"))

	require.ErrorIs(t, f.Prepare(context.Background(), "rSender"), ErrUnableToSetSequence)
}

func TestPrepareSkipsSequenceWhenTicketed(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender", "Fee": "12", "TicketSequence": 846}`)

	// no AccountSequence expectation: a ticketed transaction needs none
	require.NoError(t, f.Prepare(context.Background(), "rSender"))
}

func TestPrepareIsNoopForPseudo(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "EnableAmendment"}`)

	require.NoError(t, f.Prepare(context.Background(), ""))
}

func TestPreparePopulatesImportSigningKey(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "Import", "Account": "rSender", "Fee": "12", "Sequence": 1}`)

	rig.signer.EXPECT().PublicKey(gomock.Any(), "rSender").Return("ED1234", nil)

	require.NoError(t, f.Prepare(context.Background(), "rSender"))
	require.Equal(t, "ED1234", f.tx.SigningPubKey())
}

func TestPopulateFieldsLastLedgerSequence(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		current uint32
		want    uint32
	}{
		{
			name:    "unset gets current plus offset",
			doc:     `{"TransactionType": "Payment", "Account": "rSender"}`,
			current: 75000000,
			want:    75000020,
		},
		{
			name:    "small value is a relative offset",
			doc:     `{"TransactionType": "Payment", "Account": "rSender", "LastLedgerSequence": 100}`,
			current: 75000000,
			want:    75000100,
		},
		{
			name:    "stale absolute value is bumped",
			doc:     `{"TransactionType": "Payment", "Account": "rSender", "LastLedgerSequence": 74000000}`,
			current: 75000000,
			want:    75000020,
		},
		{
			name:    "future value left untouched",
			doc:     `{"TransactionType": "Payment", "Account": "rSender", "LastLedgerSequence": 76000000}`,
			current: 75000000,
			want:    76000000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rig := newRig(t)
			f := rig.flow(t, tt.doc)

			rig.net.EXPECT().LedgerStatus(gomock.Any()).Return(LedgerStatus{LastLedgerSequence: tt.current}, nil)
			rig.net.EXPECT().NetworkID().Return(uint32(0))

			require.NoError(t, f.PopulateFields(context.Background(), 0))
			require.Equal(t, tt.want, *f.tx.LastLedgerSequence())
		})
	}
}

func TestPopulateFieldsLedgerStatusFailure(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender"}`)

	rig.net.EXPECT().LedgerStatus(gomock.Any()).Return(LedgerStatus{}, errors.New("rpc down"))

	require.ErrorIs(t, f.PopulateFields(context.Background(), 0), ErrUnableToGetLastClosedLedger)
}

func TestPopulateFieldsNetworkID(t *testing.T) {
	t.Run("set on non-legacy network", func(t *testing.T) {
		rig := newRig(t)
		f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender"}`)

		rig.net.EXPECT().LedgerStatus(gomock.Any()).Return(LedgerStatus{LastLedgerSequence: 1000000}, nil)
		rig.net.EXPECT().NetworkID().Return(uint32(21337))

		require.NoError(t, f.PopulateFields(context.Background(), 0))
		require.Equal(t, uint32(21337), *f.tx.NetworkID())
	})

	t.Run("omitted on legacy network", func(t *testing.T) {
		rig := newRig(t)
		f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender"}`)

		rig.net.EXPECT().LedgerStatus(gomock.Any()).Return(LedgerStatus{LastLedgerSequence: 1000000}, nil)
		rig.net.EXPECT().NetworkID().Return(uint32(1024))

		require.NoError(t, f.PopulateFields(context.Background(), 0))
		require.Nil(t, f.tx.NetworkID())
	})

	t.Run("existing value kept", func(t *testing.T) {
		rig := newRig(t)
		f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender", "NetworkID": 5000}`)

		rig.net.EXPECT().LedgerStatus(gomock.Any()).Return(LedgerStatus{LastLedgerSequence: 1000000}, nil)
		rig.net.EXPECT().NetworkID().Return(uint32(21337))

		require.NoError(t, f.PopulateFields(context.Background(), 0))
		require.Equal(t, uint32(5000), *f.tx.NetworkID())
	})
}

func TestSignHappyPath(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender", "Fee": "12", "Sequence": 845}`)

	rig.net.EXPECT().SupportedTransactionTypes(gomock.Any()).Return([]string{"Payment", "OfferCreate"}, nil)
	rig.signer.EXPECT().Sign(gomock.Any(), gomock.Any()).Return(goodSignResult(), nil)

	require.NoError(t, f.Sign(context.Background(), "rSender", false))
	require.Equal(t, StateSigned, f.State())
	require.Equal(t, "DEADBEEF", f.tx.SignedBlob())
	require.Equal(t, "F00D", f.tx.Hash())
}

func TestSignRejectsAlreadySigned(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender", "SignedBlob": "AB"}`)

	require.Equal(t, StateSigned, f.State())
	require.ErrorIs(t, f.Sign(context.Background(), "rSender", false), ErrAlreadySigned)
}

func TestSignRejectsUnsupportedType(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "Clawback", "Account": "rIssuer", "Fee": "12", "Sequence": 1}`)

	rig.net.EXPECT().SupportedTransactionTypes(gomock.Any()).Return([]string{"Payment"}, nil)

	require.ErrorIs(t, f.Sign(context.Background(), "rIssuer", false), ErrUnsupportedTransactionType)
}

func TestSignPseudoSkipsSupportCheckAndAllowsMissingID(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "EnableAmendment"}`)

	result := goodSignResult()
	result.ID = ""
	rig.signer.EXPECT().Sign(gomock.Any(), gomock.Any()).Return(result, nil)

	require.NoError(t, f.Sign(context.Background(), "", false))
	require.Equal(t, StateSigned, f.State())
	require.Empty(t, f.tx.Hash())
}

func TestSignRejectsIncompleteResult(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SignResult)
	}{
		{"missing blob", func(r *SignResult) { r.SignedBlob = "" }},
		{"missing pubkey", func(r *SignResult) { r.SignerPubKey = "" }},
		{"missing method", func(r *SignResult) { r.SignMethod = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rig := newRig(t)
			f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender", "Fee": "12", "Sequence": 845}`)

			result := goodSignResult()
			tt.mutate(&result)
			rig.net.EXPECT().SupportedTransactionTypes(gomock.Any()).Return([]string{"Payment"}, nil)
			rig.signer.EXPECT().Sign(gomock.Any(), gomock.Any()).Return(result, nil)

			require.ErrorIs(t, f.Sign(context.Background(), "rSender", false), ErrIncompleteSignResult)
			require.Equal(t, StateUnsigned, f.State())
		})
	}
}

func TestSignRejectsMissingTransactionID(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender", "Fee": "12", "Sequence": 845}`)

	result := goodSignResult()
	result.ID = ""
	rig.net.EXPECT().SupportedTransactionTypes(gomock.Any()).Return([]string{"Payment"}, nil)
	rig.signer.EXPECT().Sign(gomock.Any(), gomock.Any()).Return(result, nil)

	require.ErrorIs(t, f.Sign(context.Background(), "rSender", false), ErrMissingTransactionID)
}

func TestSignMultiSignSkipsPrepare(t *testing.T) {
	rig := newRig(t)
	// no Fee or Sequence: prepare would reject, multi-sign must not run it
	f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender"}`)

	rig.net.EXPECT().SupportedTransactionTypes(gomock.Any()).Return([]string{"Payment"}, nil)
	rig.signer.EXPECT().Sign(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req SignRequest) (SignResult, error) {
			require.True(t, req.MultiSign)
			return goodSignResult(), nil
		})

	require.NoError(t, f.Sign(context.Background(), "rCosigner", true))
}

func TestSubmitHappyPath(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender", "SignedBlob": "DEADBEEF", "hash": "F00D"}`)

	rig.gateway.EXPECT().Submit(gomock.Any(), "DEADBEEF", "F00D", false).
		Return(SubmitResult{Success: true, EngineResult: "tesSUCCESS", TransactionID: "F00D"}, nil)

	result, err := f.Submit(context.Background())
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Equal(t, "tesSUCCESS", result.EngineResult)
	require.Equal(t, StateSubmitted, f.State())
}

func TestSubmitRejectsUnsigned(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender"}`)

	_, err := f.Submit(context.Background())
	require.ErrorIs(t, err, ErrNotSigned)
}

func TestSubmitRejectsDoubleSubmit(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender", "SignedBlob": "AB", "hash": "F00D"}`)

	rig.gateway.EXPECT().Submit(gomock.Any(), "AB", "F00D", false).Return(SubmitResult{Success: true}, nil)

	_, err := f.Submit(context.Background())
	require.NoError(t, err)

	_, err = f.Submit(context.Background())
	require.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestSubmitForcesFailHardForAccountDelete(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "AccountDelete", "Account": "rGone", "SignedBlob": "AB", "hash": "F00D"}`)

	rig.gateway.EXPECT().Submit(gomock.Any(), "AB", "F00D", true).Return(SubmitResult{Success: true}, nil)

	_, err := f.Submit(context.Background())
	require.NoError(t, err)
}

func TestSubmitSynthesizesLocalFailure(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender", "SignedBlob": "AB", "hash": "F00D"}`)

	rig.gateway.EXPECT().Submit(gomock.Any(), "AB", "F00D", false).
		Return(SubmitResult{}, errors.New("connection reset"))

	result, err := f.Submit(context.Background())
	require.NoError(t, err)
	require.False(t, result.Success)
	require.Equal(t, "telFAILED", result.EngineResult)
	require.Equal(t, "connection reset", result.Message)
	require.Equal(t, "F00D", result.TransactionID)
	require.Equal(t, StateSubmitted, f.State())
}

func TestVerifyRequiresHash(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender", "SignedBlob": "AB"}`)

	_, err := f.Verify(context.Background())
	require.ErrorIs(t, err, ErrMissingTransactionHash)
}

func TestVerifyResolvesStates(t *testing.T) {
	t.Run("validated", func(t *testing.T) {
		rig := newRig(t)
		f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender", "SignedBlob": "AB", "hash": "F00D"}`)

		rig.gateway.EXPECT().Verify(gomock.Any(), "F00D").
			Return(VerifyResult{Success: true, Transaction: map[string]any{"hash": "F00D"}}, nil)

		result, err := f.Verify(context.Background())
		require.NoError(t, err)
		require.True(t, result.Success)
		require.Equal(t, StateVerifiedSuccess, f.State())
	})

	t.Run("timeout resolves unverified", func(t *testing.T) {
		rig := newRig(t)
		f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender", "SignedBlob": "AB", "hash": "F00D"}`,
			WithVerifyTimeout(10*time.Millisecond))

		rig.gateway.EXPECT().Verify(gomock.Any(), "F00D").DoAndReturn(
			func(ctx context.Context, _ string) (VerifyResult, error) {
				<-ctx.Done()
				return VerifyResult{}, ctx.Err()
			})

		result, err := f.Verify(context.Background())
		require.NoError(t, err)
		require.False(t, result.Success)
		require.Equal(t, StateVerifiedFailed, f.State())
	})
}

func TestAbortBlocksFurtherSteps(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender", "Fee": "12", "Sequence": 845}`)

	f.Abort()
	require.True(t, f.Aborted())

	require.ErrorIs(t, f.Sign(context.Background(), "rSender", false), ErrAborted)

	_, err := f.Submit(context.Background())
	require.ErrorIs(t, err, ErrAborted)
}

func TestAbortIsNoopAfterSubmit(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender", "SignedBlob": "AB", "hash": "F00D"}`)

	rig.gateway.EXPECT().Submit(gomock.Any(), "AB", "F00D", false).Return(SubmitResult{Success: true}, nil)
	_, err := f.Submit(context.Background())
	require.NoError(t, err)

	f.Abort()
	require.False(t, f.Aborted())
}

func TestAbortConcurrentWithSubmit(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender", "SignedBlob": "AB", "hash": "F00D"}`)

	rig.gateway.EXPECT().Submit(gomock.Any(), "AB", "F00D", false).
		Return(SubmitResult{Success: true}, nil).AnyTimes()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			f.Abort()
		}
	}()

	_, err := f.Submit(context.Background())
	<-done

	if errors.Is(err, ErrAborted) {
		require.Less(t, f.State(), StateSubmitted)
	} else {
		require.NoError(t, err)
		require.Equal(t, StateSubmitted, f.State())
	}
}

func TestResultMetadataTakesPrecedence(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{
		"tx": {"TransactionType": "Payment", "Account": "rSender", "SignedBlob": "AB", "hash": "F00D"},
		"meta": {"TransactionResult": "tecPATH_DRY"}
	}`)

	rig.gateway.EXPECT().Submit(gomock.Any(), "AB", "F00D", false).
		Return(SubmitResult{Success: true, EngineResult: "tesSUCCESS"}, nil)
	_, err := f.Submit(context.Background())
	require.NoError(t, err)

	result := f.Result()
	require.False(t, result.Success)
	require.Equal(t, "tecPATH_DRY", result.Code)
}

func TestResultFromSubmitAndVerify(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "Payment", "Account": "rSender", "SignedBlob": "AB", "hash": "F00D"}`)

	rig.gateway.EXPECT().Submit(gomock.Any(), "AB", "F00D", false).
		Return(SubmitResult{Success: true, EngineResult: "tesSUCCESS"}, nil)
	rig.gateway.EXPECT().Verify(gomock.Any(), "F00D").Return(VerifyResult{Success: true}, nil)

	_, err := f.Submit(context.Background())
	require.NoError(t, err)
	_, err = f.Verify(context.Background())
	require.NoError(t, err)

	result := f.Result()
	require.True(t, result.Success)
	require.Equal(t, "tesSUCCESS", result.Code)
}

func TestLocalIDAssigned(t *testing.T) {
	rig := newRig(t)
	f := rig.flow(t, `{"TransactionType": "Payment"}`)
	require.NotEmpty(t, f.LocalID())

	other := rig.flow(t, `{"TransactionType": "Payment"}`)
	require.NotEqual(t, f.LocalID(), other.LocalID())
}
