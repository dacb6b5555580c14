package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fare-terminal/internal/core/domain"
	"fare-terminal/internal/core/ports/mocks"
	"fare-terminal/internal/counter"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, time.March, 7, 8, 15, 0, 0, time.Local)

var (
	rawBlock   = domain.UserBlock{0x01, 0x02, 0x03}
	writeBlock = domain.UserBlock{0x0A, 0x0B, 0x0C}
)

type dispatcherTestDeps struct {
	d          *Dispatcher
	gateway    *mocks.MockCardGateway
	classifier *mocks.MockFareClassifier
	display    *mocks.MockDisplay
	ledger     *mocks.MockLedgerStore
	publisher  *mocks.MockCounterPublisher
	keeper     *counter.Keeper
	base       string
	ctrl       *gomock.Controller
}

func setupDispatcher(t *testing.T) *dispatcherTestDeps {
	return setupDispatcherWithBase(t, t.TempDir())
}

func setupDispatcherWithBase(t *testing.T, base string) *dispatcherTestDeps {
	ctrl := gomock.NewController(t)
	deps := &dispatcherTestDeps{
		gateway:    mocks.NewMockCardGateway(ctrl),
		classifier: mocks.NewMockFareClassifier(ctrl),
		display:    mocks.NewMockDisplay(ctrl),
		ledger:     mocks.NewMockLedgerStore(ctrl),
		publisher:  mocks.NewMockCounterPublisher(ctrl),
		keeper:     counter.NewKeeper(base, zerolog.Nop()),
		base:       base,
		ctrl:       ctrl,
	}
	deps.d = NewDispatcher(
		deps.gateway, deps.classifier, deps.display, deps.ledger, deps.publisher,
		deps.keeper, DispatcherConfig{IntegratorID: 1, InsertTimeout: time.Second}, zerolog.Nop(),
	)
	deps.d.now = func() time.Time { return testNow }

	deps.gateway.EXPECT().ActiveMID().Return("MID01").AnyTimes()
	deps.gateway.EXPECT().ActiveTID().Return("TID01").AnyTimes()
	deps.classifier.EXPECT().Identity().Return(domain.TerminalIdentity{
		FletCode:       "BRT-07",
		TerminalID:     "T0042",
		Transportation: domain.TransportationBRT,
	}).AnyTimes()
	return deps
}

// captureLedger records every inserted record and returns err for each.
func (deps *dispatcherTestDeps) captureLedger(err error) *[]*domain.LedgerRecord {
	var records []*domain.LedgerRecord
	deps.ledger.EXPECT().InsertLog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *domain.LedgerRecord) error {
			records = append(records, r)
			return err
		},
	).AnyTimes()
	return &records
}

func (deps *dispatcherTestDeps) expectCounterPublished(times int) {
	deps.display.EXPECT().UpdateCounter(gomock.Any()).Times(times)
	deps.publisher.EXPECT().Publish(gomock.Any(), "TID01", gomock.Any()).Return(nil).Times(times)
}

func (deps *dispatcherTestDeps) totals(t *testing.T) domain.IssuerCounters {
	t.Helper()
	c := deps.keeper.Current(testNow)
	require.NotNil(t, c)
	return c.Totals()
}

func card(ct domain.CardType) domain.CardIdentity {
	return domain.CardIdentity{Number: 6032984012345678, Issuer: "issuer", Bank: "bank", Type: ct}
}

func classified(fare domain.FlatFare) domain.Classified {
	return domain.Classified{
		Data: domain.CardUserData{
			Raw:    rawBlock,
			Origin: domain.TerminalIdentity{FletCode: "BRT-01", TerminalID: "T0001"},
		},
		ToWrite: writeBlock,
		Rules:   fare,
	}
}

var regularFare = domain.FlatFare{Normal: 3500, Final: 3500, Minimum: 3500, Calculated: true}

// ==================== Deduct outcomes ====================

func TestDispatcher_TapInWithDeduct_Success(t *testing.T) {
	deps := setupDispatcher(t)
	records := deps.captureLedger(nil)

	gomock.InOrder(
		deps.gateway.EXPECT().Deduct(uint32(3500)).Return(true),
		deps.gateway.EXPECT().LastBalance().Return(int64(46500)),
		deps.gateway.EXPECT().WriteUserData(writeBlock, rawBlock).Return(true),
		deps.display.EXPECT().SuccessTapInWithDeduct(domain.Receipt{
			Fare: 3500, BaseFare: 3500, Balance: 46500, Tariff: domain.TariffRegular,
		}),
		deps.gateway.EXPECT().Transcode().Return("TC0001"),
		deps.gateway.EXPECT().PurchaseCommit(),
	)
	deps.expectCounterPublished(1)

	ok := deps.d.Dispatch(context.Background(), card(domain.CardTypeMandiri),
		domain.TapInWithDeduct{Classified: classified(regularFare)}, NewDuration("test"))
	require.True(t, ok)

	require.Len(t, *records, 1)
	rec := (*records)[0]
	assert.Equal(t, domain.LedgerStatusSuccess, rec.Status)
	assert.Equal(t, domain.DescriptionSuccess, rec.Description)
	assert.Equal(t, domain.DirectionTapIn, rec.Direction)
	assert.True(t, rec.Deduct)
	assert.Equal(t, uint32(3500), rec.Fare)
	assert.Equal(t, int64(50000), rec.BalanceBefore)
	assert.Equal(t, int64(46500), rec.BalanceAfter)
	assert.Equal(t, uint32(3500), rec.NormalFare)
	assert.Equal(t, uint32(3500), rec.MinimumBalance)
	assert.Equal(t, "TC0001", rec.Transcode)
	assert.Equal(t, "MID01", rec.MID)
	assert.Equal(t, "TID01", rec.TID)
	assert.Equal(t, 1, rec.IntegratorID)
	assert.Equal(t, uuidVersion7, int(rec.ID.Version()))
	assert.Equal(t, "T0042", rec.TapIn.TerminalID)
	assert.Equal(t, testNow, rec.TapIn.TransactionAt)
	assert.Equal(t, "T0001", rec.Origin.TerminalID)
	assert.Equal(t, rawBlock.Hex(), rec.Card.UserData)

	c := deps.keeper.Peek()
	require.NotNil(t, c)
	emoney := c.Issuer(counter.Emoney)
	assert.Equal(t, uint32(1), emoney.TapInRegular())
	assert.Equal(t, uint64(3500), emoney.Amount())
	assert.Equal(t, uint32(1), emoney.Pending())
	assert.Equal(t, uint32(1), c.SN())

	// Counters were persisted before Dispatch returned.
	reopened, err := counter.Open(deps.base, testNow, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, emoney.Snapshot(), reopened.Issuer(counter.Emoney).Snapshot())
	assert.Equal(t, uint32(1), reopened.SN())
}

const uuidVersion7 = 7

func TestDispatcher_TapInWithDeduct_WriteBackFails(t *testing.T) {
	deps := setupDispatcher(t)
	records := deps.captureLedger(nil)

	deps.gateway.EXPECT().Deduct(uint32(3500)).Return(true)
	deps.gateway.EXPECT().LastBalance().Return(int64(46500))
	deps.gateway.EXPECT().WriteUserData(writeBlock, rawBlock).Return(false)
	deps.display.EXPECT().FailedToWriteCard("1004")

	ok := deps.d.Dispatch(context.Background(), card(domain.CardTypeBRI),
		domain.TapInWithDeduct{Classified: classified(regularFare)}, NewDuration("test"))
	assert.False(t, ok)

	require.Len(t, *records, 1)
	rec := (*records)[0]
	assert.Equal(t, domain.LedgerStatusFailure, rec.Status)
	assert.Equal(t, string(domain.BRIA7WriteBlockException), rec.Description)
	assert.Equal(t, int64(46500), rec.BalanceAfter)
	assert.Empty(t, rec.Transcode)
	assert.Equal(t, domain.IssuerCounters{}, deps.totals(t))
}

func TestDispatcher_TapOutWithDeduct_Success(t *testing.T) {
	deps := setupDispatcher(t)
	records := deps.captureLedger(nil)

	deps.gateway.EXPECT().Deduct(uint32(3500)).Return(true)
	deps.gateway.EXPECT().LastBalance().Return(int64(10000))
	deps.gateway.EXPECT().WriteUserData(writeBlock, rawBlock).Return(true)
	deps.display.EXPECT().SuccessTapOutWithDeduct(gomock.Any())
	deps.gateway.EXPECT().Transcode().Return("TC0002")
	deps.gateway.EXPECT().PurchaseCommit()
	deps.expectCounterPublished(1)

	ok := deps.d.Dispatch(context.Background(), card(domain.CardTypeBCA),
		domain.TapOutWithDeduct{Classified: classified(regularFare)}, NewDuration("test"))
	require.True(t, ok)

	require.Len(t, *records, 1)
	assert.Equal(t, domain.DirectionTapOut, (*records)[0].Direction)

	flazz := deps.keeper.Peek().Issuer(counter.Flazz)
	assert.Equal(t, uint32(1), flazz.TapOut())
	assert.Equal(t, uint32(0), flazz.TapInRegular())
	assert.Equal(t, uint64(3500), flazz.Amount())
}

func TestDispatcher_Penalty_RecordsResetAndTapIn(t *testing.T) {
	deps := setupDispatcher(t)
	records := deps.captureLedger(nil)

	deps.gateway.EXPECT().Deduct(uint32(3500)).Return(true)
	deps.gateway.EXPECT().LastBalance().Return(int64(20000))
	deps.gateway.EXPECT().WriteUserData(writeBlock, rawBlock).Return(true)
	deps.display.EXPECT().SuccessResetTapIn(gomock.Any())
	deps.gateway.EXPECT().Transcode().Return("TC0003")
	deps.gateway.EXPECT().PurchaseCommit().Times(1)
	deps.expectCounterPublished(2)

	ok := deps.d.Dispatch(context.Background(), card(domain.CardTypeDKI),
		domain.Penalty{Classified: classified(regularFare)}, NewDuration("test"))
	require.True(t, ok)

	require.Len(t, *records, 2)
	reset, tapIn := (*records)[0], (*records)[1]

	assert.Equal(t, domain.DirectionTapOut, reset.Direction)
	assert.True(t, reset.Deduct)
	assert.Equal(t, uint32(3500), reset.Fare)
	assert.Equal(t, int64(23500), reset.BalanceBefore)
	assert.Equal(t, "TC0003", reset.Transcode)

	assert.Equal(t, domain.DirectionTapIn, tapIn.Direction)
	assert.False(t, tapIn.Deduct)
	assert.Equal(t, uint32(0), tapIn.Fare)
	assert.Equal(t, int64(20000), tapIn.BalanceBefore)
	assert.Equal(t, int64(20000), tapIn.BalanceAfter)
	assert.Empty(t, tapIn.Transcode)
	assert.NotEqual(t, reset.ID, tapIn.ID)

	c := deps.keeper.Peek()
	jakcard := c.Issuer(counter.Jakcard)
	assert.Equal(t, uint32(1), jakcard.TapOut())
	assert.Equal(t, uint32(1), jakcard.TapInRegular())
	assert.Equal(t, uint64(3500), jakcard.Amount())
	assert.Equal(t, uint32(2), jakcard.Pending())
	assert.Equal(t, uint32(2), c.SN())
}

func TestDispatcher_Penalty_DeductFails(t *testing.T) {
	deps := setupDispatcher(t)
	records := deps.captureLedger(nil)

	deps.gateway.EXPECT().Deduct(uint32(3500)).Return(false)
	deps.gateway.EXPECT().LastStatus().Return(domain.CardOpLostContact)
	deps.display.EXPECT().FailedToDeductCard("3")
	deps.gateway.EXPECT().PurchaseCommit().Times(0)

	ok := deps.d.Dispatch(context.Background(), card(domain.CardTypeDKI),
		domain.Penalty{Classified: classified(regularFare)}, NewDuration("test"))
	assert.False(t, ok)

	require.Len(t, *records, 1)
	rec := (*records)[0]
	assert.Equal(t, domain.LedgerStatusFailure, rec.Status)
	assert.Equal(t, string(domain.GeneralF6DebitDeviceLostContact), rec.Description)
	assert.Equal(t, domain.DirectionTapIn, rec.Direction)
	assert.True(t, rec.Deduct)
	assert.Equal(t, uint32(3500), rec.Fare)
	assert.Equal(t, domain.IssuerCounters{}, deps.totals(t))
}

func TestDispatcher_Penalty_WriteBackFails(t *testing.T) {
	deps := setupDispatcher(t)
	records := deps.captureLedger(nil)

	deps.gateway.EXPECT().Deduct(uint32(3500)).Return(true)
	deps.gateway.EXPECT().LastBalance().Return(int64(20000))
	deps.gateway.EXPECT().WriteUserData(writeBlock, rawBlock).Return(false)
	deps.display.EXPECT().FailedToWriteCard("1004")
	deps.gateway.EXPECT().PurchaseCommit().Times(0)

	ok := deps.d.Dispatch(context.Background(), card(domain.CardTypeDKI),
		domain.Penalty{Classified: classified(regularFare)}, NewDuration("test"))
	assert.False(t, ok)

	require.Len(t, *records, 1)
	rec := (*records)[0]
	assert.Equal(t, domain.LedgerStatusFailure, rec.Status)
	assert.Equal(t, string(domain.DKICBWriteBlockException), rec.Description)
	assert.Equal(t, domain.DirectionTapIn, rec.Direction)
	assert.True(t, rec.Deduct)
	assert.Equal(t, uint32(3500), rec.Fare)
	assert.Equal(t, int64(20000), rec.BalanceAfter)
	assert.Equal(t, domain.IssuerCounters{}, deps.totals(t))
}

func TestDispatcher_Penalty_OneInsertFails(t *testing.T) {
	tests := []struct {
		name       string
		insertErrs []error
		want       domain.IssuerCounters
	}{
		{
			name:       "reset insert fails",
			insertErrs: []error{errors.New("disk full"), nil},
			want:       domain.IssuerCounters{TapInRegular: 1, Pending: 1},
		},
		{
			name:       "tap-in insert fails",
			insertErrs: []error{nil, errors.New("disk full")},
			want:       domain.IssuerCounters{TapOut: 1, Amount: 3500, Pending: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupDispatcher(t)

			var records []*domain.LedgerRecord
			deps.ledger.EXPECT().InsertLog(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, r *domain.LedgerRecord) error {
					err := tt.insertErrs[len(records)]
					records = append(records, r)
					return err
				},
			).Times(2)

			deps.gateway.EXPECT().Deduct(uint32(3500)).Return(true)
			deps.gateway.EXPECT().LastBalance().Return(int64(20000))
			deps.gateway.EXPECT().WriteUserData(writeBlock, rawBlock).Return(true)
			deps.display.EXPECT().SuccessResetTapIn(gomock.Any())
			deps.gateway.EXPECT().Transcode().Return("TC0005")
			deps.gateway.EXPECT().PurchaseCommit().Times(1)
			deps.expectCounterPublished(1)

			ok := deps.d.Dispatch(context.Background(), card(domain.CardTypeDKI),
				domain.Penalty{Classified: classified(regularFare)}, NewDuration("test"))
			assert.True(t, ok)

			require.Len(t, records, 2)
			assert.Equal(t, domain.DirectionTapOut, records[0].Direction)
			assert.Equal(t, domain.DirectionTapIn, records[1].Direction)

			c := deps.keeper.Peek()
			require.NotNil(t, c)
			assert.Equal(t, tt.want, c.Issuer(counter.Jakcard).Snapshot())
			assert.Equal(t, uint32(1), c.SN())
		})
	}
}

func TestDispatcher_RejectsOutcomeWithoutRules(t *testing.T) {
	outcomes := []domain.TransactionOutcome{
		domain.TapInWithDeduct{Classified: domain.Classified{Data: domain.CardUserData{Raw: rawBlock}}},
		domain.TapOutWithoutDeduct{Classified: domain.Classified{Data: domain.CardUserData{Raw: rawBlock}}},
		domain.Penalty{Classified: domain.Classified{Data: domain.CardUserData{Raw: rawBlock}}},
	}

	for _, outcome := range outcomes {
		t.Run(string(outcome.Kind()), func(t *testing.T) {
			deps := setupDispatcher(t)
			deps.ledger.EXPECT().InsertLog(gomock.Any(), gomock.Any()).Times(0)
			deps.display.EXPECT().FareNotFound()

			var ok bool
			require.NotPanics(t, func() {
				ok = deps.d.Dispatch(context.Background(), card(domain.CardTypeMandiri), outcome, NewDuration("test"))
			})
			assert.False(t, ok)
		})
	}
}

func TestDispatcher_ZeroFare_ReadsBalanceWithoutDeduct(t *testing.T) {
	deps := setupDispatcher(t)
	records := deps.captureLedger(nil)

	c := classified(regularFare)
	c.Data.FreeService = true

	deps.gateway.EXPECT().Balance().Return(int64(20000))
	deps.gateway.EXPECT().WriteUserData(writeBlock, rawBlock).Return(true)
	deps.display.EXPECT().SuccessTapInWithDeduct(domain.Receipt{
		Fare: 0, BaseFare: 0, Balance: 20000, Tariff: domain.TariffFree,
	})
	deps.classifier.EXPECT().ZeroDeductTranscode("TID01", "MID01", uint32(0)).Return("ZD0000")
	deps.expectCounterPublished(1)

	ok := deps.d.Dispatch(context.Background(), card(domain.CardTypeMandiri),
		domain.TapInWithDeduct{Classified: c}, NewDuration("test"))
	require.True(t, ok)

	require.Len(t, *records, 1)
	rec := (*records)[0]
	assert.Equal(t, uint32(0), rec.Fare)
	assert.Equal(t, int64(20000), rec.BalanceBefore)
	assert.Equal(t, int64(20000), rec.BalanceAfter)
	assert.Equal(t, "ZD0000", rec.Transcode)

	emoney := deps.keeper.Peek().Issuer(counter.Emoney)
	assert.Equal(t, uint32(1), emoney.TapInFreeService())
	assert.Equal(t, uint64(0), emoney.Amount())
}

func TestDispatcher_ZeroFare_UnreadableBalance(t *testing.T) {
	deps := setupDispatcher(t)
	records := deps.captureLedger(nil)

	c := classified(regularFare)
	c.Data.FreeService = true

	deps.gateway.EXPECT().Balance().Return(int64(-1))
	deps.gateway.EXPECT().LastStatus().Return(domain.CardOpFailed)
	deps.display.EXPECT().FailedToDeductCard("1")

	ok := deps.d.Dispatch(context.Background(), card(domain.CardTypeBNI),
		domain.TapInWithDeduct{Classified: c}, NewDuration("test"))
	assert.False(t, ok)

	require.Len(t, *records, 1)
	assert.Equal(t, string(domain.BNIBABalanceCheckException), (*records)[0].Description)
}

func TestDispatcher_DeductFailures(t *testing.T) {
	tests := []struct {
		name        string
		status      domain.CardOpStatus
		balance     int64
		card        domain.CardType
		expectUI    func(deps *dispatcherTestDeps)
		wantCode    domain.ErrorCode
		wantBalance int64
	}{
		{
			name:    "insufficient value with readable balance",
			status:  domain.CardOpInsufficientValue,
			balance: 1200,
			card:    domain.CardTypeBNI,
			expectUI: func(deps *dispatcherTestDeps) {
				deps.gateway.EXPECT().Balance().Return(int64(1200))
				deps.display.EXPECT().InsufficientBalance(int64(1200))
			},
			wantCode:    domain.BNIB3InsufficientBalance,
			wantBalance: 1200,
		},
		{
			name:   "insufficient value with unreadable balance",
			status: domain.CardOpInsufficientValue,
			card:   domain.CardTypeBNI,
			expectUI: func(deps *dispatcherTestDeps) {
				deps.gateway.EXPECT().Balance().Return(int64(-1))
				deps.display.EXPECT().FailedToDeductCard("2")
			},
			wantCode: domain.BNIBABalanceCheckException,
		},
		{
			name:   "lost contact",
			status: domain.CardOpLostContact,
			card:   domain.CardTypeBCA,
			expectUI: func(deps *dispatcherTestDeps) {
				deps.display.EXPECT().FailedToDeductCard("3")
			},
			wantCode: domain.GeneralF6DebitDeviceLostContact,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupDispatcher(t)
			records := deps.captureLedger(nil)

			deps.gateway.EXPECT().Deduct(uint32(3500)).Return(false)
			deps.gateway.EXPECT().LastStatus().Return(tt.status)
			tt.expectUI(deps)

			ok := deps.d.Dispatch(context.Background(), card(tt.card),
				domain.TapOutWithDeduct{Classified: classified(regularFare)}, NewDuration("test"))
			assert.False(t, ok)

			require.Len(t, *records, 1, "exactly one failed record per attempt")
			rec := (*records)[0]
			assert.Equal(t, domain.LedgerStatusFailure, rec.Status)
			assert.Equal(t, string(tt.wantCode), rec.Description)
			assert.Equal(t, tt.wantBalance, rec.BalanceBefore)
			assert.Equal(t, tt.wantBalance, rec.BalanceAfter)
			assert.Equal(t, uint32(3500), rec.Fare)
			assert.Equal(t, domain.IssuerCounters{}, deps.totals(t))
		})
	}
}

func TestDispatcher_LedgerInsertFails_NoCounterMutation(t *testing.T) {
	deps := setupDispatcher(t)
	records := deps.captureLedger(errors.New("disk full"))

	deps.gateway.EXPECT().Deduct(uint32(3500)).Return(true)
	deps.gateway.EXPECT().LastBalance().Return(int64(46500))
	deps.gateway.EXPECT().WriteUserData(writeBlock, rawBlock).Return(true)
	deps.display.EXPECT().SuccessTapInWithDeduct(gomock.Any())
	deps.gateway.EXPECT().Transcode().Return("TC0004")
	deps.gateway.EXPECT().PurchaseCommit()
	// No UpdateCounter, no Publish.

	ok := deps.d.Dispatch(context.Background(), card(domain.CardTypeMandiri),
		domain.TapInWithDeduct{Classified: classified(regularFare)}, NewDuration("test"))
	assert.True(t, ok)

	assert.Len(t, *records, 1)
	c := deps.keeper.Peek()
	require.NotNil(t, c)
	assert.Equal(t, domain.IssuerCounters{}, c.Totals())
	assert.Equal(t, uint32(0), c.SN())
}

func TestDispatcher_DegradedWithoutCounter(t *testing.T) {
	// A regular file where the counter root should be makes every load fail.
	base := filepath.Join(t.TempDir(), "counter")
	require.NoError(t, os.WriteFile(base, []byte("not a directory"), 0o644))

	deps := setupDispatcherWithBase(t, base)
	records := deps.captureLedger(nil)

	deps.gateway.EXPECT().Deduct(uint32(3500)).Return(true)
	deps.gateway.EXPECT().LastBalance().Return(int64(46500))
	deps.gateway.EXPECT().WriteUserData(writeBlock, rawBlock).Return(true)
	deps.display.EXPECT().SuccessTapInWithDeduct(gomock.Any())
	deps.gateway.EXPECT().Transcode().Return("TC0005")
	deps.gateway.EXPECT().PurchaseCommit()

	ok := deps.d.Dispatch(context.Background(), card(domain.CardTypeMandiri),
		domain.TapInWithDeduct{Classified: classified(regularFare)}, NewDuration("test"))
	assert.True(t, ok)
	assert.Len(t, *records, 1)
	assert.Nil(t, deps.keeper.Peek())
}

func TestDispatcher_PublishFailureIsTolerated(t *testing.T) {
	deps := setupDispatcher(t)
	deps.captureLedger(nil)

	deps.gateway.EXPECT().Deduct(uint32(3500)).Return(true)
	deps.gateway.EXPECT().LastBalance().Return(int64(46500))
	deps.gateway.EXPECT().WriteUserData(writeBlock, rawBlock).Return(true)
	deps.display.EXPECT().SuccessTapInWithDeduct(gomock.Any())
	deps.gateway.EXPECT().Transcode().Return("TC0006")
	deps.gateway.EXPECT().PurchaseCommit()
	deps.display.EXPECT().UpdateCounter(gomock.Any())
	deps.publisher.EXPECT().Publish(gomock.Any(), "TID01", gomock.Any()).Return(errors.New("redis down"))

	ok := deps.d.Dispatch(context.Background(), card(domain.CardTypeMandiri),
		domain.TapInWithDeduct{Classified: classified(regularFare)}, NewDuration("test"))
	assert.True(t, ok)
	assert.Equal(t, uint32(1), deps.keeper.Peek().SN())
}

// ==================== Without-deduct outcomes ====================

func TestDispatcher_TapOutWithoutDeduct_UnreadableBalance(t *testing.T) {
	deps := setupDispatcher(t)
	records := deps.captureLedger(nil)

	deps.gateway.EXPECT().Balance().Return(int64(-1))
	deps.display.EXPECT().FailedToReadCard("1004")

	ok := deps.d.Dispatch(context.Background(), card(domain.CardTypeDKI),
		domain.TapOutWithoutDeduct{Classified: classified(regularFare)}, NewDuration("test"))
	assert.False(t, ok)

	require.Len(t, *records, 1)
	rec := (*records)[0]
	assert.Equal(t, domain.LedgerStatusFailure, rec.Status)
	assert.Equal(t, string(domain.DKIC3BalanceCheckException), rec.Description)
	assert.Equal(t, domain.IssuerCounters{}, deps.totals(t))
}

func TestDispatcher_TapOutWithoutDeduct_Success(t *testing.T) {
	deps := setupDispatcher(t)
	records := deps.captureLedger(nil)

	deps.gateway.EXPECT().Balance().Return(int64(15000))
	deps.gateway.EXPECT().WriteUserData(writeBlock, rawBlock).Return(true)
	deps.display.EXPECT().SuccessTapOutWithoutDeduct(domain.Receipt{Balance: 15000, Tariff: domain.TariffRegular})
	deps.expectCounterPublished(1)

	ok := deps.d.Dispatch(context.Background(), card(domain.CardTypeBRI),
		domain.TapOutWithoutDeduct{Classified: classified(regularFare)}, NewDuration("test"))
	require.True(t, ok)

	rec := (*records)[0]
	assert.False(t, rec.Deduct)
	assert.Equal(t, uint32(0), rec.Fare)
	assert.Empty(t, rec.Transcode)
	assert.Equal(t, uint32(1), deps.keeper.Peek().Issuer(counter.Brizzi).TapOut())
}

func TestDispatcher_TapInWithoutDeduct_BelowMinimumBalance(t *testing.T) {
	deps := setupDispatcher(t)
	records := deps.captureLedger(nil)

	fare := regularFare
	fare.Minimum = 5000

	deps.gateway.EXPECT().Balance().Return(int64(3000))
	deps.display.EXPECT().InsufficientMinimumBalance(int64(3000))

	ok := deps.d.Dispatch(context.Background(), card(domain.CardTypeMandiri),
		domain.TapInWithoutDeduct{Classified: classified(fare)}, NewDuration("test"))
	assert.False(t, ok)

	require.Len(t, *records, 1)
	rec := (*records)[0]
	assert.Equal(t, string(domain.MandiriD5InsufficientBalance), rec.Description)
	assert.Equal(t, int64(3000), rec.BalanceAfter)
	assert.Equal(t, uint32(5000), rec.MinimumBalance)
}

func TestDispatcher_TapInWithoutDeduct_FreeServiceSkipsMinimum(t *testing.T) {
	deps := setupDispatcher(t)
	deps.captureLedger(nil)

	c := classified(regularFare)
	c.Data.FreeService = true

	deps.gateway.EXPECT().Balance().Return(int64(0))
	deps.gateway.EXPECT().WriteUserData(writeBlock, rawBlock).Return(true)
	deps.display.EXPECT().SuccessTapInWithoutDeduct(domain.Receipt{Balance: 0, Tariff: domain.TariffFree})
	deps.expectCounterPublished(1)

	ok := deps.d.Dispatch(context.Background(), card(domain.CardTypeMandiri),
		domain.TapInWithoutDeduct{Classified: c}, NewDuration("test"))
	require.True(t, ok)
	assert.Equal(t, uint32(1), deps.keeper.Peek().Issuer(counter.Emoney).TapInFreeService())
}

func TestDispatcher_TapInWithoutDeduct_EconomyFare(t *testing.T) {
	deps := setupDispatcher(t)
	deps.captureLedger(nil)

	fare := regularFare
	fare.Type = domain.FareTypeEconomy

	deps.gateway.EXPECT().Balance().Return(int64(10000))
	deps.gateway.EXPECT().WriteUserData(writeBlock, rawBlock).Return(true)
	deps.display.EXPECT().SuccessTapInWithoutDeduct(gomock.Any())
	deps.expectCounterPublished(1)

	ok := deps.d.Dispatch(context.Background(), card(domain.CardTypeBNI),
		domain.TapInWithoutDeduct{Classified: classified(fare)}, NewDuration("test"))
	require.True(t, ok)

	tapcash := deps.keeper.Peek().Issuer(counter.Tapcash)
	assert.Equal(t, uint32(1), tapcash.TapInEconomy())
	assert.Equal(t, uint32(0), tapcash.TapInRegular())
}

func TestDispatcher_TapInWithoutDeduct_WriteBackFails(t *testing.T) {
	deps := setupDispatcher(t)
	records := deps.captureLedger(nil)

	deps.gateway.EXPECT().Balance().Return(int64(10000))
	deps.gateway.EXPECT().WriteUserData(writeBlock, rawBlock).Return(false)
	deps.display.EXPECT().FailedToWriteCard("1004")

	ok := deps.d.Dispatch(context.Background(), card(domain.CardTypeBCA),
		domain.TapInWithoutDeduct{Classified: classified(regularFare)}, NewDuration("test"))
	assert.False(t, ok)

	require.Len(t, *records, 1)
	assert.Equal(t, string(domain.BCAE9WriteBlockException), (*records)[0].Description)
	assert.Equal(t, int64(10000), (*records)[0].BalanceAfter)
}

// ==================== Outcomes without value transfer ====================

func TestDispatcher_Blocked(t *testing.T) {
	deps := setupDispatcher(t)
	records := deps.captureLedger(nil)

	deps.display.EXPECT().BlockingTime()

	ok := deps.d.Dispatch(context.Background(), card(domain.CardTypeDKI),
		domain.Blocked{Classified: classified(regularFare)}, NewDuration("test"))
	assert.False(t, ok)

	require.Len(t, *records, 1)
	rec := (*records)[0]
	assert.Equal(t, domain.LedgerStatusFailure, rec.Status)
	assert.Equal(t, string(domain.DKIC9TapBelowOneMinute), rec.Description)
	assert.Equal(t, uint32(0), rec.Fare)
	assert.Equal(t, domain.DirectionTapIn, rec.Direction)
	assert.False(t, rec.Deduct)
	assert.Equal(t, domain.IssuerCounters{}, deps.totals(t))
}

func TestDispatcher_FreeServiceExpired(t *testing.T) {
	deps := setupDispatcher(t)
	records := deps.captureLedger(nil)

	expiry := testNow.AddDate(0, 0, -1)
	c := classified(regularFare)
	c.Data.FreeServiceExpiry = expiry

	deps.display.EXPECT().FreeServiceExpired(expiry)

	ok := deps.d.Dispatch(context.Background(), card(domain.CardTypeBRI),
		domain.FreeServiceExpired{Classified: c}, NewDuration("test"))
	assert.False(t, ok)

	require.Len(t, *records, 1)
	assert.Equal(t, string(domain.DKIC5FreeServiceExpired), (*records)[0].Description)
	assert.Equal(t, uint32(0), (*records)[0].Fare)
}

func TestDispatcher_OutcomesWithoutLedgerEntry(t *testing.T) {
	tests := []struct {
		name    string
		outcome domain.TransactionOutcome
		expect  func(deps *dispatcherTestDeps)
	}{
		{
			name:    "invalid",
			outcome: domain.Invalid{Raw: rawBlock},
			expect:  func(*dispatcherTestDeps) {},
		},
		{
			name:    "fare not found",
			outcome: domain.FareNotFound{Raw: rawBlock},
			expect: func(deps *dispatcherTestDeps) {
				deps.display.EXPECT().FareNotFound()
			},
		},
		{
			name:    "insufficient balance",
			outcome: domain.InsufficientBalance{Raw: rawBlock},
			expect: func(deps *dispatcherTestDeps) {
				deps.display.EXPECT().InsufficientMinimumBalance(int64(0))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupDispatcher(t)
			tt.expect(deps)
			// No InsertLog expectation: any ledger call fails the test.

			ok := deps.d.Dispatch(context.Background(), card(domain.CardTypeMandiri), tt.outcome, NewDuration("test"))
			assert.False(t, ok)
		})
	}
}

func TestDispatcher_RecordsCheckpoints(t *testing.T) {
	deps := setupDispatcher(t)
	deps.captureLedger(nil)

	deps.gateway.EXPECT().Deduct(uint32(3500)).Return(true)
	deps.gateway.EXPECT().LastBalance().Return(int64(46500))
	deps.gateway.EXPECT().WriteUserData(writeBlock, rawBlock).Return(true)
	deps.display.EXPECT().SuccessTapInWithDeduct(gomock.Any())
	deps.gateway.EXPECT().Transcode().Return("TC0007")
	deps.gateway.EXPECT().PurchaseCommit()
	deps.expectCounterPublished(1)

	dur := NewDuration("test")
	deps.d.Dispatch(context.Background(), card(domain.CardTypeMandiri),
		domain.TapInWithDeduct{Classified: classified(regularFare)}, dur)

	assert.Equal(t, []string{
		"deduct success",
		"write user data success",
		"insert transaction",
		"purchase commit",
	}, dur.Steps())
}
