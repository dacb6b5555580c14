package service

import (
	"context"
	"time"

	"fare-terminal/internal/core/domain"
	"fare-terminal/internal/counter"
	"fare-terminal/pkg/apperror"

	"github.com/google/uuid"
)

// store records a completed tap and, once the ledger has it, advances the counters.
func (t *transaction) store(c domain.Classified, tapIn, deduct bool, balance int64, amount uint32) bool {
	d := t.d
	gw := d.gateway
	now := d.now()

	cnt := d.counters.Current(now)

	rec := t.newRecord(c, tapIn, deduct, now)
	rec.BalanceBefore = balance
	rec.BalanceAfter = balance
	if deduct {
		rec.BalanceBefore = balance + int64(amount)
		rec.Fare = amount
		if amount > 0 {
			rec.Transcode = gw.Transcode()
		} else {
			var sn uint32
			if cnt != nil {
				sn = cnt.SN()
			}
			rec.Transcode = d.classifier.ZeroDeductTranscode(gw.ActiveTID(), gw.ActiveMID(), sn)
		}
	}
	rec.Status = domain.LedgerStatusSuccess
	rec.Description = domain.DescriptionSuccess

	if err := d.insert(t.ctx, rec); err != nil {
		t.log.Error().Err(err).Str("uuid", rec.ID.String()).Msg("failed to insert transaction")
		return false
	}
	t.dur.CheckPoint("insert transaction")

	if cnt == nil {
		t.log.Warn().Str("uuid", rec.ID.String()).Msg("transaction stored but counter is not loaded")
		return true
	}

	t.count(cnt, c, tapIn, deduct, amount)
	t.log.Info().
		Str("uuid", rec.ID.String()).
		Uint32("sn", cnt.SN()).
		Str("cycle", cnt.Cycle().String()).
		Str("direction", string(rec.Direction)).
		Msg("transaction stored")
	return true
}

// fail records a failed attempt. Counters are never touched.
func (t *transaction) fail(c domain.Classified, tapIn, deduct bool, balance int64, class domain.ErrorClass) {
	now := t.d.now()
	code := domain.ResolveErrorCode(t.card.Type, class)

	rec := t.newRecord(c, tapIn, deduct, now)
	rec.BalanceBefore = balance
	rec.BalanceAfter = balance
	if deduct {
		rec.Fare = domain.FareFor(c.Rules, c.Data)
	}
	rec.Status = domain.LedgerStatusFailure
	rec.Description = code.String()

	if err := t.d.insert(t.ctx, rec); err != nil {
		t.log.Error().Err(err).Str("code", code.String()).Msg("failed to insert failed transaction")
		return
	}
	t.log.Warn().
		Str("uuid", rec.ID.String()).
		Str("class", class.String()).
		Str("code", code.String()).
		Msg("failed transaction stored")
}

func (t *transaction) newRecord(c domain.Classified, tapIn, deduct bool, now time.Time) *domain.LedgerRecord {
	d := t.d
	gw := d.gateway

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	rec := &domain.LedgerRecord{
		ID:               id,
		Direction:        domain.DirectionOf(tapIn),
		Deduct:           deduct,
		IntegratorID:     d.cfg.IntegratorID,
		ProcessingTimeMs: t.dur.TotalMs(),
		MID:              gw.ActiveMID(),
		TID:              gw.ActiveTID(),
		TapIn:            d.classifier.Identity().WithTime(now),
		Origin:           c.Data.Origin,
		Card:             domain.NewCardSnapshot(t.card, c.Data),
		TransactionAt:    now,
		StoredAt:         now,
	}
	rec.NormalFare = c.Rules.NormalFare()
	if minimum, ok := c.Rules.MinimumBalance(); ok {
		rec.MinimumBalance = minimum
	}
	return rec
}

// count applies one stored record to the card's issuer and persists it.
func (t *transaction) count(cnt *counter.Counter, c domain.Classified, tapIn, deduct bool, amount uint32) {
	d := t.d
	iss := cnt.IssuerByCardType(t.card.Type)

	switch {
	case !tapIn:
		iss.IncTapOut()
	case c.Data.FreeService:
		iss.IncTapInFreeService()
	case c.Rules.FareType() == domain.FareTypeEconomy:
		iss.IncTapInEconomy()
	default:
		iss.IncTapInRegular()
	}
	if deduct && amount > 0 {
		iss.IncAmount(amount)
	}
	iss.IncPending()
	if err := iss.Store(); err != nil {
		t.log.Error().Err(apperror.ErrCounterPersist(err)).Str("counter", iss.Name()).Msg("failed to store counter")
	}

	cnt.IncSN()
	if err := cnt.StoreSN(); err != nil {
		t.log.Error().Err(apperror.ErrCounterPersist(err)).Msg("failed to store sequence number")
	}

	snapshot := cnt.Snapshot()
	d.display.UpdateCounter(snapshot)
	d.publish(t.ctx, snapshot)
}

func (d *Dispatcher) insert(ctx context.Context, rec *domain.LedgerRecord) error {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.InsertTimeout)
	defer cancel()

	if err := d.ledger.InsertLog(ctx, rec); err != nil {
		return apperror.ErrLedgerInsert(err)
	}
	return nil
}

// publish mirrors the counters to the back office. Failures are logged only.
func (d *Dispatcher) publish(ctx context.Context, snapshot domain.CounterSnapshot) {
	if d.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, d.cfg.InsertTimeout)
	defer cancel()

	if err := d.publisher.Publish(ctx, d.gateway.ActiveTID(), snapshot); err != nil {
		d.log.Warn().Err(err).Msg("counter publish failed, continuing")
	}
}
