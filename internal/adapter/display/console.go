// Package display renders terminal screens as structured log lines.
package display

import (
	"context"
	"sync"
	"time"

	"fare-terminal/internal/core/domain"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Screen is what the display currently shows.
type Screen struct {
	// Processing is set from ProcessingCard until the next result or Reset.
	Processing bool
	Message    string
	CardNumber uint64
	NormalFare uint32
	Receipt    *domain.Receipt
	Counters   domain.CounterSnapshot
}

// Console implements ports.Display on top of a zerolog logger.
type Console struct {
	mu      sync.Mutex
	log     zerolog.Logger
	printer *message.Printer
	screen  Screen
}

// NewConsole creates a display that is ready immediately.
func NewConsole(log zerolog.Logger) *Console {
	return &Console{
		log:     log.With().Str("component", "display").Logger(),
		printer: message.NewPrinter(language.Indonesian),
	}
}

// Screen returns a copy of the current screen.
func (c *Console) Screen() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.screen
	if s.Receipt != nil {
		r := *s.Receipt
		s.Receipt = &r
	}
	return s
}

// Rupiah formats an amount the way the screen shows it.
func (c *Console) Rupiah(amount int64) string {
	return c.printer.Sprintf("Rp%d", amount)
}

func (c *Console) WaitReady(ctx context.Context) error {
	return ctx.Err()
}

func (c *Console) Reset(normalFare uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen.Processing = false
	c.screen.Message = "TAP KARTU " + c.Rupiah(int64(normalFare))
	c.screen.CardNumber = 0
	c.screen.NormalFare = normalFare
	c.screen.Receipt = nil
	c.log.Info().Uint32("normal_fare", normalFare).Msg(c.screen.Message)
}

func (c *Console) ProcessingCard(cardNumber uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen.Processing = true
	c.screen.CardNumber = cardNumber
	c.screen.Message = "MEMPROSES KARTU"
	c.log.Info().Uint64("card_number", cardNumber).Msg(c.screen.Message)
}

func (c *Console) SuccessTapInWithDeduct(r domain.Receipt) {
	c.success("TAP IN BERHASIL", r)
}

func (c *Console) SuccessTapOutWithDeduct(r domain.Receipt) {
	c.success("TAP OUT BERHASIL", r)
}

func (c *Console) SuccessTapInWithoutDeduct(r domain.Receipt) {
	c.success("SELAMAT JALAN", r)
}

func (c *Console) SuccessTapOutWithoutDeduct(r domain.Receipt) {
	c.success("TERIMA KASIH", r)
}

func (c *Console) SuccessResetTapIn(r domain.Receipt) {
	c.success("PERJALANAN DIATUR ULANG", r)
}

func (c *Console) success(msg string, r domain.Receipt) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen.Processing = false
	c.screen.Message = msg
	c.screen.Receipt = &r

	ev := c.log.Info().
		Str("fare", c.Rupiah(int64(r.Fare))).
		Str("balance", c.Rupiah(r.Balance)).
		Uint8("tariff", uint8(r.Tariff))
	if r.BaseFare != r.Fare {
		ev = ev.Str("base_fare", c.Rupiah(int64(r.BaseFare)))
	}
	if !r.FreeUntil.IsZero() {
		ev = ev.Time("free_until", r.FreeUntil)
	}
	ev.Msg(msg)
}

func (c *Console) FailedToReadCard(code string) {
	c.failure("GAGAL MEMBACA KARTU "+code, code)
}

func (c *Console) FailedToWriteCard(code string) {
	c.failure("GAGAL MENULIS KARTU "+code, code)
}

func (c *Console) FailedToDeductCard(code string) {
	c.failure("GAGAL MEMOTONG SALDO "+code, code)
}

func (c *Console) failure(msg, code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen.Processing = false
	c.screen.Message = msg
	c.log.Warn().Str("code", code).Msg(msg)
}

func (c *Console) InsufficientBalance(balance int64) {
	c.notice("SALDO TIDAK CUKUP " + c.Rupiah(balance))
}

func (c *Console) InsufficientMinimumBalance(balance int64) {
	c.notice("SALDO MINIMUM TIDAK CUKUP " + c.Rupiah(balance))
}

func (c *Console) BlockingTime() {
	c.notice("TUNGGU 1 MENIT")
}

func (c *Console) FreeServiceExpired(expiry time.Time) {
	c.notice("LAYANAN GRATIS BERAKHIR " + expiry.Format("02-01-2006"))
}

func (c *Console) FareNotFound() {
	c.notice("TARIF TIDAK DITEMUKAN")
}

func (c *Console) notice(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen.Processing = false
	c.screen.Message = msg
	c.log.Warn().Msg(msg)
}

// UpdateCounter refreshes the counter panel. It does not touch the processing state.
func (c *Console) UpdateCounter(snapshot domain.CounterSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen.Counters = snapshot
	c.log.Debug().
		Uint32("sn", snapshot.SN).
		Uint32("tap_in", snapshot.Total.TotalTapIn()).
		Uint32("tap_out", snapshot.Total.TapOut).
		Uint32("pending", snapshot.Total.Pending).
		Msg("counter updated")
}
