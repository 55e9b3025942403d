package usecase

import (
	"time"

	"github.com/jayeshsingh-11/creative-cascade/internal/invoice"
)

// Test hooks: the external test package cannot reach the unexported
// clock, invoice-number, and PDF-render fields directly.

func SetNow(u *SettlementUseCase, fn func() time.Time) { u.now = fn }

func SetNumber(u *SettlementUseCase, fn invoice.NumberGenerator) { u.number = fn }

func SetRenderPDF(u *SettlementUseCase, fn func(invoice.Data) ([]byte, error)) { u.renderPDF = fn }
