package razorpay

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/jayeshsingh-11/creative-cascade/internal/config"
)

// Module exposes the payment gateway implementation to the fx graph.
var Module = fx.Provide(newGateway)

type gatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newGateway(p gatewayParams) Gateway {
	return NewClient(p.Config.RazorpayKeyID, p.Config.RazorpayKeySecret, p.Logger)
}
