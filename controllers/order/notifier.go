package orderControllers

import (
	"go.uber.org/zap"

	"github.com/mookistore/vapeshop-api/models"
)

// OrderNotifier receives order confirmations for customers who left an email
// address. Implementations must be best-effort: a failure here never fails the
// order itself.
type OrderNotifier interface {
	OrderPlaced(order *models.Order)
}

// LogNotifier records confirmations in the application log. It stands in
// until a real mail sender is wired up.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) OrderPlaced(order *models.Order) {
	n.log.Info("order confirmation queued",
		zap.String("order_id", order.ID),
		zap.String("email", order.Email),
		zap.Float64("total", order.Total))
}
