package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/tillpoint/ledger"
	"github.com/ray-remotestate/tillpoint/models"
	"github.com/ray-remotestate/tillpoint/utils"
)

// LogSink is the presentation sink used in server mode. The browser
// front end renders the order from the HTTP responses; the sink mirrors
// state changes and receipts into the service log.
type LogSink struct {
	Log *logrus.Logger
}

func (s *LogSink) OnStateChanged(snapshot models.OrderSnapshot) {
	s.Log.WithFields(logrus.Fields{
		"lines":    len(snapshot.Lines),
		"table":    snapshot.TableNumber,
		"discount": snapshot.DiscountPercent,
		"total":    utils.FormatCurrency(snapshot.Totals.Total),
	}).Debug("order changed")
}

func (s *LogSink) OnValidationWarning(message string) {
	s.Log.Warn(message)
}

func (s *LogSink) OnCheckoutComplete(summary models.OrderSummary) {
	s.Log.WithFields(logrus.Fields{
		"receipt": summary.ReceiptID.String(),
		"table":   summary.TableNumber,
		"total":   utils.FormatCurrency(summary.Total),
		"payment": summary.PaymentMethod,
	}).Info("checkout complete")
	s.Log.Info("\n" + ledger.FormatSummary(summary))
}

// OnConfirmRequired always grants: over HTTP the confirmation already
// happened on the client, enforced by the ?confirm=true requirement
// before Clear is ever called.
func (s *LogSink) OnConfirmRequired(prompt string) bool {
	return true
}
