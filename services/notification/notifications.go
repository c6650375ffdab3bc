package notification

import (
	"fmt"

	"github.com/PrimeHarvest/PrimeHarvest-Backend/services/monitoring/logging"
	"github.com/shopspring/decimal"
)

// NotificationService sends transactional emails around workflow
// decisions. Sends are best-effort: a delivery failure is logged and
// never unwinds the workflow that triggered it.
type NotificationService struct {
	mailer *Plunk
	logger *logging.Logger
}

func NewNotificationService(mailer *Plunk, logger *logging.Logger) *NotificationService {
	return &NotificationService{
		mailer: mailer,
		logger: logger,
	}
}

func (n *NotificationService) send(email, subject, body string) {
	if n.mailer == nil || email == "" {
		return
	}
	if err := n.mailer.SendEmail(EmailRequest{
		To:      email,
		Subject: subject,
		Body:    body,
	}); err != nil {
		n.logger.Errorf("send notification email: %v", err)
	}
}

func (n *NotificationService) WithdrawalSubmitted(email string, amount decimal.Decimal) {
	n.send(email, "Withdrawal received",
		fmt.Sprintf("Your withdrawal request of $%s is under review.", amount.StringFixed(2)))
}

func (n *NotificationService) WithdrawalApproved(email string, amount decimal.Decimal) {
	n.send(email, "Withdrawal approved",
		fmt.Sprintf("Your withdrawal of $%s has been approved and is on its way.", amount.StringFixed(2)))
}

func (n *NotificationService) WithdrawalRejected(email string, amount decimal.Decimal) {
	n.send(email, "Withdrawal rejected",
		fmt.Sprintf("Your withdrawal of $%s was rejected. The funds have been returned to your wallet.", amount.StringFixed(2)))
}

func (n *NotificationService) LoanDecision(email string, approved bool) {
	if approved {
		n.send(email, "Loan approved", "Your loan application has been approved and the funds are in your wallet.")
		return
	}
	n.send(email, "Loan application update", "Your loan application was not approved at this time.")
}
