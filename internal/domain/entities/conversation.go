package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// WizardStep is the position of a conversation inside the order wizard.
//
// StepIntro covers both rendering the catalog and waiting for the category press;
// the zero value StepDone means "no wizard running".
type WizardStep int

const (
	StepDone WizardStep = iota
	StepIntro
	StepAwaitingQuantity
	StepAwaitingPostPaymentChoice
)

func (s WizardStep) String() string {
	switch s {
	case StepDone:
		return "done"
	case StepIntro:
		return "intro"
	case StepAwaitingQuantity:
		return "awaiting_quantity"
	case StepAwaitingPostPaymentChoice:
		return "awaiting_post_payment_choice"
	default:
		return "unknown"
	}
}

// ConversationState is the wizard record of one chat.
type ConversationState struct {
	ChatID      int64
	Step        WizardStep
	CategoryID  string
	Tier        string
	Price       decimal.NullDecimal
	LastOrderID string

	// KeyboardMessageID is the message holding the buttons the wizard currently
	// accepts presses from. Presses on older keyboards are stale.
	KeyboardMessageID int

	UpdatedAt time.Time
}

func (s *ConversationState) Active() bool {
	return s.Step != StepDone
}

// ClearSelection drops category, tier and price but keeps the last order id.
func (s *ConversationState) ClearSelection() {
	s.CategoryID = ""
	s.Tier = ""
	s.Price = decimal.NullDecimal{}
}

// Reset discards everything but the chat id and leaves the wizard.
func (s *ConversationState) Reset() {
	*s = ConversationState{ChatID: s.ChatID}
}
