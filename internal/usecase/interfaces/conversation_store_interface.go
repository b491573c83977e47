package interfaces

import "pix_storefront/internal/domain/entities"

// IConversationStore owns the wizard state of every chat.
//
// Update runs fn with exclusive access to the chat's state; calls for the same chat
// never overlap, calls for different chats never wait on each other.
type IConversationStore interface {
	Update(chatID int64, fn func(state *entities.ConversationState))
	Get(chatID int64) (entities.ConversationState, bool)
}
