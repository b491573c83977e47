package entities

// Button is one inline keyboard button.
type Button struct {
	Text string
	Data string
}

// Keyboard is a list of button rows.
type Keyboard [][]Button

// Photo is either a remote URL or an in-memory PNG.
type Photo struct {
	URL  string
	PNG  []byte
	Name string
}

// OutgoingMessage is everything the storefront ever sends to a chat.
type OutgoingMessage struct {
	ChatID   int64
	Text     string
	Markdown bool
	Keyboard Keyboard
	Photo    *Photo
}

// CallbackEvent is a button press.
type CallbackEvent struct {
	ID        string
	ChatID    int64
	MessageID int
	Data      string
	UserName  string
}

// CommandEvent is a "/command args" message.
type CommandEvent struct {
	ChatID   int64
	Command  string
	Args     string
	UserName string
}

// TextEvent is any other text message.
type TextEvent struct {
	ChatID   int64
	Text     string
	UserName string
}
