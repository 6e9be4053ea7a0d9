// FILE: internal/dto/telegram_dto.go
package dto

// Update is the inbound Bot API webhook payload. Only the fields the
// adventure consumes are declared.
type Update struct {
	UpdateID      int            `json:"update_id"`
	Message       *Message       `json:"message,omitempty"`
	EditedMessage *Message       `json:"edited_message,omitempty"`
	CallbackQuery *CallbackQuery `json:"callback_query,omitempty"`
}

type Message struct {
	MessageID int       `json:"message_id"`
	Chat      Chat      `json:"chat"`
	Text      string    `json:"text,omitempty"`
	Location  *Location `json:"location,omitempty"`
	Date      int64     `json:"date"`
	EditDate  int64     `json:"edit_date,omitempty"`
}

type Chat struct {
	ID int64 `json:"id"`
}

// Location carries a position ping. LivePeriod > 0 marks a live-location
// share; one-shot pins have no live period.
type Location struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	LivePeriod int     `json:"live_period,omitempty"`
}

type CallbackQuery struct {
	ID      string   `json:"id"`
	Data    string   `json:"data"`
	Message *Message `json:"message,omitempty"`
}
