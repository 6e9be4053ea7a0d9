// FILE: internal/dto/position_dto.go
package dto

// PositionPing is the message published on the internal position topic for
// every inbound location update. EditedAt is the unix timestamp of the last
// client-side edit, used for the staleness check.
type PositionPing struct {
	PlayerID  int64   `json:"player_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	IsLive    bool    `json:"is_live"`
	EditedAt  int64   `json:"edited_at"`
}
