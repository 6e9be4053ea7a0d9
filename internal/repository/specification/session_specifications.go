package specification

import "gorm.io/gorm"

type ByPlayerID struct {
	PlayerID int64
}

func (s ByPlayerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("player_id = ?", s.PlayerID)
}

// NameInUse matches confirmed and still-unconfirmed names alike, so two
// players cannot hold the same name while one confirmation is in flight.
type NameInUse struct {
	Name string
}

func (s NameInUse) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("display_name = ? OR pending_display_name = ?", s.Name, s.Name)
}
