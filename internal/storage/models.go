package storage

// MintAttempt is one journal row per mint attempt lifecycle.
type MintAttempt struct {
	ID           int64         `gorm:"primaryKey"`
	Address      string        `gorm:"index:idx_attempt_address;not null"`
	ItemID       uint64        `gorm:"not null"`
	TxHash       string        `gorm:"index:idx_attempt_tx_hash"`
	Status       AttemptStatus `gorm:"not null"`
	ErrorMessage string        `gorm:"default:''"`
	UnixTime     int64         `gorm:"not null"`
}

// SupplySnapshot mirrors the last fetched on-chain counters for one item.
type SupplySnapshot struct {
	ItemID        uint64 `gorm:"primaryKey"`
	CurrentSupply uint64 `gorm:"default:0"`
	MaxSupply     uint64 `gorm:"default:0"`
	Active        bool   `gorm:"default:false"`
	TakenUnixTime int64  `gorm:"not null"`
}
