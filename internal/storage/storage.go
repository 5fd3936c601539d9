package storage

type Storage interface {
	// mint attempt journal
	RecordMintAttempt(attempt *MintAttempt) error
	UpdateMintAttempt(attempt *MintAttempt) error
	GetMintAttempts(address string) ([]*MintAttempt, error)
	GetPendingMintAttempts() ([]*MintAttempt, error)

	// supply snapshots
	SaveSupplySnapshots(snapshots []*SupplySnapshot) error
	LatestSupplySnapshots() ([]*SupplySnapshot, error)
}

type AttemptStatus = string

const (
	AttemptSubmitting          AttemptStatus = "Submitting"
	AttemptPendingConfirmation AttemptStatus = "PendingConfirmation"
	AttemptConfirmed           AttemptStatus = "Confirmed"
	AttemptFailed              AttemptStatus = "Failed"
)
