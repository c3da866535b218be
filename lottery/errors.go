package lottery

import "github.com/pkg/errors"

var (
	ErrInvalidAmount    = errors.New("invalid bet amount")
	ErrInvalidChallenge = errors.New("challenge must be exactly two hex characters")
	ErrNotFound         = errors.New("bet not found")
	ErrTransferFailure  = errors.New("value transfer failed")
	ErrInsufficientPot  = errors.New("insufficient pot")

	// ErrUnavailable is returned by a BlockSource for blocks whose hash can no
	// longer be retrieved. The engine turns it into a refund.
	ErrUnavailable = errors.New("block hash unavailable")
)
