package chain

import "errors"

var (
	// ErrGasEstimation marks a failed gas estimation, usually a call that
	// would revert. It always propagates to the caller of Build.
	ErrGasEstimation = errors.New("gas estimation failed")

	// ErrEncoding marks a signed transaction that did not yield raw bytes.
	ErrEncoding = errors.New("could not extract raw transaction bytes from signed transaction")

	// ErrBroadcast marks a rejected or failed raw transaction broadcast.
	ErrBroadcast = errors.New("transaction broadcast failed")
)
