package dictfile

import "errors"

// Errors for reading binary dictionaries.
var (
	ErrInvalidMagic   = errors.New("dictfile: invalid magic number")
	ErrInvalidVersion = errors.New("dictfile: unsupported version")
	ErrChecksumFailed = errors.New("dictfile: checksum verification failed")
	ErrTruncatedFile  = errors.New("dictfile: dictionary file is truncated")
	ErrCorrupted      = errors.New("dictfile: dictionary data is corrupted")
)
