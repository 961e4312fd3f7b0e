package errs

import "errors"

var (
	ErrEncoding            = errors.New("payload encoding error")
	ErrInvalidBatch        = errors.New("invalid question batch")
	ErrEmptyBatch          = errors.New("batch has no questions")
	ErrCorrectOptionCount  = errors.New("question must have exactly one correct option")
	ErrInvalidFileType     = errors.New("invalid image type (allowed: .jpg, .jpeg, .png, .webp)")
	ErrNotSignedIn         = errors.New("no user signed in")
	ErrInvalidToken        = errors.New("invalid identity token")
	ErrOperationNotSettled = errors.New("long operation did not settle")
	ErrScopeClosed         = errors.New("scope is closed")

	ErrJobNotFound      = errors.New("batch job not found")
	ErrMaxJobsReached   = errors.New("server is busy (max active batch jobs)")
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidReference = errors.New("referenced resource does not exist")
)
