package errs

import "errors"

var (
	// ErrUnknownNotificationKind indicates a caller passed an unsupported notification kind.
	ErrUnknownNotificationKind = errors.New("unknown notification kind")
	// ErrBookingNotFound indicates that a booking was not found.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrFeedbackNotFound indicates that a feedback entry was not found.
	ErrFeedbackNotFound = errors.New("feedback not found")
	// ErrCategoryNotFound indicates that a gallery category was not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrPhotoNotFound indicates that a feedback photo was not found.
	ErrPhotoNotFound = errors.New("photo not found")
	// ErrInvalidCredentials indicates a failed admin login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSessionNotFound indicates an expired or unknown admin session.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidDates indicates missing or unparseable booking dates.
	ErrInvalidDates = errors.New("invalid dates")
	// ErrCheckOutBeforeCheckIn indicates a check-out date not after check-in.
	ErrCheckOutBeforeCheckIn = errors.New("check-out date must be after check-in date")
	// ErrInvalidRating indicates a feedback rating outside 0-10.
	ErrInvalidRating = errors.New("rating must be between 0 and 10")
	// ErrInvalidFileType indicates an upload with a disallowed file extension.
	ErrInvalidFileType = errors.New("file type not allowed")
	// ErrInvalidReplyType indicates an unsupported quick-reply type.
	ErrInvalidReplyType = errors.New("invalid reply type")
	// ErrNotImplemented indicates that the functionality is pending implementation.
	ErrNotImplemented = errors.New("not implemented")
)
