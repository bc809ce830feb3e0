package domain

import "errors"

var (
	ErrSendingReplyFailed = errors.New("failed to send reply")
	ErrMissingArgument    = errors.New("missing argument")
	ErrNotBound           = errors.New("no last.fm username bound")
	ErrUnknownUser        = errors.New("unknown last.fm user")
	ErrNoTracks           = errors.New("no tracks returned")
	ErrLocationNotFound   = errors.New("location not found")
)

// PlaceholderArtwork is shown when Last.fm has no cover image for an album.
const PlaceholderArtwork = "https://i.ibb.co/wLh5Gsc/image.png"
