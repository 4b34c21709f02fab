package validation

// User-facing messages. Clients and tests match on them literally.
const (
	MsgTitleRequired   = "A radiant title is required."
	MsgTitleTooLong    = "Titles must be 140 characters or fewer to stay memorable."
	MsgSummaryTooLong  = "Summaries must be 280 characters or fewer."
	MsgMediaUrlScheme  = "Media URLs must start with http:// or https://"
	MsgCommentRequired = "Comments need thoughtful words."
	MsgCommentTooLong  = "Comments must be 2000 characters or fewer."
	MsgVoteDirection   = `Vote direction must be "up" or "down".`
	MsgMalformedBody   = "Request body must be valid JSON."
	MsgPayloadTooLarge = "Request body is too large."
)
