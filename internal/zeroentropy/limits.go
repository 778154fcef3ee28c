package zeroentropy

// Documented maxima of the remote API. The adapter rejects requests above
// these bounds before dispatch instead of letting the remote side fail
// (or silently clamping).
const (
	MaxTopDocumentsK = 2048
	MaxTopPagesK     = 1024
	MaxTopSnippetsK  = 128
	MaxDocumentList  = 1024
)
