package model

// CheckRequest carries a password to analyze. The password may be
// empty; an empty value is a valid input that yields a very-weak
// report rather than a binding error. The cap only guards against
// abusive payloads.
type CheckRequest struct {
	Password string `json:"password" binding:"max=1024"`
}

// GenerateRequest configures password generation. Length is clamped
// server-side to the supported range instead of being rejected, and
// ExcludeSimilar is a pointer so an absent field keeps the default of
// true.
type GenerateRequest struct {
	Length         int   `json:"length"`
	ExcludeSimilar *bool `json:"exclude_similar"`
	IncludeReport  bool  `json:"include_report"`
}

// GenerateResponse returns the generated password, its final length,
// and optionally the analysis of the password itself.
type GenerateResponse struct {
	Password string          `json:"password"`
	Length   int             `json:"length"`
	Report   *StrengthReport `json:"report,omitempty"`
}
