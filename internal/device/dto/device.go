package dto

// PostInstallInput is the normalized postinstall request. DeviceCode comes
// from the verified token, never from the request itself.
type PostInstallInput struct {
	DeviceCode string
	ChildID    string
	AppIDs     []string
	WebFilters map[string]any
}

type ClaimRequest struct {
	DeviceCode    string `json:"device_code" binding:"required"`
	PairingSecret string `json:"pairing_secret" binding:"required"`
}

type ClaimResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"` // seconds
}

type CompleteJobRequest struct {
	Status string `json:"status" binding:"required"`
}
