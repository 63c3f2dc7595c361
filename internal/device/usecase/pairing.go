package usecase

import (
	"fmt"

	"safenest-backend/internal/device/dto"
	"safenest-backend/internal/device/repository"

	"go.uber.org/zap"
)

// Claim exchanges a device code and pairing secret for a signed device token.
// Unknown codes and wrong secrets are indistinguishable to the caller.
func (u *deviceUsecase) Claim(req *dto.ClaimRequest) (*dto.ClaimResponse, error) {
	device, err := u.deviceRepo.FindByCode(req.DeviceCode)
	if err != nil {
		return nil, fmt.Errorf("device lookup: %w", err)
	}
	if device == nil {
		return nil, ErrInvalidPairing
	}

	if !repository.CheckPairingSecret(req.PairingSecret, device.PairingSecretHash) {
		u.logger.Warn("pairing secret mismatch", zap.String("device_id", device.ID))
		return nil, ErrInvalidPairing
	}

	token, err := u.tokens.Mint(device.DeviceCode)
	if err != nil {
		return nil, fmt.Errorf("mint device token: %w", err)
	}

	if err := u.deviceRepo.TouchClaimed(device.ID); err != nil {
		u.logger.Warn("failed to record claim time",
			zap.String("device_id", device.ID), zap.Error(err))
	}

	u.logger.Info("device claimed", zap.String("device_id", device.ID))
	return &dto.ClaimResponse{
		Token:     token,
		ExpiresIn: int64(u.tokens.Expiry().Seconds()),
	}, nil
}
