package game

import (
	"crypto/rand"

	"github.com/monopay/monopay-api/internal/domain"
	"go.uber.org/zap"
)

// codeAlphabet excludes 0, 1, I and O so codes survive being read aloud
// across a table.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// newCode generates a random game code from the alphabet
func newCode() (string, error) {
	buf := make([]byte, domain.GameCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = codeAlphabet[int(buf[i])%len(codeAlphabet)]
	}
	return string(buf), nil
}

// allocateCode generates a code not held by any non-finished game. The space
// is 32^6 codes, so collisions are rare and the retry loop stays unbounded.
func (uc *GameUseCase) allocateCode() (string, error) {
	for {
		code, err := newCode()
		if err != nil {
			uc.logger.Error("Failed to generate game code", zap.Error(err))
			return "", domain.NewInternalError("Failed to generate game code", err)
		}

		inUse, err := uc.gameRepo.CodeInUse(code)
		if err != nil {
			uc.logger.Error("Failed to check game code",
				zap.String("code", code),
				zap.Error(err))
			return "", domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to check game code", 500, err)
		}
		if !inUse {
			return code, nil
		}

		uc.logger.Debug("Game code collision, retrying",
			zap.String("code", code))
	}
}
