package notte

import (
	"errors"
	"io/fs"

	"github.com/Gautam-Hegde/notte-go/pkg/apperrors"
	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from the given files into the process
// environment without overriding ones already set. With no paths it reads
// ./.env and treats a missing file as success.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return apperrors.InvalidRequestError("unable to load .env").Err(err).SetExpandError(true)
		}
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return apperrors.InvalidRequestError("unable to load env file").Err(err).SetExpandError(true)
	}
	return nil
}
