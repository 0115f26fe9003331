package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// LoadENV loads variables from a .env file. A missing file is not an
// error; deployed environments set variables directly.
func LoadENV() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
