package repository

import (
	"errors"

	"gorm.io/gorm"
)

// notFound swaps gorm's missing-row error for the domain error.
func notFound(err, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return err
}
