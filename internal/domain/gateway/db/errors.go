package db

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ErrDuplicatedKey is returned when a write violates a unique constraint.
var ErrDuplicatedKey = errors.New("duplicated key")

const pqUniqueViolation = pq.ErrorCode("23505")

// translate maps driver specific uniqueness violations to ErrDuplicatedKey.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Join(ErrDuplicatedKey, err)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return errors.Join(ErrDuplicatedKey, err)
	}
	return err
}
