package postgres

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err is a duplicate-key error.
// The schema carries three unique constraints the repositories translate into
// domain errors: users.login, vehicles.license_plate and the
// delivery_points (delivery_id, sequence) pair.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// isForeignKeyConstraintViolation reports whether err is a foreign-key
// violation. Deliveries reference users (courier, creator) and vehicles;
// delivery points and their product lines cascade from the delivery, so a
// violation here means the payload named a row that no longer exists.
func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
