package service

import (
	"errors"

	"planadmin/internal/admin/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// mapDuplicate translates a unique-index rejection raised by the store after
// the pre-check passed, which happens when a concurrent create wins the race.
func mapDuplicate(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return ErrDuplicateName
	}
	return err
}

// mapStoreError translates store errors on mutations of a record that was
// fetched moments earlier and may have vanished or collided since.
func mapStoreError(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return ErrDuplicateName
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
