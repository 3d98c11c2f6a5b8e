package storage

import "errors"

var (
	ErrBucketAlreadyOwned = errors.New("bucket already exists and is owned by you")
	ErrBucketNameTaken    = errors.New("bucket name is already in use by another account")
	ErrEmptyBucketName    = errors.New("bucket name is required")
)
