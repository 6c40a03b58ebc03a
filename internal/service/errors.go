package service

import "errors"

var (
	ErrOperationInProgress = errors.New("another authentication operation is in progress")
	ErrSignIn              = errors.New("sign in failed")
	ErrRemoteSignOut       = errors.New("remote sign out failed")
	ErrInitialize          = errors.New("auth client initialization failed")
)
