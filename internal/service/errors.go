package service

import "errors"

var (
	ErrEmptyTokenSecret = errors.New("token secret is empty")
	ErrEmptySubject     = errors.New("token subject is empty")
	ErrTokenSigning     = errors.New("token signing failed")
	ErrPasswordHashing  = errors.New("password hashing failed")
)
