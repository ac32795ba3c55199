package models

import (
	"errors"
)

var (
	ErrNoRecord               = errors.New("models: no matching record found")
	ErrInvalidCredentials     = errors.New("models: invalid credentials")
	ErrDuplicateEmail         = errors.New("models: duplicate email")
	ErrUserNotFound           = errors.New("models: user not found")
	ErrInvalidPassword        = errors.New("models: invalid password")
	ErrForbidden              = errors.New("models: forbidden")
	ErrMissionNotFound        = errors.New("mission not found")
	ErrPostulationNotFound    = errors.New("postulation not found")
	ErrAlreadyApplied         = errors.New("already applied to this mission")
	ErrNoAcceptedPostulation  = errors.New("no accepted postulation for this mission")
	ErrAlreadyRated           = errors.New("mission already rated")
	ErrAlreadyFollowing       = errors.New("already following this user")
	ErrPostNotFound           = errors.New("post not found")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrStatusConflict         = errors.New("status changed concurrently")
	ErrMissionAlreadyFinished = errors.New("mission already finished")
)
