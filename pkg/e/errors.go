package e

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrNotImplemented  = errors.New("not implemented")
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrNoLessonContent = errors.New("lesson has no streamable content")
)
