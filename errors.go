package xaction

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTag is returned when claiming an empty tag.
	ErrEmptyTag = errors.New("xaction: tag must not be empty")
	// ErrDuplicate matches every ErrDuplicateTag via errors.Is.
	ErrDuplicate = errors.New("xaction: duplicate tag")
	// ErrRegistryFull is returned once Config.MaxTags tags are claimed.
	ErrRegistryFull = errors.New("xaction: registry is full")
	// ErrInvalidConfig wraps every Config.Validate failure.
	ErrInvalidConfig = errors.New("xaction: invalid config")
)

// ErrDuplicateTag reports a tag that is already claimed in a strict registry.
type ErrDuplicateTag struct {
	Tag   string
	Shape Shape
}

func (e ErrDuplicateTag) Error() string {
	return fmt.Sprintf("xaction: tag %q already claimed (%s)", e.Tag, e.Shape)
}

func (e ErrDuplicateTag) Is(target error) bool { return target == ErrDuplicate }
