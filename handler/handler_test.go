package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"birthday-timeline-api/timeline"
	"birthday-timeline-api/usecase"
	"birthday-timeline-api/zodiac"
)

func TestErrorStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{zodiac.ErrInvalidDate, fiber.StatusBadRequest},
		{timeline.ErrSelfRelationship, fiber.StatusBadRequest},
		{timeline.ErrUnknownUser, fiber.StatusBadRequest},
		{timeline.ErrInvalidRelationType, fiber.StatusBadRequest},
		{usecase.ErrPhoneTaken, fiber.StatusConflict},
		{gorm.ErrRecordNotFound, fiber.StatusNotFound},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, c := range cases {
		assert.Equal(t, c.status, errorStatus(c.err), c.err.Error())
	}
}

// Wrapped errors keep their status so usecases can add context freely.
func TestErrorStatusUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", usecase.ErrPhoneTaken)
	assert.Equal(t, fiber.StatusConflict, errorStatus(wrapped))
}
