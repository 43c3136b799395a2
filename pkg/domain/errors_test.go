package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/drossy/stars/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestConflictError(t *testing.T) {
	err := fmt.Errorf("setup: %w", &domain.ConflictError{Name: "mainMenu"})
	assert.True(t, domain.IsConflict(err))
	assert.Contains(t, err.Error(), `"mainMenu"`)
	assert.False(t, domain.IsConflict(domain.ErrStateNotFound))
}

func TestLifecycleError(t *testing.T) {
	cause := errors.New("asset missing")

	load := &domain.LifecycleError{State: "inGame", Phase: domain.PhaseLoad, Err: cause}
	assert.ErrorIs(t, load, cause)
	assert.ErrorIs(t, load, domain.ErrNoActiveState)
	assert.Equal(t, `game state "inGame" load failed: asset missing`, load.Error())

	unload := &domain.LifecycleError{State: "inGame", Phase: domain.PhaseUnload, Err: cause}
	assert.ErrorIs(t, unload, cause)
	assert.NotErrorIs(t, unload, domain.ErrNoActiveState)
}
