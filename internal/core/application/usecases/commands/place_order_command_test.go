package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustActor(t *testing.T, id kernel.UUID, isAdministrator bool) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, isAdministrator)
	require.NoError(t, err)
	return actor
}

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	actor := mustActor(t, actorID, false)

	cmd, err := commands.NewPlaceOrderCommand(orderID, actor)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, actorID, cmd.Actor().ID())
}

func TestNewPlaceOrderCommand_InvalidOrderID(t *testing.T) {
	actor := mustActor(t, kernel.NewUUID(), false)
	_, err := commands.NewPlaceOrderCommand(kernel.UUID{}, actor)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewPlaceOrderCommand_NotConstructedActor(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.Actor{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrActorIsNotConstructed)
}

func TestPlaceOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.PlaceOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
}
