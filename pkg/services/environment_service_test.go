package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/ExileLine/exile-ai-test-platform-server/test/database"
)

func TestEnvironmentSingleDefault(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	svc := NewEnvironmentService(client)
	ctx := context.Background()

	a, err := svc.Create(ctx, EnvironmentInput{Name: "a", IsDefault: true})
	require.NoError(t, err)
	b, err := svc.Create(ctx, EnvironmentInput{Name: "b", IsDefault: true})
	require.NoError(t, err)

	assert.False(t, client.Environment.GetX(ctx, a.ID).IsDefault)
	assert.True(t, client.Environment.GetX(ctx, b.ID).IsDefault)
}

func TestEnvironmentDeleteHidesFromReads(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	svc := NewEnvironmentService(client)
	ctx := context.Background()

	env, err := svc.Create(ctx, EnvironmentInput{Name: "a", Variables: map[string]any{"k": "v"}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, env.ID, 3))

	_, err = svc.Get(ctx, env.ID)
	require.ErrorIs(t, err, ErrNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEnvironmentValidation(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	svc := NewEnvironmentService(client)

	_, err := svc.Create(context.Background(), EnvironmentInput{})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.True(t, IsValidationError(err))
}
