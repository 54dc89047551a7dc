package billing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("creates client successfully", func(t *testing.T) {
		client, err := NewClient("20123456789", "Acme SA")

		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "20123456789", client.RUC)
		assert.Equal(t, "Acme SA", client.LegalName)
		assert.Empty(t, client.Address)
		assert.Empty(t, client.Email)
		assert.Len(t, client.GetDomainEvents(), 1)
	})

	t.Run("fails with empty ruc", func(t *testing.T) {
		client, err := NewClient("", "Acme SA")

		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "RUC cannot be empty")
	})

	t.Run("fails with short ruc", func(t *testing.T) {
		client, err := NewClient("2012345", "Acme SA")

		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "11 digits")
	})

	t.Run("fails with non-numeric ruc", func(t *testing.T) {
		client, err := NewClient("2012345678X", "Acme SA")

		assert.Error(t, err)
		assert.Nil(t, client)
	})

	t.Run("fails with empty legal name", func(t *testing.T) {
		client, err := NewClient("20123456789", "")

		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with oversized legal name", func(t *testing.T) {
		client, err := NewClient("20123456789", strings.Repeat("a", 201))

		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestClient_SetContact(t *testing.T) {
	newTestClient := func(t *testing.T) *Client {
		client, err := NewClient("20123456789", "Acme SA")
		require.NoError(t, err)
		return client
	}

	t.Run("sets address and email", func(t *testing.T) {
		client := newTestClient(t)

		err := client.SetContact("Av. Principal 123, Lima", "facturas@acme.pe")

		require.NoError(t, err)
		assert.Equal(t, "Av. Principal 123, Lima", client.Address)
		assert.Equal(t, "facturas@acme.pe", client.Email)
	})

	t.Run("allows empty optional fields", func(t *testing.T) {
		client := newTestClient(t)

		err := client.SetContact("", "")

		require.NoError(t, err)
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		client := newTestClient(t)

		err := client.SetContact("", "not-an-email")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email")
	})

	t.Run("fails with oversized address", func(t *testing.T) {
		client := newTestClient(t)

		err := client.SetContact(strings.Repeat("x", 201), "")

		assert.Error(t, err)
	})
}
