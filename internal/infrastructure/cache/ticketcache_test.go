package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedTicket struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

func TestTicketCache_SetAndGetTicket(t *testing.T) {
	client, _ := setupTestRedis(t)
	c := NewTicketCache(client, 1800, 3600, 300)
	ctx := context.Background()

	require.NoError(t, c.SetTicket(ctx, 42, cachedTicket{ID: 42, Title: "Printer on fire"}))

	var got cachedTicket
	found, err := c.GetTicket(ctx, 42, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint(42), got.ID)
	assert.Equal(t, "Printer on fire", got.Title)
}

func TestTicketCache_GetTicket_Miss(t *testing.T) {
	client, _ := setupTestRedis(t)
	c := NewTicketCache(client, 1800, 3600, 300)

	var got cachedTicket
	found, err := c.GetTicket(context.Background(), 404, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTicketCache_TTLs(t *testing.T) {
	client, mr := setupTestRedis(t)
	c := NewTicketCache(client, 1800, 3600, 300)
	ctx := context.Background()

	require.NoError(t, c.SetTicket(ctx, 1, cachedTicket{ID: 1}))
	require.NoError(t, c.SetTicketOnCreate(ctx, 2, cachedTicket{ID: 2}))
	require.NoError(t, c.SetAllTickets(ctx, []cachedTicket{{ID: 1}}))

	assert.Equal(t, 1800*time.Second, mr.TTL("ticket:1"))
	assert.Equal(t, 3600*time.Second, mr.TTL("ticket:2"))
	assert.Equal(t, 300*time.Second, mr.TTL("all_tickets"))
}

func TestTicketCache_InvalidateTicket(t *testing.T) {
	client, mr := setupTestRedis(t)
	c := NewTicketCache(client, 1800, 3600, 300)
	ctx := context.Background()

	require.NoError(t, c.SetTicket(ctx, 42, cachedTicket{ID: 42}))
	require.NoError(t, c.SetAllTickets(ctx, []cachedTicket{{ID: 42}}))

	require.NoError(t, c.InvalidateTicket(ctx, 42))

	assert.False(t, mr.Exists("ticket:42"))
	// The list entry is never invalidated eagerly; it ages out by TTL.
	assert.True(t, mr.Exists("all_tickets"))
}

func TestTicketCache_InvalidateTicket_MissingKey(t *testing.T) {
	client, _ := setupTestRedis(t)
	c := NewTicketCache(client, 1800, 3600, 300)

	assert.NoError(t, c.InvalidateTicket(context.Background(), 404))
}

func TestTicketCache_CorruptEntryDropped(t *testing.T) {
	client, mr := setupTestRedis(t)
	c := NewTicketCache(client, 1800, 3600, 300)

	require.NoError(t, mr.Set("ticket:42", "{not json"))

	var got cachedTicket
	found, err := c.GetTicket(context.Background(), 42, &got)
	require.NoError(t, err)
	assert.False(t, found)

	// The corrupt entry was deleted so the next read repopulates it.
	assert.False(t, mr.Exists("ticket:42"))
}

func TestTicketCache_GetAllTickets(t *testing.T) {
	client, _ := setupTestRedis(t)
	c := NewTicketCache(client, 1800, 3600, 300)
	ctx := context.Background()

	require.NoError(t, c.SetAllTickets(ctx, []cachedTicket{{ID: 2}, {ID: 1}}))

	var got []cachedTicket
	found, err := c.GetAllTickets(ctx, &got)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, got, 2)
	assert.Equal(t, uint(2), got[0].ID)
}

func TestTicketCache_EntryExpires(t *testing.T) {
	client, mr := setupTestRedis(t)
	c := NewTicketCache(client, 1800, 3600, 300)
	ctx := context.Background()

	require.NoError(t, c.SetAllTickets(ctx, []cachedTicket{{ID: 1}}))

	mr.FastForward(301 * time.Second)

	var got []cachedTicket
	found, err := c.GetAllTickets(ctx, &got)
	require.NoError(t, err)
	assert.False(t, found)
}
