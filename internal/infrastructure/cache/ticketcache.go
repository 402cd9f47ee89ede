package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	ticketKeyPrefix = "ticket:"
	ticketListKey   = "all_tickets"
)

// TicketCache is a read-through JSON cache for ticket detail and list
// payloads. Entries expire by TTL; writes invalidate the detail key and
// repopulate it, while the list key is never invalidated eagerly and simply
// ages out.
type TicketCache struct {
	client    *redis.Client
	readTTL   time.Duration
	createTTL time.Duration
	listTTL   time.Duration
}

// NewTicketCache creates a new TicketCache instance
func NewTicketCache(client *redis.Client, readTTLSeconds, createTTLSeconds, listTTLSeconds int) *TicketCache {
	return &TicketCache{
		client:    client,
		readTTL:   time.Duration(readTTLSeconds) * time.Second,
		createTTL: time.Duration(createTTLSeconds) * time.Second,
		listTTL:   time.Duration(listTTLSeconds) * time.Second,
	}
}

func ticketKey(ticketID uint) string {
	return ticketKeyPrefix + strconv.FormatUint(uint64(ticketID), 10)
}

// GetTicket loads a cached ticket payload into dest. The bool reports
// whether the entry was present; corrupt entries are dropped and reported
// as a miss.
func (c *TicketCache) GetTicket(ctx context.Context, ticketID uint, dest any) (bool, error) {
	return c.get(ctx, ticketKey(ticketID), dest)
}

// SetTicket caches a ticket payload after a database read.
func (c *TicketCache) SetTicket(ctx context.Context, ticketID uint, value any) error {
	return c.set(ctx, ticketKey(ticketID), value, c.readTTL)
}

// SetTicketOnCreate caches a freshly created ticket with the longer TTL.
func (c *TicketCache) SetTicketOnCreate(ctx context.Context, ticketID uint, value any) error {
	return c.set(ctx, ticketKey(ticketID), value, c.createTTL)
}

// InvalidateTicket drops the detail entry after a mutation.
func (c *TicketCache) InvalidateTicket(ctx context.Context, ticketID uint) error {
	if err := c.client.Del(ctx, ticketKey(ticketID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate ticket cache: %w", err)
	}
	return nil
}

// GetAllTickets loads the cached admin list into dest.
func (c *TicketCache) GetAllTickets(ctx context.Context, dest any) (bool, error) {
	return c.get(ctx, ticketListKey, dest)
}

// SetAllTickets caches the admin list. The short TTL bounds staleness; the
// key is not invalidated on writes.
func (c *TicketCache) SetAllTickets(ctx context.Context, value any) error {
	return c.set(ctx, ticketListKey, value, c.listTTL)
}

func (c *TicketCache) get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache entry: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		// Drop the corrupt entry so the next read repopulates it.
		c.client.Del(ctx, key)
		return false, nil
	}

	return true, nil
}

func (c *TicketCache) set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache entry: %w", err)
	}

	return nil
}
