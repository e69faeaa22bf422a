package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// HousesPubSub fans house changes out to the other instances. origin
// identifies this instance so it can skip its own messages.
type HousesPubSub struct {
	rdb     *redis.Client
	channel string
	origin  string
}

func NewHousesPubSub(rdb *redis.Client, origin string) *HousesPubSub {
	return &HousesPubSub{
		rdb:     rdb,
		channel: ChannelHousesChanged(),
		origin:  origin,
	}
}

type houseChangedMsg struct {
	Type    string `json:"type"`
	HouseID string `json:"house_id"`
	Origin  string `json:"origin"`
	TsUnix  int64  `json:"ts_unix"`
}

// PublishHouseChanged announces that a house's counters or status moved.
func (p *HousesPubSub) PublishHouseChanged(ctx context.Context, houseID string) error {
	if p == nil {
		return nil
	}

	msg := houseChangedMsg{
		Type:    "house_changed",
		HouseID: houseID,
		Origin:  p.origin,
		TsUnix:  time.Now().Unix(),
	}

	b, _ := json.Marshal(msg)

	return p.rdb.Publish(ctx, p.channel, b).Err()
}

// Subscribe blocks until ctx is done, calling handler for every change
// published by another instance.
func (p *HousesPubSub) Subscribe(
	ctx context.Context,
	handler func(ctx context.Context, houseID string),
) error {
	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	ch := sub.Channel(redis.WithChannelSize(256))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var ev houseChangedMsg
			if err := json.Unmarshal([]byte(m.Payload), &ev); err == nil &&
				ev.HouseID != "" && ev.Origin != p.origin {
				handler(ctx, ev.HouseID)
			}
		}
	}
}
