package auctionwatch

import (
	"context"
	"time"

	db "github.com/Lkoenig2121/ebay/internal/db/memory"
	"github.com/Lkoenig2121/ebay/internal/event"
	"github.com/Lkoenig2121/ebay/internal/util"
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// Watcher closes auctions whose deadline has passed and tells live viewers.
// Bid rejection after the deadline does not depend on this job; the
// transaction engine checks the deadline itself.
type Watcher struct {
	store       db.Store
	eventSender event.EventSender
	scheduler   gocron.Scheduler
	interval    time.Duration
}

func NewWatcher(store db.Store, eventSender event.EventSender, interval time.Duration) (*Watcher, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		store:       store,
		eventSender: eventSender,
		scheduler:   scheduler,
		interval:    interval,
	}, nil
}

// Start begins the periodic close job.
func (w *Watcher) Start() error {
	_, err := w.scheduler.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(
			func() {
				w.closeExpiredAuctions()
			},
		),
	)

	if err != nil {
		return err
	}

	w.scheduler.Start()
	return nil
}

// Stop shuts the scheduler down.
func (w *Watcher) Stop() error {
	return w.scheduler.Shutdown()
}

func (w *Watcher) closeExpiredAuctions() {
	ended, err := w.store.CloseExpiredAuctions(context.Background(), time.Now())
	if err != nil {
		log.Err(err).Msg("failed to close expired auctions")
		return
	}

	for _, item := range ended {
		w.eventSender.Broadcast(event.Event{
			Topic: event.ItemTopic(item.ID),
			Type:  event.EventTypeAuctionEnded,
			Data: event.AuctionEndedEvent{
				ItemID:     item.ID,
				FinalPrice: item.CurrentPrice,
				Item:       item,
			},
		})

		log.Info().
			Str("item_id", item.ID).
			Str("title", util.TruncateContent(item.Title, 40)).
			Str("final_price", util.FormatUSD(item.CurrentPrice)).
			Msg("auction ended")
	}
}
