package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	db "github.com/Lkoenig2121/ebay/internal/db/memory"
	"github.com/Lkoenig2121/ebay/internal/event"
	"github.com/gin-gonic/gin"
)

// streamItemEvents establishes an SSE connection delivering live bid events
// for one item. There is no replay: events broadcast before the connection
// was registered are never sent, which is why clients fetch the bid history
// over the query endpoint before subscribing.
func (server *Server) streamItemEvents(c *gin.Context) {
	itemID := c.Param("id")

	if _, err := server.dbStore.GetItemByID(c, itemID); err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, errorResponse(fmt.Errorf("item ID %s not found", itemID)))
			return
		}

		c.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	topic := event.ItemTopic(itemID)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	clientChan := make(chan event.Event, 16)
	server.eventSender.Register(topic, clientChan)
	defer server.eventSender.Unregister(topic, clientChan)

	for {
		select {
		case ev, ok := <-clientChan:
			if !ok {
				return
			}
			data, _ := json.Marshal(ev.Data)
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", ev.Type, data)
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			// Navigation away or disconnect; the deferred Unregister drops
			// the subscription.
			return
		}
	}
}
