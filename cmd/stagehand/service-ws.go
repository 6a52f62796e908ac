package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	. "github.com/stageworks/screenplay/util/testutil"

	"github.com/gorilla/websocket"
)

// WebSocketService registers a /ws/api handler that speaks the SOp
// protocol.  Every connected client also gets the service's op
// stream, so a client can watch what other clients are doing.
func (s *Service) WebSocketService(ctx context.Context) error {

	s.ops = make(chan interface{}, 1024)

	var (
		upgrader = websocket.Upgrader{} // Default options.

		// watchers maps a connection id to the channel feeding
		// that connection's write loop.
		watchers = sync.Map{}
	)

	// Fan the op stream out to every watcher.
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case x := <-s.ops:
				watchers.Range(func(k, v interface{}) bool {
					c := v.(chan interface{})
					select {
					case c <- x:
					default:
						log.Printf("Service.WebSocketService %v watcher blocked on %s", k, JS(x))
					}
					return true
				})
			}
		}
	}()

	api := func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Service.WebSocketService connection")

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("Service.WebSocketService upgrade error %s", err)
			return
		}
		defer c.Close()

		feed := make(chan interface{}, 32)
		defer close(feed)

		id := c.RemoteAddr().String()
		watchers.Store(id, feed)
		defer watchers.Delete(id)

		// Write loop: ops observed elsewhere in the service.
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case x := <-feed:
					if x == nil {
						// The feed closed with the
						// connection.
						return
					}
					js, err := json.Marshal(&x)
					if err != nil {
						log.Printf("Service.WebSocketService marshal error %s on %#v", err, x)
						continue
					}
					if err = c.WriteMessage(websocket.TextMessage, js); err != nil {
						log.Printf("Service.WebSocketService watcher write error %s", err)
						return
					}
				}
			}
		}()

		// Read loop: ops submitted by this client.
		for {
			mt, message, err := c.ReadMessage()
			if err != nil {
				log.Printf("Service.WebSocketService read error %s", err)
				break
			}

			var op SOp
			if err := json.Unmarshal(message, &op); err != nil {
				complaint := fmt.Sprintf("can't parse: %v", err)
				if err = c.WriteMessage(mt, []byte(complaint)); err != nil {
					log.Printf("Service.WebSocketService write error %s", err)
				}
				continue
			}
			if err = op.Do(ctx, s); err != nil {
				// The op carries its own Err; the client
				// still gets the rendition below.
				log.Printf("Service.WebSocketService op error %s", err)
			}

			js, err := json.Marshal(&op)
			if err != nil {
				log.Printf("Service.WebSocketService marshal error %s on %#v", err, op)
				continue
			}
			if err = c.WriteMessage(mt, js); err != nil {
				log.Printf("Service.WebSocketService write error %s", err)
			}
		}
	}

	http.HandleFunc("/ws/api", api)

	return nil
}
