package http

import (
	"encoding/json"
	"net/http"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/sirupsen/logrus"

	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/settings"
)

// settingsFeed upgrades to a websocket and streams settings changes from the
// shared hub. Each connection is primed with the current values first.
func settingsFeed(hub *settings.Hub) http.HandlerFunc {
	log := logrus.WithField("context", "settings.feed")

	return func(w http.ResponseWriter, r *http.Request) {
		conn, _, _, err := ws.UpgradeHTTP(r, w)
		if err != nil {
			log.WithError(err).Debug("websocket upgrade failed")
			return
		}

		id, ch, unsub := hub.Subscribe()
		log.WithField("subscriber", id).Debug("subscriber connected")

		if current, err := hub.Current(r.Context()); err == nil {
			for _, ev := range current {
				if b, err := json.Marshal(ev); err == nil {
					_ = wsutil.WriteServerMessage(conn, ws.OpText, b)
				}
			}
		}

		// writer: drains the hub channel until unsubscribe or write failure
		go func() {
			defer conn.Close()
			defer unsub()
			for ev := range ch {
				b, err := json.Marshal(ev)
				if err != nil {
					continue
				}
				if err := wsutil.WriteServerMessage(conn, ws.OpText, b); err != nil {
					return
				}
			}
		}()

		// reader: only exists to notice the peer going away
		go func() {
			defer unsub()
			defer conn.Close()
			for {
				if _, _, err := wsutil.ReadClientData(conn); err != nil {
					log.WithField("subscriber", id).Debug("subscriber disconnected")
					return
				}
			}
		}()
	}
}
