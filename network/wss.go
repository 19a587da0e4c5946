package network

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/influence/consts"
)

// Websocket serves browser clients. They receive JSON snapshots.
type Websocket struct {
	addr string
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebsocketServer(addr string) Websocket {
	return Websocket{addr: addr}
}

func (w Websocket) Serve(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", serveWs)
	server := &http.Server{Addr: w.addr, Handler: mux}
	go func() {
		<-ctx.Done()
		_ = server.Close()
	}()
	log.Infof("Websocket server listening on %s\n", w.addr)
	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return ctx.Err()
	}
	return err
}

func serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	err = handle(protocol.NewWebsocketReadWriteCloser(conn), consts.ModeJSON, r.RemoteAddr)
	if err != nil {
		log.Error(err)
	}
}
