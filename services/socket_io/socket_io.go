package socket_io

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yashwanthkasi9182/PlayMate/services/socket_io/handlers"
	socketio_types "github.com/yashwanthkasi9182/PlayMate/services/socket_io/types"
	eio_log "github.com/zishang520/engine.io/v2/log"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
	"go.uber.org/zap"
)

type MySocketServer socketio_types.SocketServer

// Options configures the realtime endpoint
type Options struct {
	// AllowOrigin is the CORS origin accepted by the handshake
	AllowOrigin string
	Debug       bool
}

// Start mounts the socket.io endpoint on the router and registers the chat
// event. The caller closes the server on shutdown.
func (sio *MySocketServer) Start(router *gin.Engine, responder handlers.ChatResponder, opts Options, log *zap.Logger) {
	eio_log.DEBUG = opts.Debug
	origin := opts.AllowOrigin
	if origin == "" {
		origin = "*"
	}

	c := socket.DefaultServerOptions()
	c.SetServeClient(false)
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      origin,
		Credentials: true,
	})

	sio.Connections = make(map[socket.SocketId]*socket.Socket)
	server := (*socketio_types.SocketServer)(sio)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...any) {
		client := clients[0].(*socket.Socket)
		server.AddConnection(client)
		log.Debug("socket connected", zap.String("socket", string(client.Id())), zap.Int("connections", server.ConnectionCount()))

		ctx, cancel := context.WithCancel(context.Background())
		client.On(handlers.EventChatMessage, handlers.HandleChatMessage(ctx, client, responder, log))

		client.On("disconnect", func(...any) {
			cancel()
			server.RemoveConnection(client.Id())
			log.Debug("socket disconnected", zap.String("socket", string(client.Id())))
		})
	})

	handler := gin.WrapH(sio.Sio_server.ServeHandler(c))
	router.POST("/socket.io/*f", handler)
	router.GET("/socket.io/*f", handler)

	log.Info("socket server started")
}

// Close disconnects every client
func (sio *MySocketServer) Close() {
	if sio.Sio_server != nil {
		sio.Sio_server.Close(nil)
	}
}
