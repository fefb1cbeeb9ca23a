package socket_io

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"Damka/services/invites"
	"Damka/services/presence"
	"Damka/services/redis"
	"Damka/services/sessions"
	"Damka/services/socket_io/handlers"
	socketio_types "Damka/services/socket_io/types"

	"log"

	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

// Start mounts the socket.io endpoint on the gin router and wires the fixed
// event table: every inbound event name maps to exactly one handler closure
// over the shared registry, invite broker and session manager.
func (sio *MySocketServer) Start(router *gin.Engine, db *gorm.DB, redisClient *redis.RedisClient) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	// KEY: the registry must exist before any connection callback runs
	sio.Registry = presence.NewRegistry()

	broker := invites.NewBroker(&invites.GormStore{DB: db}, sio.Registry)
	games := sessions.NewManager(sio.Registry)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)
		conn := socketio_types.WrapSocket(client)

		log.Printf("[CONNECT] New client connected: %s", conn.ID())

		// Bind the connection to a user identity
		client.On("register", handlers.HandleRegister(sio.Registry, redisClient, conn))

		// Invite another user to a game
		client.On("invite", handlers.HandleInvite(broker, conn))

		// Accept a previously received invite
		client.On("accept-invite", handlers.HandleAcceptInvite(broker, conn))

		// Checkers: client-owned board, relayed verbatim
		client.On("checkers-game-start", handlers.HandleCheckersGameStart(games, conn))
		client.On("checkers-move", handlers.HandleCheckersMove(games, conn))
		client.On("checkers-game-over", handlers.HandleCheckersGameOver(games, conn))

		// Snakes & ladders: server-generated board, turn tracked per move
		client.On("snakes-game-start", handlers.HandleSnakesGameStart(games, conn))
		client.On("snakes-move", handlers.HandleSnakesMove(games, conn))
		client.On("snakes-game-over", handlers.HandleSnakesGameOver(games, conn))

		// NOTE: will remove the registry bindings and the presence mirror
		client.On("disconnecting", handlers.HandleDisconnecting(sio.Registry, redisClient, conn))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	log.Println("Socket server started")
}
