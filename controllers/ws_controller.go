package controller

import (
	"context"
	"log"

	"github.com/gofiber/websocket/v2"

	"taskhub/models"
	"taskhub/realtime"
	"taskhub/utils"
)

type WSController struct {
	hub      *realtime.Hub
	presence realtime.Registry
	logger   *log.Logger
}

func NewWSController(hub *realtime.Hub, presence realtime.Registry, logger *log.Logger) *WSController {
	return &WSController{hub: hub, presence: presence, logger: logger}
}

// clientMessage is what a connected client may send over the socket.
type clientMessage struct {
	Action    string `json:"action"`
	Username  string `json:"username,omitempty"`
	ProjectID uint   `json:"projectId,omitempty"`
}

// HandleConnection serves one websocket connection. The identity comes from
// the JWT middleware that ran during the upgrade; clients still opt into
// their personal channel explicitly with an "online" message, mirroring the
// presence lifecycle: populated on connect, cleared on disconnect.
func (wc *WSController) HandleConnection(c *websocket.Conn) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		_ = c.Close()
		return
	}
	role, _ := c.Locals("role").(models.Role)

	client := wc.hub.Register(c, userID)
	wc.logger.Printf("user %d connected", userID)

	defer func() {
		wc.hub.Unregister(client)
		if err := wc.presence.Remove(context.Background(), userID); err != nil {
			utils.LogError("presence_remove_failed", err, map[string]interface{}{"user_id": userID})
		}
		wc.broadcastUserList()
		wc.logger.Printf("user %d disconnected", userID)
		_ = c.Close()
	}()

	for {
		var msg clientMessage
		if err := c.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Action {
		case "online":
			wc.hub.Subscribe(client, realtime.UserChannel(userID))
			err := wc.presence.Add(context.Background(), realtime.OnlineUser{
				ID:       userID,
				Username: msg.Username,
				Role:     role,
			})
			if err != nil {
				utils.LogError("presence_add_failed", err, map[string]interface{}{"user_id": userID})
			}
			wc.broadcastUserList()

		case "offline":
			if err := wc.presence.Remove(context.Background(), userID); err != nil {
				utils.LogError("presence_remove_failed", err, map[string]interface{}{"user_id": userID})
			}
			wc.broadcastUserList()

		case "joinProject":
			if msg.ProjectID != 0 {
				wc.hub.Subscribe(client, realtime.ProjectChannel(msg.ProjectID))
			}

		default:
			wc.logger.Printf("user %d sent unknown action %q", userID, msg.Action)
		}
	}
}

func (wc *WSController) broadcastUserList() {
	users, err := wc.presence.List(context.Background())
	if err != nil {
		utils.LogError("presence_list_failed", err, nil)
		return
	}
	wc.hub.Broadcast(realtime.Event{Name: "userList", Data: users})
}
