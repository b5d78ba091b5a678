package websocket

import (
	"encoding/json"

	"github.com/R-Nikhil-Ganesh/gittogether-backend/database"
	"github.com/R-Nikhil-Ganesh/gittogether-backend/models"
	"github.com/sirupsen/logrus"
)

// TeamMessagePayload represents the structure of a team chat payload
type TeamMessagePayload struct {
	TeamID  uint   `json:"team_id"`
	Content string `json:"content"`
}

// isTeamMember reports whether the user is the post owner or an accepted requester.
func isTeamMember(userID, postID uint) bool {
	var post models.TeamPost
	if err := database.DB.First(&post, postID).Error; err != nil {
		return false
	}
	if post.OwnerID == userID {
		return true
	}

	var count int64
	database.DB.Model(&models.TeamRequest{}).
		Where("post_id = ? AND requester_id = ? AND status = ?",
			postID, userID, models.TeamRequestAccepted).
		Count(&count)
	return count > 0
}

// saveTeamMessage persists a team chat message and returns it with the sender loaded.
// The expiry timestamp is stamped by the model's create hook.
func saveTeamMessage(userID uint, payload TeamMessagePayload) (models.TeamMessage, error) {
	message := models.TeamMessage{
		Content:  payload.Content,
		PostID:   payload.TeamID,
		SenderID: userID,
	}

	if err := database.DB.Create(&message).Error; err != nil {
		return message, err
	}

	if err := database.DB.Preload("Sender").First(&message, message.ID).Error; err != nil {
		logrus.WithError(err).Error("failed to load sender for message")
	}

	return message, nil
}

// HandleIncomingMessage processes an incoming websocket message
func HandleIncomingMessage(client *Client, messageBytes []byte) {
	var msg Message
	if err := json.Unmarshal(messageBytes, &msg); err != nil {
		logrus.WithError(err).Error("failed to unmarshal message")
		return
	}

	switch msg.Type {
	case "join_team":
		if teamID, ok := msg.Payload.(string); ok {
			postID := parseTeamID(teamID)
			if !isTeamMember(client.userID, postID) {
				logrus.WithFields(logrus.Fields{
					"user_id": client.userID,
					"team_id": postID,
				}).Warn("non-member attempted to join team channel")
				return
			}
			client.joinTeam(postID)
		}
	case "leave_team":
		if teamID, ok := msg.Payload.(string); ok {
			client.leaveTeam(parseTeamID(teamID))
		}
	case "team_message":
		payloadBytes, err := json.Marshal(msg.Payload)
		if err != nil {
			logrus.WithError(err).Error("failed to marshal payload")
			return
		}

		var payload TeamMessagePayload
		if err := json.Unmarshal(payloadBytes, &payload); err != nil {
			logrus.WithError(err).Error("failed to unmarshal team message payload")
			return
		}

		if !client.inTeam(payload.TeamID) {
			logrus.WithFields(logrus.Fields{
				"user_id": client.userID,
				"team_id": payload.TeamID,
			}).Warn("message to team channel without joining")
			return
		}

		// Membership can change while connected, so re-check against the database
		if !isTeamMember(client.userID, payload.TeamID) {
			client.leaveTeam(payload.TeamID)
			return
		}

		savedMessage, err := saveTeamMessage(client.userID, payload)
		if err != nil {
			logrus.WithError(err).Error("failed to save team message")
			return
		}

		responseMsg := Message{
			Type:    "team_message",
			Payload: savedMessage,
		}

		responseBytes, err := json.Marshal(responseMsg)
		if err != nil {
			logrus.WithError(err).Error("failed to marshal response message")
			return
		}

		client.hub.broadcastToTeam(payload.TeamID, responseBytes)
	}
}
