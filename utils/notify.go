package utils

import (
	"encoding/json"
	"log"

	"lms/database"
	"lms/models"
)

// Notify writes an in-app notification row. Email delivery, when wanted,
// is triggered separately by the caller.
func Notify(userID uint, notifType, title, body string, data map[string]interface{}) {
	var payload []byte
	if data != nil {
		if b, err := json.Marshal(data); err == nil {
			payload = b
		}
	}

	notification := models.Notification{
		UserID: userID,
		Type:   notifType,
		Title:  title,
		Body:   body,
		Data:   payload,
	}
	if err := database.Database.Db.Create(&notification).Error; err != nil {
		log.Printf("Error saving notification for user %d: %v", userID, err)
	}
}
