package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var (
	firebaseApp    *firebase.App
	firebaseClient *messaging.Client
	once           sync.Once
	initErr        error
	isInitialized  bool
)

// InitFirebase initializes Firebase Admin SDK and the FCM client (singleton).
// The service runs fine without it; push notifications are simply disabled.
func InitFirebase() error {
	if isInitialized {
		log.Println("ℹ️ Firebase already initialized, skipping...")
		return initErr
	}

	once.Do(func() {
		ctx := context.Background()

		credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
		if credentialsPath == "" {
			credentialsPath = os.Getenv("FCM_CREDENTIALS_PATH")
		}
		if credentialsPath == "" {
			credentialsPath = "./serviceAccountKey.json"
		}

		projectID := os.Getenv("FCM_PROJECT_ID")

		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			isInitialized = true
			initErr = fmt.Errorf("firebase credentials file not found: %s", credentialsPath)
			return
		}

		if projectID == "" {
			isInitialized = true
			initErr = fmt.Errorf("FCM_PROJECT_ID is required for FCM")
			return
		}

		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID},
			option.WithCredentialsFile(credentialsPath))
		if err != nil {
			isInitialized = true
			initErr = fmt.Errorf("firebase app init failed: %w", err)
			return
		}

		client, err := app.Messaging(ctx)
		if err != nil {
			isInitialized = true
			initErr = fmt.Errorf("FCM client init failed: %w", err)
			return
		}

		firebaseApp = app
		firebaseClient = client
		isInitialized = true
		log.Printf("✅ Firebase initialized for project %s", projectID)
	})

	return initErr
}

// IsFCMEnabled reports whether the FCM client is available.
func IsFCMEnabled() bool {
	return firebaseClient != nil
}

// GetInitError returns the initialization error, if any.
func GetInitError() error {
	return initErr
}

// SendToTopic broadcasts a notification to all subscribers of an FCM topic.
func SendToTopic(ctx context.Context, topic, title, body string) error {
	if firebaseClient == nil {
		return fmt.Errorf("FCM client not initialized")
	}

	msg := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}

	id, err := firebaseClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("FCM send failed: %w", err)
	}

	log.Printf("✅ FCM message sent: %s", id)
	return nil
}
