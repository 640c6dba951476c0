package configs

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

var client *firestore.Client

// Firestore returns the shared client; ConnectFirestore must run first.
func Firestore() *firestore.Client {
	return client
}

// ConnectFirestore initializes the Firebase app and opens the Firestore
// client. Credentials come from the configured service-account file when
// it exists, otherwise application default credentials apply.
func ConnectFirestore(ctx context.Context, cfg *Config) error {
	var opts []option.ClientOption
	if _, err := os.Stat(cfg.CredentialsFile); err == nil {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return fmt.Errorf("init firebase app: %w", err)
	}

	client, err = app.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("open firestore client: %w", err)
	}
	return nil
}
