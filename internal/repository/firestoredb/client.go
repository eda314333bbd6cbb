package firestoredb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
)

// NewClient connects to Firestore using application default credentials.
func NewClient(ctx context.Context, projectID string) (*firestore.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("firestore: project id must be provided")
	}
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("firestore: failed to create client: %w", err)
	}
	return client, nil
}
