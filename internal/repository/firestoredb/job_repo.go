package firestoredb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"jobboard-admin/internal/domain"
	"jobboard-admin/pkg/logger"
)

type jobRepository struct {
	client     *firestore.Client
	collection string
}

// NewJobRepository creates a Firestore-backed job repository over the given
// collection.
func NewJobRepository(client *firestore.Client, collection string) domain.JobRepository {
	return &jobRepository{client: client, collection: collection}
}

func (r *jobRepository) col() *firestore.CollectionRef {
	return r.client.Collection(r.collection)
}

func (r *jobRepository) Create(ctx context.Context, rec *domain.JobRecord) (string, error) {
	// CreatedAt/UpdatedAt carry serverTimestamp tags; the zero values are
	// replaced by the server on write.
	ref, _, err := r.col().Add(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("failed to create job posting: %w", err)
	}
	return ref.ID, nil
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.JobRecord, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job posting %s: %w", id, err)
	}

	var rec domain.JobRecord
	if err := snap.DataTo(&rec); err != nil {
		return nil, fmt.Errorf("failed to decode job posting %s: %w", id, err)
	}
	rec.ID = snap.Ref.ID
	return &rec, nil
}

func (r *jobRepository) FetchRecent(ctx context.Context, limit int) ([]domain.JobRecord, error) {
	iter := r.col().OrderBy("createdAt", firestore.Desc).Limit(limit).Documents(ctx)
	defer iter.Stop()

	records := make([]domain.JobRecord, 0, limit)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list job postings: %w", err)
		}

		var rec domain.JobRecord
		if err := snap.DataTo(&rec); err != nil {
			// One malformed document must not take the whole listing down.
			logger.Log.Warn("Skipping undecodable job posting", "doc_id", snap.Ref.ID, "error", err)
			continue
		}
		rec.ID = snap.Ref.ID
		records = append(records, rec)
	}
	return records, nil
}

// Update overwrites the editable fields of an existing document. CreatedAt is
// never touched; UpdatedAt is stamped by the server.
func (r *jobRepository) Update(ctx context.Context, rec *domain.JobRecord) error {
	updates := []firestore.Update{
		{Path: "title", Value: rec.Title},
		{Path: "companyName", Value: rec.CompanyName},
		{Path: "companyLogoUrl", Value: rec.CompanyLogoURL},
		{Path: "location", Value: rec.Location},
		{Path: "category", Value: rec.Category},
		{Path: "subCategory", Value: rec.SubCategory},
		{Path: "description", Value: rec.Description},
		{Path: "requirements", Value: rec.Requirements},
		{Path: "experienceLevel", Value: rec.ExperienceLevel},
		{Path: "techStacks", Value: rec.TechStacks},
		{Path: "previousInterviewQuestions", Value: rec.PreviousInterviewQuestions},
		{Path: "sourceLink", Value: rec.SourceLink},
		{Path: "salaryRange", Value: rec.SalaryRange},
		{Path: "postedDate", Value: rec.PostedDate},
		{Path: "expiryDate", Value: rec.ExpiryDate},
		{Path: "relocation", Value: rec.Relocation},
		{Path: "status", Value: string(rec.Status)},
		{Path: "customFields", Value: rec.CustomFields},
		{Path: "uploadedBy", Value: rec.UploadedBy},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	}

	if _, err := r.col().Doc(rec.ID).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to update job posting %s: %w", rec.ID, err)
	}
	return nil
}

// UpdateStatus flips only the status field so concurrent edits to other
// fields are not clobbered.
func (r *jobRepository) UpdateStatus(ctx context.Context, id string, st domain.JobStatus) error {
	updates := []firestore.Update{
		{Path: "status", Value: string(st)},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	}

	if _, err := r.col().Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to update status of job posting %s: %w", id, err)
	}
	return nil
}

func (r *jobRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete job posting %s: %w", id, err)
	}
	return nil
}
