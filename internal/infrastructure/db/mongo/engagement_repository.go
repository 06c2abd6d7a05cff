package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/finzzup/portal-api/internal/core/domain"
)

const engagementCollection = "engagements"

type EngagementRepository struct {
	coll *mongo.Collection
}

func NewEngagementRepository(db *mongo.Database) *EngagementRepository {
	return &EngagementRepository{coll: db.Collection(engagementCollection)}
}

type engagementDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ClientID     string             `bson:"client_id"`
	Type         string             `bson:"type"`
	RefNumber    string             `bson:"ref_number"`
	Status       int                `bson:"status"`
	ExpectedDate string             `bson:"expected_date,omitempty"`
	Note         string             `bson:"note,omitempty"`
}

func (d engagementDoc) toDomain() domain.Engagement {
	return domain.Engagement{
		ID:           d.ID.Hex(),
		ClientID:     d.ClientID,
		Type:         d.Type,
		RefNumber:    d.RefNumber,
		Status:       d.Status,
		ExpectedDate: d.ExpectedDate,
		Note:         d.Note,
	}
}

func (r *EngagementRepository) FindByClient(ctx context.Context, clientID string) (*domain.Engagement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc engagementDoc
	if err := r.coll.FindOne(ctx, bson.M{"client_id": clientID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEngagementNotFound
		}
		return nil, fmt.Errorf("find engagement: %w", err)
	}
	eng := doc.toDomain()
	return &eng, nil
}

// Upsert keeps a single engagement row per client.
func (r *EngagementRepository) Upsert(ctx context.Context, eng *domain.Engagement) (*domain.Engagement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"client_id":     eng.ClientID,
		"type":          eng.Type,
		"ref_number":    eng.RefNumber,
		"status":        eng.Status,
		"expected_date": eng.ExpectedDate,
		"note":          eng.Note,
	}}

	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"client_id": eng.ClientID}, update, opts); err != nil {
		return nil, fmt.Errorf("upsert engagement: %w", err)
	}

	var doc engagementDoc
	if err := r.coll.FindOne(ctx, bson.M{"client_id": eng.ClientID}).Decode(&doc); err != nil {
		return nil, fmt.Errorf("reload engagement: %w", err)
	}
	saved := doc.toDomain()
	return &saved, nil
}
