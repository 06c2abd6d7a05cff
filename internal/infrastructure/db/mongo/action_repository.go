package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/finzzup/portal-api/internal/core/domain"
)

const actionCollection = "action_items"

type ActionRepository struct {
	coll *mongo.Collection
}

func NewActionRepository(db *mongo.Database) *ActionRepository {
	return &ActionRepository{coll: db.Collection(actionCollection)}
}

type actionDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ClientID  string             `bson:"client_id"`
	Text      string             `bson:"text"`
	Priority  string             `bson:"priority"`
	Done      bool               `bson:"done"`
	Month     string             `bson:"month,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d actionDoc) toDomain() domain.ActionItem {
	return domain.ActionItem{
		ID:        d.ID.Hex(),
		ClientID:  d.ClientID,
		Text:      d.Text,
		Priority:  d.Priority,
		Done:      d.Done,
		Month:     d.Month,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

// ListByClient returns items newest first.
func (r *ActionRepository) ListByClient(ctx context.Context, clientID string) ([]domain.ActionItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"client_id": clientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}
	defer cursor.Close(ctx)

	out := []domain.ActionItem{}
	for cursor.Next(ctx) {
		var doc actionDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode action: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}
	return out, nil
}

func (r *ActionRepository) Create(ctx context.Context, item *domain.ActionItem) (*domain.ActionItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := actionDoc{
		ClientID:  item.ClientID,
		Text:      item.Text,
		Priority:  item.Priority,
		Done:      item.Done,
		Month:     item.Month,
		CreatedAt: item.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert action: %w", err)
	}

	created := *item
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ActionRepository) FindByID(ctx context.Context, id string) (*domain.ActionItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrActionNotFound
	}

	var doc actionDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrActionNotFound
		}
		return nil, fmt.Errorf("find action: %w", err)
	}
	item := doc.toDomain()
	return &item, nil
}

func (r *ActionRepository) SetDone(ctx context.Context, id string, done bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrActionNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"done": done}})
	if err != nil {
		return fmt.Errorf("update action: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrActionNotFound
	}
	return nil
}

func (r *ActionRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrActionNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete action: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrActionNotFound
	}
	return nil
}
