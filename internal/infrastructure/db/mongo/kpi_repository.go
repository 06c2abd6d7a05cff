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

const kpiCollection = "kpis"

type KPIRepository struct {
	coll *mongo.Collection
}

func NewKPIRepository(db *mongo.Database) *KPIRepository {
	return &KPIRepository{coll: db.Collection(kpiCollection)}
}

type kpiDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ClientID    string             `bson:"client_id"`
	Month       string             `bson:"month"`
	Revenue     string             `bson:"revenue"`
	GrossMargin string             `bson:"gross_margin"`
	CashBalance string             `bson:"cash_balance"`
	BurnRate    string             `bson:"burn_rate"`
	Runway      string             `bson:"runway"`
	ARR         string             `bson:"arr"`
	Note        string             `bson:"note"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d kpiDoc) toDomain() *domain.KPISnapshot {
	return &domain.KPISnapshot{
		ID:          d.ID.Hex(),
		ClientID:    d.ClientID,
		Month:       d.Month,
		Revenue:     d.Revenue,
		GrossMargin: d.GrossMargin,
		CashBalance: d.CashBalance,
		BurnRate:    d.BurnRate,
		Runway:      d.Runway,
		ARR:         d.ARR,
		Note:        d.Note,
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

// Latest returns the most recently updated snapshot for a client.
func (r *KPIRepository) Latest(ctx context.Context, clientID string) (*domain.KPISnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	var doc kpiDoc
	err := r.coll.FindOne(ctx, bson.M{"client_id": clientID}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrKPINotFound
		}
		return nil, fmt.Errorf("find latest kpi: %w", err)
	}
	return doc.toDomain(), nil
}

// Upsert updates the snapshot when its ID is set, otherwise inserts a new
// one. The returned snapshot carries the stored ID either way.
func (r *KPIRepository) Upsert(ctx context.Context, snap *domain.KPISnapshot) (*domain.KPISnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	fields := bson.M{
		"client_id":    snap.ClientID,
		"month":        snap.Month,
		"revenue":      snap.Revenue,
		"gross_margin": snap.GrossMargin,
		"cash_balance": snap.CashBalance,
		"burn_rate":    snap.BurnRate,
		"runway":       snap.Runway,
		"arr":          snap.ARR,
		"note":         snap.Note,
		"updated_at":   snap.UpdatedAt,
	}

	if snap.ID != "" {
		oid, err := primitive.ObjectIDFromHex(snap.ID)
		if err != nil {
			return nil, domain.ErrKPINotFound
		}
		res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": fields})
		if err != nil {
			return nil, fmt.Errorf("update kpi: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, domain.ErrKPINotFound
		}
		saved := *snap
		return &saved, nil
	}

	res, err := r.coll.InsertOne(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("insert kpi: %w", err)
	}
	saved := *snap
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		saved.ID = oid.Hex()
	}
	return &saved, nil
}
