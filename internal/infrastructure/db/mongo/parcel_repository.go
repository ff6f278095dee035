package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yng-express/parcel-admin/internal/core/domain"
	"github.com/yng-express/parcel-admin/internal/core/ports"
)

const parcelsCollection = "parcels"

type ParcelRepository struct {
	coll *mongo.Collection
}

func NewParcelRepository(db *mongo.Database) *ParcelRepository {
	return &ParcelRepository{coll: db.Collection(parcelsCollection)}
}

func (r *ParcelRepository) Create(ctx context.Context, p *domain.Parcel) (*domain.Parcel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *p
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *ParcelRepository) FindByID(ctx context.Context, id string) (*domain.Parcel, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ParcelRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Parcel, error) {
	return r.findOne(ctx, bson.M{"tracking_number": trackingNumber})
}

func (r *ParcelRepository) findOne(ctx context.Context, filter bson.M) (*domain.Parcel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Parcel
	if err := r.coll.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrParcelNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns parcels matching the filter, newest first.
func (r *ParcelRepository) List(ctx context.Context, filter ports.ListParcelsFilter) ([]*domain.Parcel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.CustomerID != "" {
		query["customer_id"] = filter.CustomerID
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexEscape(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"tracking_number": pattern},
			bson.M{"barcode": pattern},
			bson.M{"description": pattern},
		}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(listLimit)

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	parcels := []*domain.Parcel{}
	if err := cur.All(ctx, &parcels); err != nil {
		return nil, err
	}
	return parcels, nil
}

// AppendStatus atomically sets the parcel status and pushes the tracking event.
func (r *ParcelRepository) AppendStatus(ctx context.Context, id string, event domain.TrackingEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"status":     string(event.Status),
			"updated_at": event.Timestamp,
		},
		"$push": bson.M{"tracking_events": event},
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrParcelNotFound
	}
	return nil
}

func (r *ParcelRepository) SetPaymentState(ctx context.Context, id string, state domain.PaymentState) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"payment_status": string(state),
		"updated_at":     time.Now().UTC(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrParcelNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the parcels collection.
func (r *ParcelRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "tracking_number", Value: 1}}, Options: uniqueIndex()},
		{Keys: bson.D{{Key: "barcode", Value: 1}}},
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
