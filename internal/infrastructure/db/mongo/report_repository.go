package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yng-express/parcel-admin/internal/core/domain"
	"github.com/yng-express/parcel-admin/internal/core/ports"
)

// overduePaymentAge is how long an unpaid parcel may sit before it counts as
// an urgent issue on the dashboard.
const overduePaymentAge = 7 * 24 * time.Hour

// terminalStatuses are the states in which a parcel no longer counts as an
// active delivery.
var terminalStatuses = bson.A{
	string(domain.StatusPickedUp),
	string(domain.StatusDelivered),
	string(domain.StatusCancelled),
}

// ReportRepository runs the aggregation pipelines behind the reporting views.
type ReportRepository struct {
	parcels   *mongo.Collection
	customers *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{
		parcels:   db.Collection(parcelsCollection),
		customers: db.Collection(customersCollection),
	}
}

func (r *ReportRepository) CountParcels(ctx context.Context, since time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if !since.IsZero() {
		filter["created_at"] = bson.M{"$gte": since}
	}
	return r.parcels.CountDocuments(ctx, filter)
}

func (r *ReportRepository) CountParcelsByStatus(ctx context.Context) ([]ports.StatusCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cur, err := r.parcels.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	counts := []ports.StatusCount{}
	for cur.Next(ctx) {
		var row struct {
			Status string `bson:"_id"`
			Count  int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		counts = append(counts, ports.StatusCount{Status: row.Status, Count: row.Count})
	}
	return counts, cur.Err()
}

func (r *ReportRepository) CountActive(ctx context.Context) (int64, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	active, err := r.parcels.CountDocuments(ctx, bson.M{"status": bson.M{"$nin": terminalStatuses}})
	if err != nil {
		return 0, 0, err
	}
	ready, err := r.parcels.CountDocuments(ctx, bson.M{"status": string(domain.StatusReadyForPickup)})
	if err != nil {
		return 0, 0, err
	}
	return active, ready, nil
}

func (r *ReportRepository) CountPendingPayment(ctx context.Context) (int64, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	unpaid := bson.M{"payment_status": bson.M{"$in": bson.A{
		string(domain.PaymentPending),
		string(domain.PaymentPartial),
	}}}

	pending, err := r.parcels.CountDocuments(ctx, unpaid)
	if err != nil {
		return 0, 0, err
	}

	overdueFilter := bson.M{
		"payment_status": unpaid["payment_status"],
		"created_at":     bson.M{"$lt": time.Now().UTC().Add(-overduePaymentAge)},
	}
	overdue, err := r.parcels.CountDocuments(ctx, overdueFilter)
	if err != nil {
		return 0, 0, err
	}
	return pending, overdue, nil
}

// SumRevenue totals parcel amounts, excluding cancelled parcels.
func (r *ReportRepository) SumRevenue(ctx context.Context, since time.Time) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	match := bson.M{"status": bson.M{"$ne": string(domain.StatusCancelled)}}
	if !since.IsZero() {
		match["created_at"] = bson.M{"$gte": since}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$total_amount"}}}},
	}

	cur, err := r.parcels.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	if cur.Next(ctx) {
		var row struct {
			Total float64 `bson:"total"`
		}
		if err := cur.Decode(&row); err != nil {
			return 0, err
		}
		return row.Total, nil
	}
	return 0, cur.Err()
}

func (r *ReportRepository) RevenueByMonth(ctx context.Context, months int) ([]ports.MonthlyAmount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := monthlyPipeline(months, bson.M{"$sum": "$total_amount"})
	cur, err := r.parcels.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := []ports.MonthlyAmount{}
	for cur.Next(ctx) {
		var row struct {
			Month string  `bson:"_id"`
			Value float64 `bson:"value"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		rows = append(rows, ports.MonthlyAmount{Month: row.Month, Amount: row.Value})
	}
	return rows, cur.Err()
}

func (r *ReportRepository) CustomersByMonth(ctx context.Context, months int) ([]ports.MonthlyCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := monthlyPipeline(months, bson.M{"$sum": 1})
	cur, err := r.customers.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := []ports.MonthlyCount{}
	for cur.Next(ctx) {
		var row struct {
			Month string `bson:"_id"`
			Value int64  `bson:"value"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		rows = append(rows, ports.MonthlyCount{Month: row.Month, Count: row.Value})
	}
	return rows, cur.Err()
}

func (r *ReportRepository) ParcelsByDay(ctx context.Context, days int) ([]ports.DailyCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	since := time.Now().UTC().AddDate(0, 0, -days)
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"created_at": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$created_at"}},
			"value": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cur, err := r.parcels.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := []ports.DailyCount{}
	for cur.Next(ctx) {
		var row struct {
			Date  string `bson:"_id"`
			Value int64  `bson:"value"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		rows = append(rows, ports.DailyCount{Date: row.Date, Count: row.Value})
	}
	return rows, cur.Err()
}

// monthlyPipeline groups documents created in the last n months by "YYYY-MM".
func monthlyPipeline(months int, accumulator bson.M) mongo.Pipeline {
	now := time.Now().UTC()
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"created_at": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$created_at"}},
			"value": accumulator,
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}
