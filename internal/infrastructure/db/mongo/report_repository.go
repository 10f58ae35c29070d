package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/99minutos/geopoint/internal/core/domain"
)

const collectionReports = "location_reports"

// ReportRepository implements ports.ReportRepository using MongoDB.
type ReportRepository struct {
	col *mongo.Collection
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{col: db.Collection(collectionReports)}
}

// Insert appends a report to the location_reports history collection.
func (r *ReportRepository) Insert(ctx context.Context, report *domain.LocationReport) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, report)
	return err
}

// EnsureIndexes creates the per-device history index.
func (r *ReportRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "device_id", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return err
}
