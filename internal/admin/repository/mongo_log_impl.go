package repository

import (
	"context"
	"time"

	"planadmin/internal/admin/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The log collections are append-only: this file exposes inserts and reads,
// nothing else.

func (r *MongoRepository) EnsureLogIndexes(ctx context.Context) error {
	auditIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "module", Value: 1},
				{Key: "action", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_audit_module_action"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_audit_created_at"),
		},
	}
	if _, err := r.AuditLogs.Indexes().CreateMany(ctx, auditIndexes); err != nil {
		return err
	}

	projectIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "project_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_project_log_query"),
		},
	}
	_, err := r.ProjectLogs.Indexes().CreateMany(ctx, projectIndexes)
	return err
}

func (r *MongoRepository) InsertAuditLog(ctx context.Context, entry *model.AuditLog) error {
	if entry.ID == "" {
		entry.ID = newID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := r.AuditLogs.InsertOne(ctx, entry)
	return err
}

func (r *MongoRepository) InsertProjectLog(ctx context.Context, entry *model.ProjectLog) error {
	if entry.ID == "" {
		entry.ID = newID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := r.ProjectLogs.InsertOne(ctx, entry)
	return err
}

func (r *MongoRepository) FindAuditLogs(ctx context.Context, req model.GetAuditLogsReq) ([]*model.AuditLog, int64, error) {
	filter := bson.M{}
	if req.Module != "" {
		filter["module"] = req.Module
	}
	if req.Action != "" {
		filter["action"] = req.Action
	}

	total, err := r.AuditLogs.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((req.Page - 1) * req.Size)
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(req.Size))

	cursor, err := r.AuditLogs.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var results []*model.AuditLog
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func (r *MongoRepository) FindProjectLogs(ctx context.Context, projectID string, req model.GetProjectLogsReq) ([]*model.ProjectLog, int64, error) {
	filter := bson.M{"project_id": projectID}
	if req.Module != "" {
		filter["module"] = req.Module
	}
	if req.Action != "" {
		filter["action"] = req.Action
	}
	if req.StartTime != nil || req.EndTime != nil {
		timeFilter := bson.M{}
		if req.StartTime != nil {
			timeFilter["$gte"] = *req.StartTime
		}
		if req.EndTime != nil {
			timeFilter["$lte"] = *req.EndTime
		}
		filter["created_at"] = timeFilter
	}

	total, err := r.ProjectLogs.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((req.Page - 1) * req.Size)
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(req.Size))

	cursor, err := r.ProjectLogs.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var results []*model.ProjectLog
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}
