package repository

import (
	"context"
	"time"

	"planadmin/internal/admin/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoRepository) GetGroup(ctx context.Context, id string) (*model.Group, error) {
	var g model.Group
	err := r.Groups.FindOne(ctx, notDeleted(bson.M{"_id": id})).Decode(&g)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *MongoRepository) ListGroups(ctx context.Context, accessModule string) ([]*model.Group, error) {
	filter := notDeleted(bson.M{})
	if accessModule != "" {
		filter["access_module"] = accessModule
	}
	cursor, err := r.Groups.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []*model.Group
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *MongoRepository) FindGroupsByIDs(ctx context.Context, ids []string) ([]*model.Group, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.Groups.Find(ctx, notDeleted(bson.M{"_id": bson.M{"$in": ids}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []*model.Group
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *MongoRepository) FindGroupByName(ctx context.Context, accessModule, name, excludeID string) (*model.Group, error) {
	filter := notDeleted(bson.M{
		"access_module": accessModule,
		"name":          ciName(name),
	})
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	var g model.Group
	err := r.Groups.FindOne(ctx, filter).Decode(&g)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *MongoRepository) CreateGroup(ctx context.Context, g *model.Group) error {
	now := time.Now()
	if g.ID == "" {
		g.ID = newID()
	}
	g.CreatedAt = now
	g.UpdatedAt = now

	_, err := r.Groups.InsertOne(ctx, g)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) UpdateGroup(ctx context.Context, g *model.Group) error {
	g.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":                g.Name,
			"security_profile_id": g.SecurityProfileID,
			"updated_at":          g.UpdatedAt,
			"updated_by":          g.UpdatedBy,
		},
	}
	res, err := r.Groups.UpdateOne(ctx, notDeleted(bson.M{"_id": g.ID}), update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) SoftDeleteGroup(ctx context.Context, id, deletedBy string) error {
	return r.softDelete(ctx, r.Groups, id, deletedBy)
}

func (r *MongoRepository) GetProjectGroup(ctx context.Context, id string) (*model.ProjectGroup, error) {
	var g model.ProjectGroup
	err := r.ProjectGroups.FindOne(ctx, notDeleted(bson.M{"_id": id})).Decode(&g)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *MongoRepository) FindProjectGroupByName(ctx context.Context, projectID, accessModule, name, excludeID string) (*model.ProjectGroup, error) {
	filter := notDeleted(bson.M{
		"project_id":    projectID,
		"access_module": accessModule,
		"name":          ciName(name),
	})
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	var g model.ProjectGroup
	err := r.ProjectGroups.FindOne(ctx, filter).Decode(&g)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *MongoRepository) ListProjectGroups(ctx context.Context, projectID, accessModule string) ([]*model.ProjectGroup, error) {
	filter := notDeleted(bson.M{"project_id": projectID})
	if accessModule != "" {
		filter["access_module"] = accessModule
	}
	cursor, err := r.ProjectGroups.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []*model.ProjectGroup
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *MongoRepository) FindProjectGroupsByIDs(ctx context.Context, ids []string) ([]*model.ProjectGroup, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.ProjectGroups.Find(ctx, notDeleted(bson.M{"_id": bson.M{"$in": ids}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []*model.ProjectGroup
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *MongoRepository) CreateProjectGroup(ctx context.Context, g *model.ProjectGroup) error {
	now := time.Now()
	if g.ID == "" {
		g.ID = newID()
	}
	g.CreatedAt = now
	g.UpdatedAt = now

	_, err := r.ProjectGroups.InsertOne(ctx, g)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) InsertProjectGroups(ctx context.Context, groups []*model.ProjectGroup) error {
	if len(groups) == 0 {
		return nil
	}
	now := time.Now()
	docs := make([]interface{}, 0, len(groups))
	for _, g := range groups {
		if g.ID == "" {
			g.ID = newID()
		}
		g.CreatedAt = now
		g.UpdatedAt = now
		docs = append(docs, g)
	}
	_, err := r.ProjectGroups.InsertMany(ctx, docs)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) UpdateProjectGroup(ctx context.Context, g *model.ProjectGroup) error {
	g.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":               g.Name,
			"project_profile_id": g.ProjectProfileID,
			"updated_at":         g.UpdatedAt,
			"updated_by":         g.UpdatedBy,
		},
	}
	res, err := r.ProjectGroups.UpdateOne(ctx, notDeleted(bson.M{"_id": g.ID}), update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) SoftDeleteProjectGroup(ctx context.Context, id, deletedBy string) error {
	return r.softDelete(ctx, r.ProjectGroups, id, deletedBy)
}

func (r *MongoRepository) CountProjectGroupsByProfile(ctx context.Context, profileID string) (int64, error) {
	return r.ProjectGroups.CountDocuments(ctx, notDeleted(bson.M{"project_profile_id": profileID}))
}

func (r *MongoRepository) CountGroupsBySecurityProfile(ctx context.Context, profileID string) (int64, error) {
	return r.Groups.CountDocuments(ctx, notDeleted(bson.M{"security_profile_id": profileID}))
}

// softDelete marks a record deleted; reads exclude it from then on.
func (r *MongoRepository) softDelete(ctx context.Context, coll *mongo.Collection, id, deletedBy string) error {
	update := bson.M{
		"$set": bson.M{
			"deleted_at": time.Now(),
			"deleted_by": deletedBy,
		},
	}
	res, err := coll.UpdateOne(ctx, notDeleted(bson.M{"_id": id}), update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
