package repository

import (
	"context"
	"time"

	"planadmin/internal/admin/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoRepository) GetProjectProfile(ctx context.Context, id string) (*model.ProjectProfile, error) {
	var p model.ProjectProfile
	err := r.ProjectProfiles.FindOne(ctx, notDeleted(bson.M{"_id": id})).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MongoRepository) FindProjectProfileByName(ctx context.Context, projectID, accessModule, name, excludeID string) (*model.ProjectProfile, error) {
	filter := notDeleted(bson.M{
		"project_id":    projectID,
		"access_module": accessModule,
		"name":          ciName(name),
	})
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	var p model.ProjectProfile
	err := r.ProjectProfiles.FindOne(ctx, filter).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MongoRepository) ListProjectProfiles(ctx context.Context, projectID, accessModule string) ([]*model.ProjectProfile, error) {
	filter := notDeleted(bson.M{"project_id": projectID})
	if accessModule != "" {
		filter["access_module"] = accessModule
	}
	cursor, err := r.ProjectProfiles.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []*model.ProjectProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *MongoRepository) FindProjectProfilesByIDs(ctx context.Context, ids []string) ([]*model.ProjectProfile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.ProjectProfiles.Find(ctx, notDeleted(bson.M{"_id": bson.M{"$in": ids}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []*model.ProjectProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *MongoRepository) CreateProjectProfile(ctx context.Context, p *model.ProjectProfile) error {
	now := time.Now()
	if p.ID == "" {
		p.ID = newID()
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.ProjectProfiles.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) UpdateProjectProfile(ctx context.Context, p *model.ProjectProfile) error {
	p.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":        p.Name,
			"permissions": p.Permissions,
			"updated_at":  p.UpdatedAt,
			"updated_by":  p.UpdatedBy,
		},
	}
	res, err := r.ProjectProfiles.UpdateOne(ctx, notDeleted(bson.M{"_id": p.ID}), update)
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

func (r *MongoRepository) SoftDeleteProjectProfile(ctx context.Context, id, deletedBy string) error {
	return r.softDelete(ctx, r.ProjectProfiles, id, deletedBy)
}

func (r *MongoRepository) SetDefaultProjectProfile(ctx context.Context, projectID, accessModule, id, updatedBy string) (*model.ProjectProfile, error) {
	scope := bson.M{"project_id": projectID, "access_module": accessModule}
	if err := r.setDefaultInScope(ctx, r.ProjectProfiles, scope, id, updatedBy); err != nil {
		return nil, err
	}
	return r.GetProjectProfile(ctx, id)
}

func (r *MongoRepository) GetViewer3dProfile(ctx context.Context, id string) (*model.Viewer3dProfile, error) {
	var p model.Viewer3dProfile
	err := r.Viewer3dProfiles.FindOne(ctx, notDeleted(bson.M{"_id": id})).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MongoRepository) FindViewer3dProfileByName(ctx context.Context, name, excludeID string) (*model.Viewer3dProfile, error) {
	filter := notDeleted(bson.M{"name": ciName(name)})
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	var p model.Viewer3dProfile
	err := r.Viewer3dProfiles.FindOne(ctx, filter).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MongoRepository) ListViewer3dProfiles(ctx context.Context) ([]*model.Viewer3dProfile, error) {
	cursor, err := r.Viewer3dProfiles.Find(ctx, notDeleted(bson.M{}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []*model.Viewer3dProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *MongoRepository) CreateViewer3dProfile(ctx context.Context, p *model.Viewer3dProfile) error {
	now := time.Now()
	if p.ID == "" {
		p.ID = newID()
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.Viewer3dProfiles.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) UpdateViewer3dProfile(ctx context.Context, p *model.Viewer3dProfile) error {
	p.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":        p.Name,
			"permissions": p.Permissions,
			"updated_at":  p.UpdatedAt,
			"updated_by":  p.UpdatedBy,
		},
	}
	res, err := r.Viewer3dProfiles.UpdateOne(ctx, notDeleted(bson.M{"_id": p.ID}), update)
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

func (r *MongoRepository) SoftDeleteViewer3dProfile(ctx context.Context, id, deletedBy string) error {
	return r.softDelete(ctx, r.Viewer3dProfiles, id, deletedBy)
}

func (r *MongoRepository) SetDefaultViewer3dProfile(ctx context.Context, id, updatedBy string) (*model.Viewer3dProfile, error) {
	if err := r.setDefaultInScope(ctx, r.Viewer3dProfiles, bson.M{}, id, updatedBy); err != nil {
		return nil, err
	}
	return r.GetViewer3dProfile(ctx, id)
}

func (r *MongoRepository) GetSecurityProfile(ctx context.Context, id string) (*model.SecurityProfile, error) {
	var p model.SecurityProfile
	err := r.SecurityProfiles.FindOne(ctx, notDeleted(bson.M{"_id": id})).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MongoRepository) FindSecurityProfilesByIDs(ctx context.Context, ids []string) ([]*model.SecurityProfile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.SecurityProfiles.Find(ctx, notDeleted(bson.M{"_id": bson.M{"$in": ids}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []*model.SecurityProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *MongoRepository) FindSecurityProfileByName(ctx context.Context, name, excludeID string) (*model.SecurityProfile, error) {
	filter := notDeleted(bson.M{"name": ciName(name)})
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	var p model.SecurityProfile
	err := r.SecurityProfiles.FindOne(ctx, filter).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MongoRepository) ListSecurityProfiles(ctx context.Context) ([]*model.SecurityProfile, error) {
	cursor, err := r.SecurityProfiles.Find(ctx, notDeleted(bson.M{}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []*model.SecurityProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *MongoRepository) CreateSecurityProfile(ctx context.Context, p *model.SecurityProfile) error {
	now := time.Now()
	if p.ID == "" {
		p.ID = newID()
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.SecurityProfiles.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) UpdateSecurityProfile(ctx context.Context, p *model.SecurityProfile) error {
	p.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":        p.Name,
			"permissions": p.Permissions,
			"updated_at":  p.UpdatedAt,
			"updated_by":  p.UpdatedBy,
		},
	}
	res, err := r.SecurityProfiles.UpdateOne(ctx, notDeleted(bson.M{"_id": p.ID}), update)
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

func (r *MongoRepository) SoftDeleteSecurityProfile(ctx context.Context, id, deletedBy string) error {
	return r.softDelete(ctx, r.SecurityProfiles, id, deletedBy)
}

func (r *MongoRepository) SetDefaultSecurityProfile(ctx context.Context, id, updatedBy string) (*model.SecurityProfile, error) {
	if err := r.setDefaultInScope(ctx, r.SecurityProfiles, bson.M{}, id, updatedBy); err != nil {
		return nil, err
	}
	return r.GetSecurityProfile(ctx, id)
}

// setDefaultInScope unsets is_default_select on every sibling in the scope,
// then sets it on id, in one transaction. Replaying the whole operation is
// idempotent; a mid-operation crash aborts and leaves the pre-call state.
func (r *MongoRepository) setDefaultInScope(ctx context.Context, coll *mongo.Collection, scope bson.M, id, updatedBy string) error {
	session, err := r.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	callback := func(sessCtx mongo.SessionContext) (interface{}, error) {
		now := time.Now()

		unsetFilter := bson.M{"_id": bson.M{"$ne": id}, "is_default_select": true}
		for k, v := range scope {
			unsetFilter[k] = v
		}
		unset := bson.M{
			"$set": bson.M{
				"is_default_select": false,
				"updated_at":        now,
				"updated_by":        updatedBy,
			},
		}
		if _, err := coll.UpdateMany(sessCtx, notDeleted(unsetFilter), unset); err != nil {
			return nil, err
		}

		set := bson.M{
			"$set": bson.M{
				"is_default_select": true,
				"updated_at":        now,
				"updated_by":        updatedBy,
			},
		}
		res, err := coll.UpdateOne(sessCtx, notDeleted(bson.M{"_id": id}), set)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, mongo.ErrNoDocuments
		}
		return nil, nil
	}

	_, err = session.WithTransaction(ctx, callback)
	return err
}
