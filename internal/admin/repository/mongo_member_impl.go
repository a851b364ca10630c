package repository

import (
	"context"
	"regexp"
	"time"

	"planadmin/internal/admin/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoRepository) ListGroupMembers(ctx context.Context, groupID, projectID string, page, size int) ([]*model.User, int64, error) {
	filter := notDeleted(bson.M{})
	if projectID == "" {
		filter["group_ids"] = groupID
	} else {
		filter["project_groups"] = bson.M{
			"$elemMatch": bson.M{"project_id": projectID, "group_id": groupID},
		}
	}
	return r.pagedUsers(ctx, filter, page, size)
}

func (r *MongoRepository) ListNonMembers(ctx context.Context, groupID string, req model.ListNonMembersReq) ([]*model.User, int64, error) {
	filter := notDeleted(bson.M{})

	// Exclude current members of the group.
	if req.ProjectID == "" {
		filter["group_ids"] = bson.M{"$ne": groupID}
	} else {
		filter["project_groups"] = bson.M{
			"$not": bson.M{
				"$elemMatch": bson.M{"project_id": req.ProjectID, "group_id": groupID},
			},
		}
	}

	var and []bson.M

	if req.Keyword != "" {
		and = append(and, bson.M{"email": primitive.Regex{
			Pattern: regexp.QuoteMeta(req.Keyword),
			Options: "i",
		}})
	}

	// Project scope: visible via direct group assignment, admin role, or a
	// transitive membership in one of the project's groups.
	if req.ProjectID != "" {
		projectGroups, err := r.ListProjectGroups(ctx, req.ProjectID, "")
		if err != nil {
			return nil, 0, err
		}
		groupIDs := make([]string, 0, len(projectGroups))
		for _, g := range projectGroups {
			groupIDs = append(groupIDs, g.ID)
		}
		and = append(and, bson.M{"$or": []bson.M{
			{"admin_projects": req.ProjectID},
			{"project_groups.project_id": req.ProjectID},
			{"project_groups.group_id": bson.M{"$in": groupIDs}},
		}})
	}

	// Access module: candidates must already hold a membership in a group
	// of that module.
	if req.AccessModule != "" {
		moduleIDs, err := r.groupIDsByAccessModule(ctx, req.AccessModule, req.ProjectID)
		if err != nil {
			return nil, 0, err
		}
		and = append(and, bson.M{"$or": []bson.M{
			{"group_ids": bson.M{"$in": moduleIDs}},
			{"project_groups.group_id": bson.M{"$in": moduleIDs}},
		}})
	}

	if len(and) > 0 {
		filter["$and"] = and
	}

	return r.pagedUsers(ctx, filter, req.Page, req.Size)
}

// groupIDsByAccessModule collects live group ids of an access module, from
// organization groups and, when projectID is set, from that project's groups.
func (r *MongoRepository) groupIDsByAccessModule(ctx context.Context, accessModule, projectID string) ([]string, error) {
	var ids []string

	cursor, err := r.Groups.Find(ctx, notDeleted(bson.M{"access_module": accessModule}))
	if err != nil {
		return nil, err
	}
	var orgGroups []*model.Group
	if err := cursor.All(ctx, &orgGroups); err != nil {
		return nil, err
	}
	for _, g := range orgGroups {
		ids = append(ids, g.ID)
	}

	if projectID != "" {
		projectGroups, err := r.ListProjectGroups(ctx, projectID, accessModule)
		if err != nil {
			return nil, err
		}
		for _, g := range projectGroups {
			ids = append(ids, g.ID)
		}
	}
	return ids, nil
}

func (r *MongoRepository) pagedUsers(ctx context.Context, filter bson.M, page, size int) ([]*model.User, int64, error) {
	total, err := r.Users.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((page - 1) * size)
	findOptions := options.Find().
		SetSort(bson.D{{Key: "email", Value: 1}}).
		SetSkip(skip).
		SetLimit(int64(size))

	cursor, err := r.Users.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var users []*model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *MongoRepository) CountUsersInGroup(ctx context.Context, groupID string) (int64, error) {
	filter := notDeleted(bson.M{
		"$or": []bson.M{
			{"group_ids": groupID},
			{"project_groups.group_id": groupID},
		},
	})
	return r.Users.CountDocuments(ctx, filter)
}

func (r *MongoRepository) AddGroupMember(ctx context.Context, userID, groupID, projectID, updatedBy string) error {
	update := bson.M{
		"$set": bson.M{
			"updated_at": time.Now(),
			"updated_by": updatedBy,
		},
	}
	if projectID == "" {
		update["$addToSet"] = bson.M{"group_ids": groupID}
	} else {
		update["$addToSet"] = bson.M{
			"project_groups": model.ProjectGroupRef{ProjectID: projectID, GroupID: groupID},
		}
	}

	res, err := r.Users.UpdateOne(ctx, notDeleted(bson.M{"_id": userID}), update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) RemoveGroupMember(ctx context.Context, userID, groupID, projectID, updatedBy string) error {
	update := bson.M{
		"$set": bson.M{
			"updated_at": time.Now(),
			"updated_by": updatedBy,
		},
	}
	if projectID == "" {
		update["$pull"] = bson.M{"group_ids": groupID}
	} else {
		update["$pull"] = bson.M{
			"project_groups": bson.M{"project_id": projectID, "group_id": groupID},
		}
	}

	res, err := r.Users.UpdateOne(ctx, notDeleted(bson.M{"_id": userID}), update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
