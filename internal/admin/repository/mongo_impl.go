package repository

import (
	"context"
	"regexp"

	"planadmin/internal/admin/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	Users            *mongo.Collection
	Projects         *mongo.Collection
	Groups           *mongo.Collection
	ProjectGroups    *mongo.Collection
	ProjectProfiles  *mongo.Collection
	Viewer3dProfiles *mongo.Collection
	SecurityProfiles *mongo.Collection
	AuditLogs        *mongo.Collection
	ProjectLogs      *mongo.Collection
	Client           *mongo.Client // for transactions
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		Users:            db.Collection("users"),
		Projects:         db.Collection("projects"),
		Groups:           db.Collection("groups"),
		ProjectGroups:    db.Collection("project_groups"),
		ProjectProfiles:  db.Collection("project_profiles"),
		Viewer3dProfiles: db.Collection("viewer3d_profiles"),
		SecurityProfiles: db.Collection("security_profiles"),
		AuditLogs:        db.Collection("audit_logs"),
		ProjectLogs:      db.Collection("project_logs"),
		Client:           db.Client(),
	}
}

// notDeleted adds the shared soft-delete predicate. Every read in this
// package must build its filter through it.
func notDeleted(filter bson.M) bson.M {
	filter["deleted_at"] = nil
	return filter
}

// ciName builds an anchored case-insensitive exact match on a name.
func ciName(name string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(name) + "$", Options: "i"}
}

func newID() string {
	return primitive.NewObjectID().Hex()
}

// caseInsensitive is the collation used by the unique name indexes so the
// store rejects case-variant duplicates that slip past the pre-check.
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	// Group name unique per access module among non-deleted records.
	idxGroupName := mongo.IndexModel{
		Keys: bson.D{
			{Key: "access_module", Value: 1},
			{Key: "name", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetName("uniq_group_name_per_module").
			SetCollation(caseInsensitive).
			SetPartialFilterExpression(bson.M{"deleted_at": nil}),
	}
	if _, err := r.Groups.Indexes().CreateOne(ctx, idxGroupName); err != nil {
		return err
	}

	// Project group name unique per (project, access module).
	idxProjectGroupName := mongo.IndexModel{
		Keys: bson.D{
			{Key: "project_id", Value: 1},
			{Key: "access_module", Value: 1},
			{Key: "name", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetName("uniq_project_group_name_per_scope").
			SetCollation(caseInsensitive).
			SetPartialFilterExpression(bson.M{"deleted_at": nil}),
	}
	if _, err := r.ProjectGroups.Indexes().CreateOne(ctx, idxProjectGroupName); err != nil {
		return err
	}

	// Project profile name unique per (project, access module).
	idxProjectProfileName := mongo.IndexModel{
		Keys: bson.D{
			{Key: "project_id", Value: 1},
			{Key: "access_module", Value: 1},
			{Key: "name", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetName("uniq_project_profile_name_per_scope").
			SetCollation(caseInsensitive).
			SetPartialFilterExpression(bson.M{"deleted_at": nil}),
	}
	if _, err := r.ProjectProfiles.Indexes().CreateOne(ctx, idxProjectProfileName); err != nil {
		return err
	}

	// Global profile names unique organization-wide.
	idxGlobalName := mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("uniq_profile_name").
			SetCollation(caseInsensitive).
			SetPartialFilterExpression(bson.M{"deleted_at": nil}),
	}
	if _, err := r.Viewer3dProfiles.Indexes().CreateOne(ctx, idxGlobalName); err != nil {
		return err
	}
	if _, err := r.SecurityProfiles.Indexes().CreateOne(ctx, idxGlobalName); err != nil {
		return err
	}

	// Membership lookups on the user document.
	idxUserMembership := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "group_ids", Value: 1}},
			Options: options.Index().SetName("idx_user_group_ids"),
		},
		{
			Keys: bson.D{
				{Key: "project_groups.project_id", Value: 1},
				{Key: "project_groups.group_id", Value: 1},
			},
			Options: options.Index().SetName("idx_user_project_groups"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_user_email"),
		},
	}
	_, err := r.Users.Indexes().CreateMany(ctx, idxUserMembership)
	return err
}

func (r *MongoRepository) GetProject(ctx context.Context, id string) (*model.Project, error) {
	var p model.Project
	err := r.Projects.FindOne(ctx, notDeleted(bson.M{"_id": id})).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MongoRepository) GetUser(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	err := r.Users.FindOne(ctx, notDeleted(bson.M{"_id": id})).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
