package repository

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"guild-service/internal/config"
	"guild-service/internal/repository/model"
	"sync"
	"time"
)

const (
	databaseName = "guild-service"

	groupCollectionName  = "groups"
	playerCollectionName = "players"

	addMembersAttempts = 3
)

var (
	ErrGroupNotFound             = errors.New("group not found")
	ErrRoleNotFound              = errors.New("role not found")
	ErrRoleAlreadyExists         = errors.New("role already exists")
	ErrMemberNotInRole           = errors.New("member does not have origin role")
	ErrPlayerNotFound            = errors.New("player not found")
	ErrAttendanceAlreadyRecorded = errors.New("attendance already recorded")
)

type mongoRepository struct {
	database *mongo.Database

	groupCollection  *mongo.Collection
	playerCollection *mongo.Collection

	now func() time.Time
}

func NewMongoRepository(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, cfg config.MongoDBConfig) (Repository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	repo := newMongoRepository(client.Database(databaseName))
	if err := repo.createIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("shutting down mongo client")
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Errorw("failed to disconnect from mongo", "error", err)
		}
	}()

	return repo, nil
}

func newMongoRepository(database *mongo.Database) *mongoRepository {
	return &mongoRepository{
		database:         database,
		groupCollection:  database.Collection(groupCollectionName),
		playerCollection: database.Collection(playerCollectionName),
		now:              time.Now,
	}
}

func (m *mongoRepository) createIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.groupCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "members.entityId", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = m.playerCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "entityId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (m *mongoRepository) CreateGroup(ctx context.Context, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	group := model.NewGroup(uuid.NewString(), name, m.now())
	if _, err := m.groupCollection.InsertOne(ctx, group); err != nil {
		return "", err
	}

	return group.Id, nil
}

func (m *mongoRepository) getGroup(ctx context.Context, groupId string) (*model.Group, error) {
	var group model.Group
	err := m.groupCollection.FindOne(ctx, bson.M{"_id": groupId}).Decode(&group)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	return &group, nil
}

// AddMembers is idempotent: entities that are already members keep their current role.
func (m *mongoRepository) AddMembers(ctx context.Context, groupId string, roleId string, entityIds []string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	for attempt := 0; attempt < addMembersAttempts; attempt++ {
		group, err := m.getGroup(ctx, groupId)
		if err != nil {
			return err
		}
		if !group.HasRole(roleId) {
			return ErrRoleNotFound
		}

		toAdd := make([]string, 0, len(entityIds))
		members := make([]model.Member, 0, len(entityIds))
		for _, id := range entityIds {
			if group.IsMember(id) {
				continue
			}
			toAdd = append(toAdd, id)
			members = append(members, model.Member{EntityId: id, RoleId: roleId})
		}
		if len(members) == 0 {
			return nil
		}

		// The $nin guard makes a concurrent add of the same entity lose the update instead of duplicating it.
		result, err := m.groupCollection.UpdateOne(ctx,
			bson.M{"_id": groupId, "members.entityId": bson.M{"$nin": toAdd}},
			bson.M{"$push": bson.M{"members": bson.M{"$each": members}}},
		)
		if err != nil {
			return err
		}
		if result.MatchedCount > 0 {
			return nil
		}
	}

	return fmt.Errorf("failed to add members to group %s after %d attempts", groupId, addMembersAttempts)
}

func (m *mongoRepository) RemoveMembers(ctx context.Context, groupId string, entityIds []string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := m.groupCollection.UpdateOne(ctx,
		bson.M{"_id": groupId},
		bson.M{"$pull": bson.M{"members": bson.M{"entityId": bson.M{"$in": entityIds}}}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrGroupNotFound
	}

	return nil
}

func (m *mongoRepository) ListMembership(ctx context.Context, entityId string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := m.groupCollection.Find(ctx, bson.M{"members.entityId": entityId}, opts)
	if err != nil {
		return nil, err
	}

	var groups []model.Group
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}

	ids := make([]string, len(groups))
	for i, g := range groups {
		ids[i] = g.Id
	}
	return ids, nil
}

func (m *mongoRepository) ListMembers(ctx context.Context, groupId string) ([]model.RoleMembers, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	group, err := m.getGroup(ctx, groupId)
	if err != nil {
		return nil, err
	}

	return group.RoleMembers(), nil
}

func (m *mongoRepository) ChangeRole(ctx context.Context, groupId string, originRoleId string, destRoleId string, entityIds []string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"m.entityId": bson.M{"$in": entityIds}, "m.roleId": originRoleId},
		},
	})

	result, err := m.groupCollection.UpdateOne(ctx,
		bson.M{"_id": groupId, "roles._id": destRoleId},
		bson.M{"$set": bson.M{"members.$[m].roleId": destRoleId}},
		opts,
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		if _, err := m.getGroup(ctx, groupId); err != nil {
			return err
		}
		return ErrRoleNotFound
	}
	if result.ModifiedCount == 0 {
		return ErrMemberNotInRole
	}

	return nil
}

func (m *mongoRepository) CreateRole(ctx context.Context, groupId string, roleId string, roleName string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := m.groupCollection.UpdateOne(ctx,
		bson.M{"_id": groupId, "roles._id": bson.M{"$ne": roleId}},
		bson.M{"$push": bson.M{"roles": model.Role{Id: roleId, Name: roleName}}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		if _, err := m.getGroup(ctx, groupId); err != nil {
			return err
		}
		return ErrRoleAlreadyExists
	}

	return nil
}

func (m *mongoRepository) RenameRole(ctx context.Context, groupId string, roleId string, newName string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := m.groupCollection.UpdateOne(ctx,
		bson.M{"_id": groupId, "roles._id": roleId},
		bson.M{"$set": bson.M{"roles.$.name": newName}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		if _, err := m.getGroup(ctx, groupId); err != nil {
			return err
		}
		return ErrRoleNotFound
	}

	return nil
}

func (m *mongoRepository) getPlayer(ctx context.Context, playerId string) (*model.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var player model.Player
	err := m.playerCollection.FindOne(ctx, bson.M{"_id": playerId}).Decode(&player)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	return &player, nil
}

func (m *mongoRepository) ResolveEntity(ctx context.Context, playerId string) (string, error) {
	player, err := m.getPlayer(ctx, playerId)
	if err != nil {
		return "", err
	}
	return player.EntityId, nil
}

func (m *mongoRepository) GetDisplayName(ctx context.Context, playerId string) (string, error) {
	player, err := m.getPlayer(ctx, playerId)
	if err != nil {
		return "", err
	}
	return player.DisplayName, nil
}

func (m *mongoRepository) GetPower(ctx context.Context, playerId string) (int64, error) {
	player, err := m.getPlayer(ctx, playerId)
	if err != nil {
		return 0, err
	}
	return player.Power, nil
}

func (m *mongoRepository) GetPlayersByEntityIds(ctx context.Context, entityIds []string) ([]*model.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := m.playerCollection.Find(ctx, bson.M{"entityId": bson.M{"$in": entityIds}})
	if err != nil {
		return nil, err
	}

	var mongoResult []model.Player
	if err := cursor.All(ctx, &mongoResult); err != nil {
		return nil, err
	}

	slice := make([]*model.Player, len(mongoResult))
	for i := range mongoResult {
		slice[i] = &mongoResult[i]
	}
	return slice, nil
}

func (m *mongoRepository) GetLastAttendance(ctx context.Context, playerId string) (string, error) {
	player, err := m.getPlayer(ctx, playerId)
	if err != nil {
		return "", err
	}
	return player.LastAttendance, nil
}

func (m *mongoRepository) RecordAttendance(ctx context.Context, playerId string, dateKey string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := m.playerCollection.UpdateOne(ctx,
		bson.M{"_id": playerId, "lastAttendance": bson.M{"$ne": dateKey}},
		bson.M{"$set": bson.M{"lastAttendance": dateKey}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		if _, err := m.getPlayer(ctx, playerId); err != nil {
			return err
		}
		return ErrAttendanceAlreadyRecorded
	}

	return nil
}
