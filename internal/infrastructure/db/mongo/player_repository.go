package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/simfut/league-api/internal/core/domain"
)

const collectionPlayers = "players"

type PlayerRepository struct {
	coll *mongo.Collection
}

func NewPlayerRepository(db *mongo.Database) *PlayerRepository {
	return &PlayerRepository{coll: db.Collection(collectionPlayers)}
}

type playerDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Position    string             `bson:"position,omitempty"`
	ShirtNumber int                `bson:"shirt_number"`
	TeamID      string             `bson:"team_id"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (d playerDoc) toDomain() domain.Player {
	return domain.Player{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Position:    d.Position,
		ShirtNumber: d.ShirtNumber,
		TeamID:      d.TeamID,
		CreatedAt:   unixToTime(d.CreatedAt),
		UpdatedAt:   unixToTime(d.UpdatedAt),
	}
}

func (r *PlayerRepository) FindAll(ctx context.Context) ([]domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find players: %w", err)
	}
	defer cur.Close(ctx)

	players := []domain.Player{}
	for cur.Next(ctx) {
		var doc playerDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode player: %w", err)
		}
		players = append(players, doc.toDomain())
	}
	return players, cur.Err()
}

func (r *PlayerRepository) FindByID(ctx context.Context, id string) (*domain.Player, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPlayerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc playerDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("find player: %w", err)
	}
	player := doc.toDomain()
	return &player, nil
}

func (r *PlayerRepository) Insert(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := playerDoc{
		Name:        player.Name,
		Position:    player.Position,
		ShirtNumber: player.ShirtNumber,
		TeamID:      player.TeamID,
		CreatedAt:   player.CreatedAt.Unix(),
		UpdatedAt:   player.UpdatedAt.Unix(),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert player: %w", err)
	}

	created := *player
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *PlayerRepository) Update(ctx context.Context, player *domain.Player) error {
	oid, err := primitive.ObjectIDFromHex(player.ID)
	if err != nil {
		return domain.ErrPlayerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":         player.Name,
		"position":     player.Position,
		"shirt_number": player.ShirtNumber,
		"team_id":      player.TeamID,
		"updated_at":   player.UpdatedAt.Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPlayerNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// EnsureIndexes creates the team_id lookup index.
func (r *PlayerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "team_id", Value: 1}},
	})
	return err
}
